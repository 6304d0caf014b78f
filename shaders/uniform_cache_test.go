package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformCacheQueriesOncePerName(t *testing.T) {

	queries := map[string]int{}
	uc := NewUniformCache(func(progId uint32, name string) int32 {
		queries[name]++
		if name == "u_Color" {
			return 3
		}
		return 7
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, int32(3), uc.Get(1, "u_Color"))
		assert.Equal(t, int32(7), uc.Get(1, "u_MVP"))
	}

	assert.Equal(t, 1, queries["u_Color"])
	assert.Equal(t, 1, queries["u_MVP"])
	assert.Equal(t, 2, uc.Len())
}

func TestUniformCacheCachesMissingUniforms(t *testing.T) {

	queries := 0
	uc := NewUniformCache(func(progId uint32, name string) int32 {
		queries++
		return -1
	})

	assert.Equal(t, int32(-1), uc.Get(1, "u_Missing"))
	assert.Equal(t, int32(-1), uc.Get(1, "u_Missing"))
	assert.Equal(t, 1, queries)
}

func TestUniformCacheReset(t *testing.T) {

	queries := 0
	uc := NewUniformCache(func(progId uint32, name string) int32 {
		queries++
		return int32(progId)
	})

	assert.Equal(t, int32(1), uc.Get(1, "u_Texture"))

	// A copy shares the cache, like a ShaderProgram passed around by value
	cp := uc
	cp.Reset()
	assert.Equal(t, 0, uc.Len())

	assert.Equal(t, int32(2), uc.Get(2, "u_Texture"))
	assert.Equal(t, 2, queries)
}

func TestShaderProgramUsesItsCache(t *testing.T) {

	var gotProg uint32
	sp := ShaderProgram{
		Id: 42,
		unifLocs: NewUniformCache(func(progId uint32, name string) int32 {
			gotProg = progId
			return 5
		}),
	}

	assert.Equal(t, int32(5), sp.GetUnifLoc("u_Color"))
	assert.Equal(t, uint32(42), gotProg)
}
