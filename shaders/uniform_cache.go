package shaders

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/logging"
)

// UniformCache caches uniform locations by name so the driver is queried at most once
// per name for the lifetime of a program. Missing uniforms are cached as -1.
//
// Copies of a UniformCache share the same underlying map.
type UniformCache struct {
	locs  map[string]int32
	query func(progId uint32, name string) int32
}

func (uc *UniformCache) Get(progId uint32, name string) int32 {

	loc, ok := uc.locs[name]
	if ok {
		return loc
	}

	if uc.locs == nil {
		uc.locs = make(map[string]int32)
	}

	if uc.query == nil {
		uc.query = glUniformLocation
	}

	loc = uc.query(progId, name)
	if loc == -1 {
		logging.WarnLog.Warnf("Uniform '%s' doesn't exist on shader program %d\n", name, progId)
	}

	uc.locs[name] = loc
	return loc
}

// Reset forgets all cached locations. Needed when the program is relinked.
func (uc *UniformCache) Reset() {
	clear(uc.locs)
}

func (uc *UniformCache) Len() int {
	return len(uc.locs)
}

func NewUniformCache(query func(progId uint32, name string) int32) UniformCache {
	return UniformCache{
		locs:  make(map[string]int32),
		query: query,
	}
}

func glUniformLocation(progId uint32, name string) int32 {
	return gl.GetUniformLocation(progId, gl.Str(name+"\x00"))
}
