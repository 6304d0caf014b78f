package meshes

import (
	"testing"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestInterleave(t *testing.T) {

	out := interleave(
		arrToInterleave{V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(4, 5, 6)}},
		arrToInterleave{V2s: []gglm.Vec2{gglm.NewVec2(7, 8), gglm.NewVec2(9, 10)}},
	)

	assert.Equal(t, []float32{1, 2, 3, 7, 8, 4, 5, 6, 9, 10}, out)
}

func TestV3sToV2s(t *testing.T) {

	uvs := v3sToV2s([]gglm.Vec3{gglm.NewVec3(0.5, 0.25, 9)}, 2)

	assert.Len(t, uvs, 2)
	assert.Equal(t, [2]float32{0.5, 0.25}, uvs[0].Data)
	assert.Equal(t, [2]float32{0, 0}, uvs[1].Data)

	assert.Len(t, v3sToV2s(nil, 3), 3)
}

func TestFlattenFacesSkipsNonTriangles(t *testing.T) {

	faces := []asig.Face{
		{Indices: []uint{0, 1, 2}},
		{Indices: []uint{2, 3}},
		{Indices: []uint{2, 3, 0}},
	}

	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, flattenFaces(faces))
}

func TestMergeSubMeshesOffsetsIndices(t *testing.T) {

	tri := subMeshData{
		Positions: []gglm.Vec3{gglm.NewVec3(0, 0, 0), gglm.NewVec3(1, 0, 0), gglm.NewVec3(0, 1, 0)},
		UVs:       make([]gglm.Vec2, 3),
		Indices:   []uint32{0, 1, 2},
	}

	vertices, indices := mergeSubMeshes([]subMeshData{tri, {}, tri})

	// 6 vertices of 5 floats each
	assert.Len(t, vertices, 6*5)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, indices)
	assert.Equal(t, float32(1), vertices[5])
}
