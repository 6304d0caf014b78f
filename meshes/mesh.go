package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/lgl-dev/lgl/assert"
	"github.com/lgl-dev/lgl/buffers"
)

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos (Vec3)
			- Loc1: UV0 (Vec2)

		All the sub meshes of the file are merged into the single vertex and index buffer of the vao.
	*/
	Vao buffers.VertexArray

	VertexCount int32
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

// Layout is the vertex layout of every loaded mesh
var Layout = []buffers.Element{
	{ElementType: buffers.DataTypeVec3}, // Position
	{ElementType: buffers.DataTypeVec2}, // UV0
}

func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("no meshes found in file: " + modelPath)
	}

	subMeshes := make([]subMeshData, len(scene.Meshes))
	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]
		if len(sceneMesh.Faces) == 0 {
			continue
		}

		subMeshes[i] = subMeshData{
			Positions: sceneMesh.Vertices,
			UVs:       v3sToV2s(sceneMesh.TexCoords[0], len(sceneMesh.Vertices)),
			Indices:   flattenFaces(sceneMesh.Faces),
		}
	}

	vertexBufData, indexBufData := mergeSubMeshes(subMeshes)
	if len(indexBufData) == 0 {
		return Mesh{}, errors.New("no faces found in file: " + modelPath)
	}

	mesh := Mesh{
		Name: name,
		Vao:  buffers.NewVertexArray(),
	}

	vbo := buffers.NewVertexBuffer(Layout...)
	mesh.VertexCount = int32(len(vertexBufData)*4) / vbo.Stride

	mesh.Vao.Bind()
	vbo.SetData(vertexBufData, buffers.BufUsage_Static_Draw)
	mesh.Vao.AddVertexBuffer(vbo)

	mesh.Vao.SetIndexBuffer(buffers.NewIndexBuffer())
	mesh.Vao.IndexBuffer.SetData(indexBufData)

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh, nil
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
}

type subMeshData struct {
	Positions []gglm.Vec3
	UVs       []gglm.Vec2
	Indices   []uint32
}

// mergeSubMeshes interleaves the vertices of all sub meshes into one buffer and offsets
// the indices of every sub mesh by the number of vertices that came before it
func mergeSubMeshes(subMeshes []subMeshData) (vertices []float32, indices []uint32) {

	vertCount, indexCount := 0, 0
	for i := 0; i < len(subMeshes); i++ {
		vertCount += len(subMeshes[i].Positions)
		indexCount += len(subMeshes[i].Indices)
	}

	vertices = make([]float32, 0, vertCount*5)
	indices = make([]uint32, 0, indexCount)

	var baseVertex uint32
	for i := 0; i < len(subMeshes); i++ {

		sm := &subMeshes[i]
		if len(sm.Positions) == 0 {
			continue
		}

		vertices = append(vertices, interleave(
			arrToInterleave{V3s: sm.Positions},
			arrToInterleave{V2s: sm.UVs},
		)...)

		for _, idx := range sm.Indices {
			indices = append(indices, baseVertex+idx)
		}

		baseVertex += uint32(len(sm.Positions))
	}

	return vertices, indices
}

// v3sToV2s drops the z of the passed uvs. Missing uvs become zeros.
func v3sToV2s(v3s []gglm.Vec3, vertCount int) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, vertCount)
	for i := 0; i < len(v3s) && i < vertCount; i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].X(), v3s[i].Y()},
		}
	}

	return v2s
}

type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
}

func (a *arrToInterleave) len() int {

	if len(a.V2s) > 0 {
		return len(a.V2s)
	}

	return len(a.V3s)
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V2s) == 0 || len(a.V3s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V2s) > 0 {
		return a.V2s[i].Data[:]
	}

	return a.V3s[i].Data[:]
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()

	totalSize := 0
	for i := 0; i < len(arrs); i++ {

		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length")
		if len(arrs[i].V2s) > 0 {
			totalSize += elementCount * 2
		} else {
			totalSize += elementCount * 3
		}
	}

	out := make([]float32, 0, totalSize)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}

func flattenFaces(faces []asig.Face) []uint32 {

	uints := make([]uint32, 0, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		// Points and lines can survive triangulation, and they can't be drawn as triangles
		if len(faces[i].Indices) != 3 {
			continue
		}

		uints = append(uints,
			uint32(faces[i].Indices[0]),
			uint32(faces[i].Indices[1]),
			uint32(faces[i].Indices[2]),
		)
	}

	return uints
}
