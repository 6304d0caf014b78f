package scenes

import (
	"github.com/lgl-dev/lgl/buffers"
)

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// newQuad builds a vertex array for a quad centered on the origin.
// Vertices have a Vec2 position followed by a Vec2 texture coordinate when withUVs is set.
func newQuad(halfWidth, halfHeight float32, withUVs bool) buffers.VertexArray {

	var vertices []float32
	var vbo buffers.VertexBuffer

	if withUVs {

		vertices = []float32{
			-halfWidth, -halfHeight, 0, 0,
			halfWidth, -halfHeight, 1, 0,
			halfWidth, halfHeight, 1, 1,
			-halfWidth, halfHeight, 0, 1,
		}

		vbo = buffers.NewVertexBuffer(
			buffers.Element{ElementType: buffers.DataTypeVec2}, // Position
			buffers.Element{ElementType: buffers.DataTypeVec2}, // UV0
		)

	} else {

		vertices = []float32{
			-halfWidth, -halfHeight,
			halfWidth, -halfHeight,
			halfWidth, halfHeight,
			-halfWidth, halfHeight,
		}

		vbo = buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec2})
	}

	vao := buffers.NewVertexArray()
	vao.Bind()

	vbo.SetData(vertices, buffers.BufUsage_Static_Draw)
	vao.AddVertexBuffer(vbo)

	ib := buffers.NewIndexBuffer()
	vao.SetIndexBuffer(ib)
	vao.IndexBuffer.SetData(quadIndices)

	// So later buffer binds don't end up in this vao
	vao.UnBind()
	vbo.UnBind()

	return vao
}
