package renderer

import (
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/shaders"
)

type Render interface {
	SetClearColor(r, g, b, a float32)
	Clear()
	// SetDepthTest turns depth testing on or off for the following draws. It is on by default.
	SetDepthTest(enabled bool)
	// Draw draws the indexed triangles of ib using the vertices of vao and the passed shader
	Draw(vao *buffers.VertexArray, ib *buffers.IndexBuffer, shader *shaders.ShaderProgram)
	FrameEnd()
}
