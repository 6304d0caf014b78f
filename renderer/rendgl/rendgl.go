package rendgl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/renderer"
	"github.com/lgl-dev/lgl/shaders"
)

var _ renderer.Render = &RendGL{}

// GL entry points, swapped in tests
var (
	bindShader = func(sp *shaders.ShaderProgram) { sp.Bind() }
	bindVao    = func(vao *buffers.VertexArray) { vao.Bind() }
	bindIbo    = func(ib *buffers.IndexBuffer) { ib.Bind() }

	drawIndexed = func(count int32) {
		glerr.Call("glDrawElements", func() {
			gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
		})
	}

	setDepthTest = func(enabled bool) {
		glerr.Call("glEnable/glDisable(GL_DEPTH_TEST)", func() {
			if enabled {
				gl.Enable(gl.DEPTH_TEST)
			} else {
				gl.Disable(gl.DEPTH_TEST)
			}
		})
	}
)

// RendGL remembers what it last bound so repeated draws with the same objects skip the binds.
// Anything that binds objects behind its back (e.g. the UI) must be followed by FrameEnd.
type RendGL struct {
	BoundVaoId    uint32
	BoundIboId    uint32
	BoundShaderId uint32

	ClearColor [4]float32
}

func (r *RendGL) SetClearColor(red, green, blue, alpha float32) {
	r.ClearColor = [4]float32{red, green, blue, alpha}
	gl.ClearColor(red, green, blue, alpha)
}

func (r *RendGL) Clear() {
	glerr.Call("glClear", func() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	})
}

func (r *RendGL) SetDepthTest(enabled bool) {
	setDepthTest(enabled)
}

func (r *RendGL) Draw(vao *buffers.VertexArray, ib *buffers.IndexBuffer, shader *shaders.ShaderProgram) {

	if shader.Id != r.BoundShaderId {
		bindShader(shader)
		r.BoundShaderId = shader.Id
	}

	if vao.Id != r.BoundVaoId {
		bindVao(vao)
		r.BoundVaoId = vao.Id

		// The element array binding is part of the vao state
		r.BoundIboId = 0
	}

	if ib.Id != r.BoundIboId {
		bindIbo(ib)
		r.BoundIboId = ib.Id
	}

	drawIndexed(ib.Count)
}

func (r *RendGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundIboId = 0
	r.BoundShaderId = 0
}

func NewRendGL() *RendGL {
	return &RendGL{
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}
