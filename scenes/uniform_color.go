package scenes

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/config"
	"github.com/lgl-dev/lgl/renderer"
	"github.com/lgl-dev/lgl/shaders"
)

const colorStep float32 = 0.05

// UniformColor draws a quad whose red channel bounces between 0 and 1, changing a
// uniform every frame
type UniformColor struct {
	vao    buffers.VertexArray
	shader shaders.ShaderProgram

	Color     [4]float32
	Increment float32
	Paused    bool
}

var _ Scene = &UniformColor{}

// StepColor advances the red channel by one step and flips direction when it leaves [0, 1]
func (s *UniformColor) StepColor() {

	if s.Color[0] > 1 {
		s.Increment = -colorStep
	} else if s.Color[0] < 0 {
		s.Increment = colorStep
	}

	s.Color[0] += s.Increment
}

func (s *UniformColor) Update(dt float32) {
	if !s.Paused {
		s.StepColor()
	}
}

func (s *UniformColor) Render(rend renderer.Render) {

	if s.shader.Id == 0 {
		return
	}

	s.shader.SetUnif4f("u_Color", s.Color[0], s.Color[1], s.Color[2], s.Color[3])
	rend.Draw(&s.vao, &s.vao.IndexBuffer, &s.shader)
}

func (s *UniformColor) ImGuiRender() {
	imgui.Checkbox("Pause", &s.Paused)
	imgui.SliderFloat("Red", &s.Color[0], 0, 1)
	imgui.ColorEdit3("Color", (*[3]float32)(s.Color[:3]))
}

func (s *UniformColor) Delete() {
	shaders.DefaultReloader.Untrack(&s.shader)
	s.shader.Delete()
	s.vao.Delete()
}

func NewUniformColor(res config.Res) *UniformColor {

	s := &UniformColor{
		Color:     [4]float32{0, 0.3, 0.8, 1},
		Increment: colorStep,
	}

	s.shader = loadShader(res.ShaderDir, "basic_color.glsl")
	shaders.DefaultReloader.Track(&s.shader)

	s.vao = newQuad(0.5, 0.5, false)
	return s
}
