package scenes

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/config"
	"github.com/lgl-dev/lgl/renderer"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/textures"
)

const (
	// The projection maps one unit to one pixel of the default window size, with y pointing up
	orthoWidth  float32 = 960
	orthoHeight float32 = 540

	textureSlot int32 = 0
)

// Texture2D draws the same textured quad twice, each with its own translation
type Texture2D struct {
	vao     buffers.VertexArray
	shader  shaders.ShaderProgram
	texture textures.Texture

	proj gglm.Mat4
	view gglm.Mat4

	TranslationA gglm.Vec3
	TranslationB gglm.Vec3
}

var _ Scene = &Texture2D{}

func (s *Texture2D) Update(dt float32) {
}

// MVP returns proj*view*model for a model translated by translation
func (s *Texture2D) MVP(translation *gglm.Vec3) gglm.Mat4 {

	model := gglm.NewTrMatId()
	model.TranslateVec(translation)

	mvp := s.proj.Clone()
	mvp.Mul(&s.view)
	mvp.Mul(&model.Mat4)
	return *mvp
}

func (s *Texture2D) Render(rend renderer.Render) {

	if s.shader.Id == 0 {
		return
	}

	// Both quads sit at z=0, so where they overlap they are layered by draw order and blended
	rend.SetDepthTest(false)
	defer rend.SetDepthTest(true)

	bindTexture(&s.texture, textureSlot)
	setUnifInt32(&s.shader, "u_Texture", textureSlot)

	for _, translation := range []*gglm.Vec3{&s.TranslationA, &s.TranslationB} {

		mvp := s.MVP(translation)
		setUnifMat4(&s.shader, "u_MVP", &mvp)
		rend.Draw(&s.vao, &s.vao.IndexBuffer, &s.shader)
	}
}

func (s *Texture2D) ImGuiRender() {

	imgui.SliderFloat3("Translation A", &s.TranslationA.Data, 0, orthoWidth)
	imgui.SliderFloat3("Translation B", &s.TranslationB.Data, 0, orthoWidth)

	io := imgui.CurrentIO()
	imgui.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", 1000/io.Framerate(), io.Framerate()))
}

func (s *Texture2D) Delete() {
	shaders.DefaultReloader.Untrack(&s.shader)
	s.shader.Delete()
	s.texture.Delete()
	s.vao.Delete()
}

func NewTexture2D(res config.Res) *Texture2D {

	s := &Texture2D{
		proj:         gglm.Ortho(0, orthoWidth, orthoHeight, 0, -1, 1).Mat4,
		view:         gglm.NewTrMatId().Mat4,
		TranslationA: gglm.NewVec3(200, 200, 0),
		TranslationB: gglm.NewVec3(400, 200, 0),
	}

	s.shader = loadShader(res.ShaderDir, "textured.glsl")
	shaders.DefaultReloader.Track(&s.shader)

	s.texture = loadTexture(res.TextureDir, "logo.png")
	s.vao = newQuad(50, 50, true)

	return s
}
