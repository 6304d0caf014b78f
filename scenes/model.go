package scenes

import (
	"path/filepath"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/lgl-dev/lgl/config"
	"github.com/lgl-dev/lgl/logging"
	"github.com/lgl-dev/lgl/meshes"
	"github.com/lgl-dev/lgl/renderer"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/textures"
)

// Model draws a textured model file spinning in front of a perspective camera
type Model struct {
	mesh    meshes.Mesh
	loaded  bool
	shader  shaders.ShaderProgram
	texture textures.Texture

	proj gglm.Mat4
	view gglm.Mat4

	AngleDeg      float32
	SpeedDegPerS  float32
	ModelFileName string
}

var _ Scene = &Model{}

func (s *Model) Update(dt float32) {

	s.AngleDeg += s.SpeedDegPerS * dt
	for s.AngleDeg >= 360 {
		s.AngleDeg -= 360
	}
}

func (s *Model) MVP() gglm.Mat4 {

	model := gglm.NewTrMatId()
	model.Rotate(s.AngleDeg*gglm.Deg2Rad, 0, 1, 0)
	model.Rotate(20*gglm.Deg2Rad, 1, 0, 0)

	mvp := s.proj.Clone()
	mvp.Mul(&s.view)
	mvp.Mul(&model.Mat4)
	return *mvp
}

func (s *Model) Render(rend renderer.Render) {

	if !s.loaded || s.shader.Id == 0 {
		return
	}

	bindTexture(&s.texture, textureSlot)
	setUnifInt32(&s.shader, "u_Texture", textureSlot)

	mvp := s.MVP()
	setUnifMat4(&s.shader, "u_MVP", &mvp)

	rend.Draw(&s.mesh.Vao, &s.mesh.Vao.IndexBuffer, &s.shader)
}

func (s *Model) ImGuiRender() {

	if !s.loaded {
		imgui.Text("Failed to load " + s.ModelFileName)
		return
	}

	imgui.Text(s.ModelFileName)
	imgui.SliderFloat("Speed (deg/s)", &s.SpeedDegPerS, -360, 360)
	imgui.SliderFloat("Angle", &s.AngleDeg, 0, 360)
}

func (s *Model) Delete() {

	shaders.DefaultReloader.Untrack(&s.shader)
	s.shader.Delete()
	s.texture.Delete()

	if s.loaded {
		s.mesh.Delete()
	}
}

func NewModel(res config.Res, aspectRatio float32) *Model {

	s := &Model{
		SpeedDegPerS:  45,
		ModelFileName: "cube.obj",
	}

	proj := gglm.Perspective(45*gglm.Deg2Rad, aspectRatio, 0.1, 100)
	s.proj = *proj.Clone()

	camPos := gglm.NewVec3(0, 0, 4)
	targetPos := gglm.NewVec3(0, 0, 0)
	worldUp := gglm.NewVec3(0, 1, 0)
	s.view = gglm.LookAtRH(&camPos, &targetPos, &worldUp).Mat4

	s.shader = loadShader(res.ShaderDir, "textured.glsl")
	shaders.DefaultReloader.Track(&s.shader)

	s.texture = loadTexture(res.TextureDir, "logo.png")

	modelPath := filepath.Join(res.ModelDir, s.ModelFileName)
	mesh, err := meshes.NewMesh("model", modelPath, 0)
	if err != nil {
		logging.ErrLog.Printf("Failed to load model '%s'. Err: %v\n", modelPath, err)
		return s
	}

	s.mesh = mesh
	s.loaded = true
	return s
}
