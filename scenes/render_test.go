package scenes

import (
	"fmt"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/textures"
	"github.com/stretchr/testify/assert"
)

// recordingRend is a renderer.Render that only records the calls made on it
type recordingRend struct {
	calls []string
}

func (r *recordingRend) SetClearColor(red, green, blue, alpha float32) {
	r.calls = append(r.calls, fmt.Sprintf("clear color %.1f %.1f %.1f %.1f", red, green, blue, alpha))
}

func (r *recordingRend) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recordingRend) SetDepthTest(enabled bool) {
	r.calls = append(r.calls, fmt.Sprintf("depth %v", enabled))
}

func (r *recordingRend) Draw(vao *buffers.VertexArray, ib *buffers.IndexBuffer, shader *shaders.ShaderProgram) {
	r.calls = append(r.calls, "draw")
}

func (r *recordingRend) FrameEnd() {
	r.calls = append(r.calls, "frame end")
}

// stubDrawState replaces the texture and uniform setters, returning the MVPs that get set
func stubDrawState(t *testing.T) *[]gglm.Mat4 {

	oldBind, oldInt, oldMat := bindTexture, setUnifInt32, setUnifMat4
	t.Cleanup(func() { bindTexture, setUnifInt32, setUnifMat4 = oldBind, oldInt, oldMat })

	mvps := &[]gglm.Mat4{}
	bindTexture = func(tex *textures.Texture, slot int32) {}
	setUnifInt32 = func(sp *shaders.ShaderProgram, name string, val int32) {}
	setUnifMat4 = func(sp *shaders.ShaderProgram, name string, mat *gglm.Mat4) { *mvps = append(*mvps, *mat) }

	return mvps
}

func TestTexture2DDrawsWithoutDepthTest(t *testing.T) {

	mvps := stubDrawState(t)

	s := &Texture2D{
		proj:         gglm.Ortho(0, orthoWidth, orthoHeight, 0, -1, 1).Mat4,
		view:         gglm.NewTrMatId().Mat4,
		TranslationA: gglm.NewVec3(200, 200, 0),
		TranslationB: gglm.NewVec3(200, 200, 0),
	}
	s.shader.Id = 1

	rend := &recordingRend{}
	s.Render(rend)

	// Overlapping quads at the same depth must both be drawn, and the depth test is restored after
	assert.Equal(t, []string{"depth false", "draw", "draw", "depth true"}, rend.calls)
	assert.Len(t, *mvps, 2)
}

func TestTexture2DSkipsRenderWithoutShader(t *testing.T) {

	stubDrawState(t)

	rend := &recordingRend{}
	(&Texture2D{}).Render(rend)
	assert.Empty(t, rend.calls)
}

func TestModelKeepsDepthTest(t *testing.T) {

	mvps := stubDrawState(t)

	s := &Model{loaded: true}
	s.shader.Id = 1

	rend := &recordingRend{}
	s.Render(rend)

	assert.Equal(t, []string{"draw"}, rend.calls)
	assert.Len(t, *mvps, 1)
}

func TestClearColorRender(t *testing.T) {

	rend := &recordingRend{}
	NewClearColor().Render(rend)
	assert.Equal(t, []string{"clear color 0.2 0.3 0.8 1.0", "clear"}, rend.calls)
}
