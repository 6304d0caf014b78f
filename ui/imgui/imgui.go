package lglimgui

import (
	"image"
	"unsafe"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/logging"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/textures"
	"github.com/lgl-dev/lgl/timing"
	"github.com/veandco/go-sdl2/sdl"
)

// Layout is the vertex layout of imgui's ImDrawVert: position, uv and a normalized RGBA8 color
var Layout = buffers.NewLayout(
	buffers.Element{ElementType: buffers.DataTypeVec2},
	buffers.Element{ElementType: buffers.DataTypeVec2},
	buffers.Element{ElementType: buffers.DataTypeUint8Vec4, Normalized: true},
)

type ImguiInfo struct {
	ImCtx imgui.Context

	Shader  shaders.ShaderProgram
	Vao     buffers.VertexArray
	FontTex textures.Texture
}

func (i *ImguiInfo) FrameStart(winWidth, winHeight float32) {

	imIO := imgui.CurrentIO()
	imIO.SetDisplaySize(imgui.Vec2{X: winWidth, Y: winHeight})
	imIO.SetDeltaTime(max(timing.DT(), 1.0/1000))

	imgui.NewFrame()
}

// Render draws the ui built since FrameStart. It changes the bound vao, buffers, program and
// texture, so renderer.Render.FrameEnd must be called after it.
func (i *ImguiInfo) Render(winWidth, winHeight float32, fbWidth, fbHeight int32) {

	imgui.Render()

	// Avoid rendering when minimized
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	drawData := imgui.CurrentDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / winWidth,
		Y: float32(fbHeight) / winHeight,
	})

	if i.Shader.Id == 0 {
		return
	}

	// Alpha blending, no culling, no depth testing, scissor enabled
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	i.Shader.Bind()
	i.Shader.SetUnifInt32("Texture", 0)

	// Imgui has y pointing down, with (0,0) at the top left
	orthoMat := gglm.Ortho(0, winWidth, 0, winHeight, 0, 20)
	i.Shader.SetUnifMat4("ProjMtx", &orthoMat.Mat4)

	i.Vao.Bind()
	vbo := &i.Vao.Vbos[0]
	ibo := &i.Vao.IndexBuffer

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {

		vertexBuffer, vertexBufferSize := list.GetVertexBuffer()
		vbo.SetDataRaw(vertexBuffer, vertexBufferSize, buffers.BufUsage_Stream_Draw)

		indexBuffer, indexBufferSize := list.GetIndexBuffer()
		ibo.SetDataRaw(indexBuffer, int32(indexBufferSize/indexSize), indexSize, buffers.BufUsage_Stream_Draw)

		for _, cmd := range list.Commands() {

			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}

			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureId()))

			clipRect := cmd.ClipRect()
			gl.Scissor(int32(clipRect.X), fbHeight-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))

			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount()), drawType, uintptr(int(cmd.IdxOffset())*indexSize), int32(cmd.VtxOffset()))
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.Enable(gl.DEPTH_TEST)
}

func (i *ImguiInfo) Delete() {
	shaders.DefaultReloader.Untrack(&i.Shader)
	i.Shader.Delete()
	i.Vao.Delete()
	i.FontTex.Delete()
	i.ImCtx.Destroy()
}

// fontAtlasImage copies imgui's RGBA32 font atlas into an image
func fontAtlasImage(fonts imgui.FontAtlas) *image.NRGBA {

	pixels, width, height, bpp := fonts.GetTextureDataAsRGBA32()

	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	copy(img.Pix, unsafe.Slice((*byte)(pixels), int(width*height*bpp)))

	return img
}

// NewImGui creates the imgui context and the GPU objects used to draw it. The returned pointer
// must be kept, as the hot reloader updates the shader through it.
func NewImGui(shaderPath string) *ImguiInfo {

	imguiInfo := &ImguiInfo{
		ImCtx: imgui.CreateContext(),
	}

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	var err error
	imguiInfo.Shader, err = shaders.LoadAndCompileCombinedShader(shaderPath)
	if err != nil {
		logging.ErrLog.Printf("Failed to load imgui shader '%s'. Err: %v\n", shaderPath, err)
	}
	imguiInfo.Shader.Path = shaderPath
	shaders.DefaultReloader.Track(&imguiInfo.Shader)

	imguiInfo.Vao = buffers.NewVertexArray()
	imguiInfo.Vao.AddVertexBuffer(buffers.NewVertexBuffer(Layout.Elements...))
	imguiInfo.Vao.SetIndexBuffer(buffers.NewIndexBuffer())
	imguiInfo.Vao.UnBind()

	// Upload font atlas to the gpu and store our identifier
	imguiInfo.FontTex = textures.NewTextureFromNRGBA(fontAtlasImage(io.Fonts()), nil)
	io.Fonts().SetTexID(imgui.TextureID(uintptr(imguiInfo.FontTex.Id)))

	return imguiInfo
}

func SdlScancodeToImGuiKey(scancode sdl.Scancode) imgui.Key {

	switch scancode {

	case sdl.SCANCODE_TAB:
		return imgui.KeyTab
	case sdl.SCANCODE_LEFT:
		return imgui.KeyLeftArrow
	case sdl.SCANCODE_RIGHT:
		return imgui.KeyRightArrow
	case sdl.SCANCODE_UP:
		return imgui.KeyUpArrow
	case sdl.SCANCODE_DOWN:
		return imgui.KeyDownArrow
	case sdl.SCANCODE_PAGEUP:
		return imgui.KeyPageUp
	case sdl.SCANCODE_PAGEDOWN:
		return imgui.KeyPageDown
	case sdl.SCANCODE_HOME:
		return imgui.KeyHome
	case sdl.SCANCODE_END:
		return imgui.KeyEnd
	case sdl.SCANCODE_INSERT:
		return imgui.KeyInsert
	case sdl.SCANCODE_DELETE:
		return imgui.KeyDelete
	case sdl.SCANCODE_BACKSPACE:
		return imgui.KeyBackspace
	case sdl.SCANCODE_SPACE:
		return imgui.KeySpace
	case sdl.SCANCODE_RETURN:
		return imgui.KeyEnter
	case sdl.SCANCODE_ESCAPE:
		return imgui.KeyEscape
	case sdl.SCANCODE_KP_ENTER:
		return imgui.KeyKeypadEnter

	case sdl.SCANCODE_LCTRL:
		return imgui.KeyLeftCtrl
	case sdl.SCANCODE_RCTRL:
		return imgui.KeyRightCtrl
	case sdl.SCANCODE_LSHIFT:
		return imgui.KeyLeftShift
	case sdl.SCANCODE_RSHIFT:
		return imgui.KeyRightShift
	case sdl.SCANCODE_LALT:
		return imgui.KeyLeftAlt
	case sdl.SCANCODE_RALT:
		return imgui.KeyRightAlt

	case sdl.SCANCODE_A:
		return imgui.KeyA
	case sdl.SCANCODE_C:
		return imgui.KeyC
	case sdl.SCANCODE_V:
		return imgui.KeyV
	case sdl.SCANCODE_X:
		return imgui.KeyX
	case sdl.SCANCODE_Y:
		return imgui.KeyY
	case sdl.SCANCODE_Z:
		return imgui.KeyZ
	}

	if scancode >= sdl.SCANCODE_1 && scancode <= sdl.SCANCODE_9 {
		return imgui.Key1 + imgui.Key(scancode-sdl.SCANCODE_1)
	}

	if scancode == sdl.SCANCODE_0 {
		return imgui.Key0
	}

	return imgui.KeyNone
}
