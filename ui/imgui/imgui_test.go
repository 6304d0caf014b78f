package lglimgui

import (
	"testing"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/lgl-dev/lgl/buffers"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLayoutMatchesDrawVert(t *testing.T) {

	// pos (2 floats) + uv (2 floats) + packed color
	assert.Equal(t, int32(20), Layout.Stride)
	assert.Equal(t, []int{0, 8, 16}, []int{Layout.Elements[0].Offset, Layout.Elements[1].Offset, Layout.Elements[2].Offset})
	assert.Equal(t, buffers.DataTypeUint8Vec4, Layout.Elements[2].ElementType)
	assert.True(t, Layout.Elements[2].Normalized)
}

func TestSdlScancodeToImGuiKey(t *testing.T) {

	assert.Equal(t, imgui.KeyTab, SdlScancodeToImGuiKey(sdl.SCANCODE_TAB))
	assert.Equal(t, imgui.KeyEscape, SdlScancodeToImGuiKey(sdl.SCANCODE_ESCAPE))
	assert.Equal(t, imgui.KeyA, SdlScancodeToImGuiKey(sdl.SCANCODE_A))
	assert.Equal(t, imgui.Key0, SdlScancodeToImGuiKey(sdl.SCANCODE_0))
	assert.Equal(t, imgui.Key1, SdlScancodeToImGuiKey(sdl.SCANCODE_1))
	assert.Equal(t, imgui.Key9, SdlScancodeToImGuiKey(sdl.SCANCODE_9))
	assert.Equal(t, imgui.KeyNone, SdlScancodeToImGuiKey(sdl.SCANCODE_F12))
}
