package scenes

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/lgl-dev/lgl/renderer"
)

// ClearColor lets the user pick the color the screen is cleared with
type ClearColor struct {
	Color [4]float32
}

var _ Scene = &ClearColor{}

func (s *ClearColor) Update(dt float32) {
}

func (s *ClearColor) Render(rend renderer.Render) {
	rend.SetClearColor(s.Color[0], s.Color[1], s.Color[2], s.Color[3])
	rend.Clear()
}

func (s *ClearColor) ImGuiRender() {
	imgui.ColorEdit4("Clear Color", &s.Color)
}

func (s *ClearColor) Delete() {
}

func NewClearColor() *ClearColor {
	return &ClearColor{
		Color: [4]float32{0.2, 0.3, 0.8, 1},
	}
}
