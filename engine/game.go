package engine

import (
	"github.com/lgl-dev/lgl/renderer"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/timing"
	lglimgui "github.com/lgl-dev/lgl/ui/imgui"
)

var (
	isRunning = false
)

type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	DeInit()
}

// Run calls g.Init and then runs the frame loop until Quit is called, after which g.DeInit is called.
//
// Each frame the screen is cleared to black before g.Render, changed shaders are reloaded and
// the UI is drawn on top of whatever the game rendered.
func Run(g Game, w *Window, rend renderer.Render, ui *lglimgui.ImguiInfo) {

	isRunning = true

	// Simulate an imgui frame during init so imgui calls are allowed within init
	width, height := w.SDLWin.GetSize()
	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()

	ui.FrameStart(float32(width), float32(height))
	g.Init()
	ui.Render(float32(width), float32(height), fbWidth, fbHeight)
	rend.FrameEnd()

	for isRunning {

		width, height = w.SDLWin.GetSize()
		fbWidth, fbHeight = w.SDLWin.GLGetDrawableSize()

		timing.FrameStarted()
		w.handleInputs()
		shaders.DefaultReloader.Update()

		ui.FrameStart(float32(width), float32(height))

		g.Update()

		rend.SetClearColor(0, 0, 0, 1)
		rend.Clear()
		g.Render()

		ui.Render(float32(width), float32(height), fbWidth, fbHeight)
		w.SDLWin.GLSwap()

		g.FrameEnd()
		rend.FrameEnd()
		timing.FrameEnded()
	}

	g.DeInit()
}

func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}
