package main

import (
	"path/filepath"

	"github.com/lgl-dev/lgl/config"
	"github.com/lgl-dev/lgl/engine"
	"github.com/lgl-dev/lgl/input"
	"github.com/lgl-dev/lgl/logging"
	"github.com/lgl-dev/lgl/renderer/rendgl"
	"github.com/lgl-dev/lgl/scenes"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/lgl-dev/lgl/timing"
	lglimgui "github.com/lgl-dev/lgl/ui/imgui"
	"github.com/veandco/go-sdl2/sdl"
)

type Game struct {
	Cfg       config.Config
	Win       *engine.Window
	Rend      *rendgl.RendGL
	ImGUIInfo *lglimgui.ImguiInfo

	Harness *scenes.Harness
}

func main() {

	cfg, err := config.Load(config.DefaultConfigPath, config.DefaultEnvPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	if err = logging.SetLevel(cfg.Debug.LogLevel); err != nil {
		logging.ErrLog.Fatalln("Failed to set log level. Err:", err)
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init lgl. Err:", err)
	}

	rend := rendgl.NewRendGL()

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE|engine.WindowFlags_ALLOW_HIGHDPI, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	engine.SetVSync(cfg.Window.VSync)

	if cfg.Debug.HotReload {

		shaders.DefaultReloader, err = shaders.NewHotReloader()
		if err != nil {
			logging.WarnLog.Warnln("Shader hot reload is disabled. Err:", err)
		} else {
			defer shaders.DefaultReloader.Close()
		}
	}

	game := &Game{
		Cfg:       cfg,
		Win:       window,
		Rend:      rend,
		ImGUIInfo: lglimgui.NewImGui(filepath.Join(cfg.Res.ShaderDir, "imgui.glsl")),
	}

	engine.Run(game, window, game.Rend, game.ImGUIInfo)
}

func (g *Game) Init() {

	menu := scenes.NewMenu()

	entries := []struct {
		name    string
		factory scenes.Factory
	}{
		{"Clear Color", func() scenes.Scene { return scenes.NewClearColor() }},
		{"Uniform Color", func() scenes.Scene { return scenes.NewUniformColor(g.Cfg.Res) }},
		{"2D Texture", func() scenes.Scene { return scenes.NewTexture2D(g.Cfg.Res) }},
		{"Model", func() scenes.Scene { return scenes.NewModel(g.Cfg.Res, g.Win.AspectRatio()) }},
	}

	for _, e := range entries {
		if err := menu.Register(e.name, e.factory); err != nil {
			logging.ErrLog.Fatalln("Failed to register scene. Err:", err)
		}
	}

	g.Harness = scenes.NewHarness(menu)

	if g.Cfg.StartScene != "" {
		if err := g.Harness.Select(g.Cfg.StartScene); err != nil {
			logging.ErrLog.Println("Failed to open start scene. Err:", err)
		}
	}
}

func (g *Game) Update() {

	if input.IsQuitClicked() {
		engine.Quit()
	}

	// Escape goes back to the menu first and quits from the menu
	if input.KeyClicked(sdl.K_ESCAPE) {
		if g.Harness.IsMenuActive() {
			engine.Quit()
		} else {
			g.Harness.Back()
		}
	}
}

func (g *Game) Render() {
	g.Harness.Frame(timing.DT(), g.Rend)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.Harness.Delete()
	g.ImGUIInfo.Delete()
}
