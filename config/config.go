// Package config loads the app settings.
//
// Settings start from Default(), are then overwritten by an optional TOML file,
// and finally by LGL_* environment variables (which may come from a .env file).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigPath = "./lgl.toml"
	DefaultEnvPath    = "./.env"
	EnvPrefix         = "LGL_"
)

type Window struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type Res struct {
	ShaderDir  string `toml:"shader_dir"`
	TextureDir string `toml:"texture_dir"`
	ModelDir   string `toml:"model_dir"`
}

type Debug struct {
	LogLevel string `toml:"log_level"`
	// HotReload recompiles shaders when their files change on disk
	HotReload bool `toml:"hot_reload"`
}

type Config struct {
	Window Window `toml:"window"`
	Res    Res    `toml:"res"`
	Debug  Debug  `toml:"debug"`

	// StartScene is the display name of the scene to open on startup. Empty means the menu.
	StartScene string `toml:"start_scene"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "lgl",
			Width:  960,
			Height: 540,
			VSync:  true,
		},
		Res: Res{
			ShaderDir:  "./res/shaders",
			TextureDir: "./res/textures",
			ModelDir:   "./res/models",
		},
		Debug: Debug{
			LogLevel:  "info",
			HotReload: true,
		},
	}
}

// Load builds the config from defaults, the TOML file at configPath and the environment.
// Missing config or env files are not errors.
func Load(configPath, envPath string) (Config, error) {

	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err == nil {

		if err := Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file '%s': %w", configPath, err)
		}

	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file '%s': %w", envPath, err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Parse decodes TOML data over the values already in cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive. Got (%d, %d)", c.Window.Width, c.Window.Height)
	}

	if c.Res.ShaderDir == "" {
		return errors.New("res.shader_dir can not be empty")
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {

	strVars := map[string]*string{
		"TITLE":       &cfg.Window.Title,
		"SHADER_DIR":  &cfg.Res.ShaderDir,
		"TEXTURE_DIR": &cfg.Res.TextureDir,
		"MODEL_DIR":   &cfg.Res.ModelDir,
		"LOG_LEVEL":   &cfg.Debug.LogLevel,
		"START_SCENE": &cfg.StartScene,
	}

	for name, dst := range strVars {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	intVars := map[string]*int32{
		"WIDTH":  &cfg.Window.Width,
		"HEIGHT": &cfg.Window.Height,
	}

	for name, dst := range intVars {

		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}

		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %w", EnvPrefix, name, err)
		}
		*dst = int32(n)
	}

	boolVars := map[string]*bool{
		"VSYNC":      &cfg.Window.VSync,
		"HOT_RELOAD": &cfg.Debug.HotReload,
	}

	for name, dst := range boolVars {

		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
	}

	return nil
}
