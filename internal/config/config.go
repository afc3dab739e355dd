package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the default config file for a program, relative to the process working directory
// (e.g. "config/customizer.yaml").
func Path(program string) string {
	return filepath.Join("config", program+".yaml")
}

// Window holds startup window settings. The window is not resized after startup.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Debug holds overlay toggles. Both are off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Customizer holds the customizer's initial parameters. Field names match customizer.Params so
// values can be copied across by name.
type Customizer struct {
	Color          string  `yaml:"color"`
	Width          float32 `yaml:"width"`
	Height         float32 `yaml:"height"`
	Depth          float32 `yaml:"depth"`
	RotationSpeedX float32 `yaml:"rotation_speed_x"`
	RotationSpeedY float32 `yaml:"rotation_speed_y"`
	Opacity        float32 `yaml:"opacity"`
	Metalness      float32 `yaml:"metalness"`
	Roughness      float32 `yaml:"roughness"`
	Wireframe      bool    `yaml:"wireframe"`
}

// Gallery holds the gallery's startup settings. When AutoRender is false the gallery starts
// empty until the render button is pressed.
type Gallery struct {
	Shape          string  `yaml:"shape"`
	Count          int     `yaml:"count"`
	AutoRender     bool    `yaml:"auto_render"`
	CameraDistance float32 `yaml:"camera_distance"`
}

// Config is the whole file. Each program reads the sections it needs. Font names a font family
// or file under assets/fonts; Stylesheet is a CSS file replacing the built-in panel theme.
type Config struct {
	Window     Window     `yaml:"window"`
	Debug      Debug      `yaml:"debug"`
	Font       string     `yaml:"font,omitempty"`
	Stylesheet string     `yaml:"stylesheet,omitempty"`
	Customizer Customizer `yaml:"customizer"`
	Gallery    Gallery    `yaml:"gallery"`
}

// Default returns the built-in configuration for program ("customizer" or "gallery").
// program only affects the window title.
func Default(program string) Config {
	title := "shape-demos"
	if program != "" {
		title += " - " + program
	}
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     title,
			TargetFPS: 60,
		},
		Customizer: Customizer{
			Color:          "#44aa88",
			Width:          1,
			Height:         1,
			Depth:          1,
			RotationSpeedX: 0.005,
			RotationSpeedY: 0.005,
			Opacity:        1,
			Metalness:      0,
			Roughness:      1,
		},
		Gallery: Gallery{
			Shape:          "cube",
			Count:          45,
			CameraDistance: 12,
		},
	}
}

// Load reads path over Default(program), so keys missing from the file keep their defaults.
// A missing file is not an error. A file that cannot be parsed returns Default(program) and the error.
func Load(path, program string) (Config, error) {
	cfg := Default(program)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(program), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
