package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/glstudio/internal/mesh"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Exercise.Name != "shapes" {
		t.Errorf("expected exercise 'shapes', got %s", cfg.Exercise.Name)
	}
	if cfg.Shape.Kind != "cube" {
		t.Errorf("expected shape 'cube', got %s", cfg.Shape.Kind)
	}
	if cfg.Shape.NormalMode != "flat" {
		t.Errorf("expected normal mode 'flat', got %s", cfg.Shape.NormalMode)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %g", cfg.Camera.FOV)
	}
	if cfg.Orbit.TimeScale != 1 {
		t.Errorf("expected time scale 1, got %g", cfg.Orbit.TimeScale)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if !cfg.Logging.Console || !cfg.Logging.Compress || cfg.Logging.MaxAgeDays != 7 {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144
  clear_color: [0.2, 0.3, 0.4, 1.0]

exercise:
  name: solar

shape:
  kind: octahedron
  color: "#ff8000"
  normal_mode: smooth
  shading: gouraud

orbit:
  time_scale: 2
  bodies:
    - name: sun
      scale: 20
      color: "#ffff00"
      emissive: true
    - name: earth
      parent: sun
      orbit_radius: 50
      orbit_speed: 0.6
      color: "#3498db"
      texture: Earth.jpg

logging:
  level: "debug"
  log_file: "glstudio.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Graphics.ClearColor != [4]float32{0.2, 0.3, 0.4, 1} {
		t.Errorf("unexpected clear color %v", cfg.Graphics.ClearColor)
	}
	if cfg.Exercise.Name != "solar" {
		t.Errorf("expected exercise 'solar', got %s", cfg.Exercise.Name)
	}
	if cfg.Shape.Segments != 32 {
		t.Errorf("expected segments default 32 to survive, got %d", cfg.Shape.Segments)
	}
	if len(cfg.Orbit.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(cfg.Orbit.Bodies))
	}
	earth := cfg.Orbit.Bodies[1]
	if earth.Parent != "sun" || earth.OrbitRadius != 50 || earth.Texture != "Earth.jpg" {
		t.Errorf("unexpected earth body %+v", earth)
	}
	if !cfg.Orbit.Bodies[0].Emissive {
		t.Error("expected sun to be emissive")
	}
	if cfg.Logging.LogFile != "glstudio.log" {
		t.Errorf("expected log file 'glstudio.log', got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 640
height = 480

[shape]
kind = "cone"
segments = 8

[camera]
projection = "orthographic"

[[orbit.bodies]]
name = "sun"
color = "#ff0000"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 640 || cfg.Graphics.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Shape.Kind != "cone" || cfg.Shape.Segments != 8 {
		t.Errorf("unexpected shape %+v", cfg.Shape)
	}
	if cfg.Camera.Projection != "orthographic" {
		t.Errorf("expected orthographic, got %s", cfg.Camera.Projection)
	}
	if len(cfg.Orbit.Bodies) != 1 || cfg.Orbit.Bodies[0].Name != "sun" {
		t.Errorf("unexpected bodies %+v", cfg.Orbit.Bodies)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"invalid.yaml": "graphics:\n  width: not a number\n  invalid syntax here\n",
		"invalid.toml": "[graphics\nwidth = ",
	}
	for name, content := range files {
		configPath := filepath.Join(tmpDir, name)
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if err := loadFromFile(Default(), configPath); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative fps limit", func(c *Config) { c.Graphics.FPSLimit = -1 }},
		{"too many samples", func(c *Config) { c.Graphics.Samples = 32 }},
		{"clear color out of range", func(c *Config) { c.Graphics.ClearColor[1] = 2 }},
		{"empty exercise", func(c *Config) { c.Exercise.Name = "" }},
		{"unknown shape", func(c *Config) { c.Shape.Kind = "torus" }},
		{"too few segments", func(c *Config) { c.Shape.Segments = 2 }},
		{"too few rings", func(c *Config) { c.Shape.Rings = 1 }},
		{"bad color", func(c *Config) { c.Shape.Color = "orange" }},
		{"bad normal mode", func(c *Config) { c.Shape.NormalMode = "bumpy" }},
		{"bad shading", func(c *Config) { c.Shape.Shading = "toon" }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }},
		{"zero distance", func(c *Config) { c.Camera.Distance = 0 }},
		{"damping above one", func(c *Config) { c.Camera.Damping = 1.5 }},
		{"bad projection", func(c *Config) { c.Camera.Projection = "fisheye" }},
		{"negative time scale", func(c *Config) { c.Orbit.TimeScale = -1 }},
		{"negative log age", func(c *Config) { c.Logging.MaxAgeDays = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = -1
	cfg.Shape.Kind = "torus"

	err := cfg.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("expected 2 problems, got %d: %v", n, err)
	}
}

func TestMeshOptions(t *testing.T) {
	shape := Default().Shape
	opts, err := shape.MeshOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Color != nil {
		t.Error("expected no color override by default")
	}
	if opts.Segments != 32 || opts.Rings != 16 {
		t.Errorf("unexpected options %+v", opts)
	}

	shape.Color = "#ff0000"
	opts, err = shape.MeshOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Color == nil || *opts.Color != (mesh.Color{1, 0, 0, 1}) {
		t.Errorf("unexpected color override %v", opts.Color)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected to find config.toml in current directory, got %q", path)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"out/config.yaml", "out/config.toml"} {
		path := filepath.Join(tmpDir, name)
		cfg := Default()
		cfg.Exercise.Name = "orbit"
		cfg.Graphics.ClearColor = [4]float32{0.2, 0.3, 0.4, 1}

		if err := cfg.SaveTo(path); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}

		loaded := Default()
		if err := loadFromFile(loaded, path); err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if loaded.Exercise.Name != "orbit" {
			t.Errorf("%s: expected exercise 'orbit', got %s", name, loaded.Exercise.Name)
		}
		if loaded.Graphics.ClearColor != cfg.Graphics.ClearColor {
			t.Errorf("%s: expected clear color %v, got %v", name, cfg.Graphics.ClearColor, loaded.Graphics.ClearColor)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "exercise and shape flags",
			setup: func() {
				*flagExercise = "lines"
				*flagShape = "sphere"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Exercise.Name != "lines" {
					t.Errorf("expected exercise 'lines', got %s", cfg.Exercise.Name)
				}
				if cfg.Shape.Kind != "sphere" {
					t.Errorf("expected shape 'sphere', got %s", cfg.Shape.Kind)
				}
			},
			teardown: func() {
				*flagExercise = ""
				*flagShape = ""
			},
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "shader flags",
			setup: func() {
				*flagShaders = "shaders"
				*flagHotReload = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Shaders.Dir != "shaders" || !cfg.Shaders.HotReload {
					t.Errorf("unexpected shaders config %+v", cfg.Shaders)
				}
			},
			teardown: func() {
				*flagShaders = ""
				*flagHotReload = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("shape:\n  kind: torus\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
