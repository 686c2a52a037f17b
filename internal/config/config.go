// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/glstudio/internal/app/modes"
	"github.com/Faultbox/glstudio/internal/engine/camera"
	"github.com/Faultbox/glstudio/internal/engine/texture"
	"github.com/Faultbox/glstudio/internal/mesh"
	"github.com/Faultbox/glstudio/internal/scene"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Exercise ExerciseConfig `yaml:"exercise" toml:"exercise"`
	Shape    ShapeConfig    `yaml:"shape" toml:"shape"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Orbit    OrbitConfig    `yaml:"orbit" toml:"orbit"`
	Shaders  ShadersConfig  `yaml:"shaders" toml:"shaders"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width" toml:"width"`
	Height     int        `yaml:"height" toml:"height"`
	Fullscreen bool       `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool       `yaml:"vsync" toml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit" toml:"fps_limit"`
	ClearColor [4]float32 `yaml:"clear_color" toml:"clear_color"`
	Samples    int        `yaml:"samples" toml:"samples"`
	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// ExerciseConfig selects the exercise to run.
type ExerciseConfig struct {
	Name string `yaml:"name" toml:"name"`
}

// ShapeConfig configures the solid shown by the shapes exercise.
type ShapeConfig struct {
	Kind     string `yaml:"kind" toml:"kind"`
	Segments int    `yaml:"segments" toml:"segments"`
	Rings    int    `yaml:"rings" toml:"rings"`
	// Color overrides the per-face palette when set ("#rrggbb").
	Color string `yaml:"color" toml:"color"`
	// VertexColors lights the per-vertex colors instead of the material.
	VertexColors bool   `yaml:"vertex_colors" toml:"vertex_colors"`
	NormalMode   string `yaml:"normal_mode" toml:"normal_mode"`
	Shading      string `yaml:"shading" toml:"shading"`
}

// CameraConfig holds camera settings. FOV is in degrees.
type CameraConfig struct {
	FOV        float32 `yaml:"fov" toml:"fov"`
	Distance   float32 `yaml:"distance" toml:"distance"`
	Damping    float32 `yaml:"damping" toml:"damping"`
	Projection string  `yaml:"projection" toml:"projection"`
}

// OrbitConfig configures orbiting bodies. An empty body list uses the
// exercise's built-in system.
type OrbitConfig struct {
	TimeScale  float32          `yaml:"time_scale" toml:"time_scale"`
	TextureDir string           `yaml:"texture_dir" toml:"texture_dir"`
	Bodies     []scene.BodySpec `yaml:"bodies" toml:"bodies"`
}

// ShadersConfig holds shader source settings. An empty Dir uses the
// embedded shaders.
type ShadersConfig struct {
	Dir       string `yaml:"dir" toml:"dir"`
	HotReload bool   `yaml:"hot_reload" toml:"hot_reload"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	LogFile    string `yaml:"log_file" toml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
	Console    bool   `yaml:"console" toml:"console"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         800,
			Height:        800,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      0,
			ClearColor:    [4]float32{0.1, 0.1, 0.1, 1},
			Samples:       4,
			ScreenshotDir: "screenshots",
		},
		Exercise: ExerciseConfig{
			Name: "shapes",
		},
		Shape: ShapeConfig{
			Kind:       mesh.Cube.String(),
			Segments:   32,
			Rings:      16,
			NormalMode: mesh.FaceNormals.String(),
			Shading:    modes.Phong.String(),
		},
		Camera: CameraConfig{
			FOV:        60,
			Distance:   5,
			Damping:    0.05,
			Projection: camera.Perspective.String(),
		},
		Orbit: OrbitConfig{
			TimeScale:  1,
			TextureDir: ".",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
			Console:    true,
		},
	}
}

// MeshOptions returns the mesh builder options for the shape section.
func (c ShapeConfig) MeshOptions() (mesh.Options, error) {
	opts := mesh.Options{Segments: c.Segments, Rings: c.Rings}
	if c.Color == "" {
		return opts, nil
	}
	rgba, err := texture.ParseHexColor(c.Color)
	if err != nil {
		return opts, err
	}
	return opts.WithColor(mesh.Color(texture.Float4(rgba))), nil
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		add("graphics size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPSLimit < 0 {
		add("graphics.fps_limit %d", c.Graphics.FPSLimit)
	}
	if c.Graphics.Samples < 0 || c.Graphics.Samples > 16 {
		add("graphics.samples %d, need 0 to 16", c.Graphics.Samples)
	}
	for _, v := range c.Graphics.ClearColor {
		if v < 0 || v > 1 {
			add("graphics.clear_color %v", c.Graphics.ClearColor)
			break
		}
	}

	if c.Exercise.Name == "" {
		add("exercise.name is empty")
	}

	if _, err := mesh.ParseKind(c.Shape.Kind); err != nil {
		add("shape.kind: %v", err)
	}
	if c.Shape.Segments < 3 {
		add("shape.segments %d, need at least 3", c.Shape.Segments)
	}
	if c.Shape.Rings < 2 {
		add("shape.rings %d, need at least 2", c.Shape.Rings)
	}
	if _, err := c.Shape.MeshOptions(); err != nil {
		add("shape.color: %v", err)
	}
	if _, err := mesh.ParseNormalMode(c.Shape.NormalMode); err != nil {
		add("shape.normal_mode: %v", err)
	}
	if _, err := modes.ParseShading(c.Shape.Shading); err != nil {
		add("shape.shading: %v", err)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		add("camera.fov %g", c.Camera.FOV)
	}
	if c.Camera.Distance <= 0 {
		add("camera.distance %g", c.Camera.Distance)
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		add("camera.damping %g", c.Camera.Damping)
	}
	if _, err := camera.ParseProjection(c.Camera.Projection); err != nil {
		add("camera.projection: %v", err)
	}

	if c.Orbit.TimeScale < 0 {
		add("orbit.time_scale %g", c.Orbit.TimeScale)
	}
	for _, b := range c.Orbit.Bodies {
		if b.Name == "" {
			add("orbit body without a name")
		}
		if _, err := texture.ParseHexColor(b.Color); err != nil {
			add("orbit body %q: %v", b.Name, err)
		}
	}

	l := c.Logging
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		add("logging rotation size %d MB, backups %d, age %d days", l.MaxSizeMB, l.MaxBackups, l.MaxAgeDays)
	}

	return errors.Join(errs...)
}
