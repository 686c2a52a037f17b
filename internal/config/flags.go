package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagExercise   = flag.String("exercise", "", "Exercise to run (quadrants, square, lines, orbit, shapes, solar)")
	flagShape      = flag.String("shape", "", "Solid for the shapes exercise")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShaders    = flag.String("shaders", "", "Directory with shader sources")
	flagHotReload  = flag.Bool("hot-reload", false, "Recompile shaders when their files change")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagExercise != "" {
		cfg.Exercise.Name = *flagExercise
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagHotReload {
		cfg.Shaders.HotReload = true
	}
}
