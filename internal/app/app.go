// Package app implements the main loop: it owns the window, the renderer and
// the shader programs, and drives the current exercise once per frame.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/app/states"
	"github.com/Faultbox/glstudio/internal/config"
	"github.com/Faultbox/glstudio/internal/engine/frame"
	"github.com/Faultbox/glstudio/internal/engine/hotreload"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/engine/renderer"
	"github.com/Faultbox/glstudio/internal/engine/screenshot"
	"github.com/Faultbox/glstudio/internal/engine/shader"
	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/internal/engine/window"
	"github.com/Faultbox/glstudio/internal/logger"
)

const title = "GLStudio"

// App is the running application.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	shaders  *shader.Set
	watcher  *hotreload.Watcher

	env      *states.Env
	manager  *states.Manager
	exercise string

	frames *frame.Scheduler
	events []input.Event

	shots     *screenshot.Capture
	shotAsked bool
}

// New opens the window and prepares the exercise named in cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		shots: screenshot.New(cfg.Graphics.ScreenshotDir, "glstudio"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle(cfg.Exercise.Name),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	lib := glsl.Library{Dir: cfg.Shaders.Dir}
	if a.shaders, err = shader.NewSet(lib); err != nil {
		a.Close()
		return nil, err
	}
	a.watchShaders()

	a.env = &states.Env{
		Device:   a.renderer.Device(),
		Programs: programs{a.shaders},
		Textures: textures{},
		Surface:  a.renderer,
		Config:   cfg,
	}
	a.manager = states.NewManager()
	a.manager.OnEnter = a.configure
	if err := a.switchTo(cfg.Exercise.Name); err != nil {
		a.Close()
		return nil, err
	}

	a.frames = frame.NewScheduler()
	a.frames.Register("input", a.input)
	a.frames.Register("shaders", a.reloadShaders)
	a.frames.Register("update", a.update)
	a.frames.Register("render", a.render)

	a.log.Info("application initialized", zap.String("exercise", a.exercise))
	return a, nil
}

func windowTitle(exercise string) string {
	return title + " - " + exercise
}

func (a *App) watchShaders() {
	if !a.cfg.Shaders.HotReload {
		return
	}
	if a.cfg.Shaders.Dir == "" {
		a.log.Warn("shader hot reload needs shaders.dir, using embedded sources")
		return
	}
	w, err := hotreload.New(a.cfg.Shaders.Dir, glsl.VertexExt, glsl.FragmentExt)
	if err != nil {
		a.log.Warn("shader hot reload disabled", zap.Error(err))
		return
	}
	a.watcher = w
}

// switchTo schedules the named exercise. It is entered on the next update.
func (a *App) switchTo(name string) error {
	s, err := states.New(name, a.env)
	if err != nil {
		return err
	}
	a.exercise = name
	a.manager.Change(s)
	if a.window != nil {
		a.window.SetTitle(windowTitle(name))
	}
	return nil
}

// nextExercise cycles through the registered exercises in name order.
func (a *App) nextExercise() error {
	names := states.Names()
	next := names[0]
	for i, n := range names {
		if n == a.exercise {
			next = names[(i+1)%len(names)]
			break
		}
	}
	a.log.Info("switching exercise", zap.String("from", a.exercise), zap.String("to", next))
	return a.switchTo(next)
}

// configure applies the render settings of a state about to be entered.
func (a *App) configure(s states.State) {
	set := s.Settings()
	a.renderer.Configure(renderer.Config{
		ClearColor:     set.ClearColor,
		DepthTest:      set.DepthTest,
		SquareViewport: set.SquareViewport,
	})
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		start := time.Now()
		if err := a.frames.Tick(start); err != nil {
			return err
		}

		if time.Since(fpsTimer) >= time.Second {
			stats := a.frames.Stats()
			a.log.Debug("fps",
				zap.Int("count", stats.FPS),
				zap.Duration("dt", stats.LastDelta),
				zap.Uint64("frames", stats.Frames),
			)
			fpsTimer = time.Now()
		}

		a.limit(start)
	}

	return nil
}

// limit sleeps out the rest of the frame when graphics.fps_limit is set.
func (a *App) limit(start time.Time) {
	if a.cfg.Graphics.FPSLimit <= 0 {
		return
	}
	budget := time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	if d := budget - time.Since(start); d > 0 {
		time.Sleep(d)
	}
}

func (a *App) input(frame.Frame) error {
	var quit bool
	a.events, quit = a.window.PollEvents(a.events)
	if quit {
		a.running = false
		return nil
	}

	for i := range a.events {
		ev := a.toPixels(a.events[i])
		switch ev.Type {
		case input.EventKeyDown:
			switch ev.Key {
			case input.KeyEscape:
				a.running = false
				return nil
			case input.KeyTab:
				if err := a.nextExercise(); err != nil {
					return err
				}
				continue
			case input.KeyF12:
				a.shotAsked = true
				continue
			}
		case input.EventWindowResize:
			a.renderer.Resize(ev.Width, ev.Height)
		}
		if err := a.manager.HandleInput(ev); err != nil {
			return err
		}
	}
	return nil
}

// toPixels converts mouse coordinates from window points to drawable pixels,
// which differ on high-DPI displays.
func (a *App) toPixels(ev input.Event) input.Event {
	switch ev.Type {
	case input.EventMouseMove, input.EventMouseDown, input.EventMouseUp:
	default:
		return ev
	}
	ww, wh := a.window.GetSize()
	dw, dh := a.window.DrawableSize()
	if ww <= 0 || wh <= 0 || (ww == dw && wh == dh) {
		return ev
	}
	ev.MouseX = ev.MouseX * dw / ww
	ev.MouseY = ev.MouseY * dh / wh
	ev.DX = ev.DX * dw / ww
	ev.DY = ev.DY * dh / wh
	return ev
}

func (a *App) reloadShaders(frame.Frame) error {
	if a.watcher == nil {
		return nil
	}
	if paths := a.watcher.Drain(); len(paths) > 0 {
		a.log.Info("shader sources changed", zap.Strings("paths", paths))
		a.shaders.Reload(paths)
	}
	return nil
}

func (a *App) update(f frame.Frame) error {
	if !a.running {
		return nil
	}
	return a.manager.Update(f.Seconds())
}

func (a *App) render(frame.Frame) error {
	if !a.running {
		return nil
	}
	a.renderer.Begin()
	if err := a.manager.Render(); err != nil {
		return err
	}
	a.renderer.End()
	if a.shotAsked {
		a.shotAsked = false
		a.capture()
	}
	a.window.SwapBuffers()
	return nil
}

// capture saves the frame just drawn. Failures are logged only.
func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases everything in reverse order of creation.
func (a *App) Close() {
	a.log.Info("closing application")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing shader watcher", zap.Error(err))
		}
	}
	if a.manager != nil {
		if err := a.manager.Close(); err != nil {
			a.log.Warn("closing exercise", zap.Error(err))
		}
	}
	if a.shaders != nil {
		a.shaders.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
