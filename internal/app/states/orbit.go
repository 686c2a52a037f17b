package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/app/modes"
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/engine/texture"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/internal/scene"
	"github.com/Faultbox/glstudio/pkg/math"
)

var orbitClear = [4]float32{0.2, 0.3, 0.4, 1}

// Orbit animates a planar sun, earth and moon hierarchy drawn as squares.
type Orbit struct {
	env    *Env
	log    *zap.Logger
	flat   flat
	modes  modes.State
	system *scene.System
	colors [][4]float32

	quad, axes *gpu.Stream
}

// NewOrbit creates the orbit exercise.
func NewOrbit(env *Env) *Orbit {
	return &Orbit{env: env, log: logger.Named("orbit")}
}

func (s *Orbit) Settings() Settings {
	return Settings{ClearColor: orbitClear, SquareViewport: true}
}

func (s *Orbit) Enter() error {
	f, err := loadFlat(s.env)
	if err != nil {
		return err
	}
	s.flat = f

	specs := s.env.Config.Orbit.Bodies
	if len(specs) == 0 {
		specs = scene.EarthMoon()
	}
	s.system, err = scene.NewSystem(math.Vec3{Z: 1}, specs)
	if err != nil {
		return err
	}
	s.system.TimeScale = s.env.Config.Orbit.TimeScale
	s.colors, err = bodyColors(s.system)
	if err != nil {
		return err
	}
	s.modes = modes.State{}

	s.quad = gpu.NewStream(s.env.Device, 0, 2)
	s.quad.Set([]float32{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5})
	s.axes = gpu.NewStream(s.env.Device, 0, 2)
	s.axes.Set(axisVerts)

	s.log.Info("orbit system ready", zap.Int("bodies", len(s.system.Bodies())))
	return nil
}

func bodyColors(sys *scene.System) ([][4]float32, error) {
	out := make([][4]float32, 0, len(sys.Bodies()))
	for _, b := range sys.Bodies() {
		c, err := texture.ParseHexColor(b.Color)
		if err != nil {
			return nil, err
		}
		out = append(out, texture.Float4(c))
	}
	return out, nil
}

func (s *Orbit) Exit() error {
	for _, st := range []*gpu.Stream{s.quad, s.axes} {
		if st != nil {
			st.Delete()
		}
	}
	return nil
}

// System returns the animated bodies.
func (s *Orbit) System() *scene.System {
	return s.system
}

func (s *Orbit) Update(dt float32) error {
	s.system.Update(dt)
	return nil
}

func (s *Orbit) HandleInput(ev input.Event) error {
	if ev.Type != input.EventKeyDown {
		return nil
	}
	cmd := modes.CommandFor(ev.Rune)
	if cmd != modes.TogglePause {
		return nil
	}
	s.modes.Apply(cmd)
	s.system.Paused = s.modes.Paused
	s.log.Info("animation", zap.Bool("paused", s.modes.Paused))
	return nil
}

func (s *Orbit) Render() error {
	s.flat.drawAxes(s.axes)
	for i, b := range s.system.Bodies() {
		s.flat.draw(s.quad, gpu.TriangleFan, b.World(s.system.Axis), s.colors[i])
	}
	return nil
}
