package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/Faultbox/glstudio/pkg/math"
)

const (
	squareStep  = 0.01
	squareLimit = 0.9
	squareHalf  = 0.1
)

var squareRed = [4]float32{1, 0, 0, 1}

// Square moves a small square with the arrow keys.
type Square struct {
	env    *Env
	log    *zap.Logger
	flat   flat
	stream *gpu.Stream
	pos    math.Vec2
}

// NewSquare creates the square exercise.
func NewSquare(env *Env) *Square {
	return &Square{env: env, log: logger.Named("square")}
}

func (s *Square) Settings() Settings {
	return Settings{ClearColor: black, SquareViewport: true}
}

func (s *Square) Enter() error {
	f, err := loadFlat(s.env)
	if err != nil {
		return err
	}
	s.flat = f
	s.stream = gpu.NewStream(s.env.Device, 0, 2)
	s.stream.Set([]float32{
		-squareHalf, -squareHalf,
		squareHalf, -squareHalf,
		squareHalf, squareHalf,
		-squareHalf, squareHalf,
	})
	s.pos = math.Vec2{}
	return nil
}

func (s *Square) Exit() error {
	if s.stream != nil {
		s.stream.Delete()
		s.stream = nil
	}
	return nil
}

func (s *Square) Update(float32) error { return nil }

// Position returns the square's center in NDC.
func (s *Square) Position() math.Vec2 {
	return s.pos
}

// Move shifts the square by one step per axis, staying inside the canvas.
func (s *Square) Move(dx, dy int) {
	s.pos.X = geom.Clamp(s.pos.X+float32(dx)*squareStep, -squareLimit, squareLimit)
	s.pos.Y = geom.Clamp(s.pos.Y+float32(dy)*squareStep, -squareLimit, squareLimit)
}

func (s *Square) HandleInput(ev input.Event) error {
	if ev.Type != input.EventKeyDown {
		return nil
	}
	switch ev.Key {
	case input.KeyUp:
		s.Move(0, 1)
	case input.KeyDown:
		s.Move(0, -1)
	case input.KeyLeft:
		s.Move(-1, 0)
	case input.KeyRight:
		s.Move(1, 0)
	default:
		return nil
	}
	s.log.Debug("moved", zap.Float32("x", s.pos.X), zap.Float32("y", s.pos.Y))
	return nil
}

func (s *Square) Render() error {
	s.flat.draw(s.stream, gpu.TriangleFan, math.Translate(s.pos.X, s.pos.Y, 0), squareRed)
	return nil
}
