package states

import (
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/pkg/geom"
)

// Quadrant colors in geom.Quadrants order.
var quadrantColors = [4][4]float32{
	{0, 1, 0, 1}, // top-right
	{1, 0, 0, 1}, // top-left
	{0, 0, 1, 1}, // bottom-left
	{1, 1, 0, 1}, // bottom-right
}

// Quadrants clears the four quarters of a square canvas to different
// colors.
type Quadrants struct {
	env *Env
}

// NewQuadrants creates the quadrants exercise.
func NewQuadrants(env *Env) *Quadrants {
	return &Quadrants{env: env}
}

func (s *Quadrants) Settings() Settings {
	return Settings{ClearColor: black, SquareViewport: true}
}

func (s *Quadrants) Enter() error                  { return nil }
func (s *Quadrants) Exit() error                   { return nil }
func (s *Quadrants) Update(float32) error          { return nil }
func (s *Quadrants) HandleInput(input.Event) error { return nil }

func (s *Quadrants) Render() error {
	for i, r := range geom.Quadrants(s.env.Surface.Viewport()) {
		s.env.Surface.ClearRect(r, quadrantColors[i])
	}
	return nil
}
