package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Faultbox/glstudio/pkg/math"
)

func TestLineCircleThroughCenter(t *testing.T) {
	c := Circle{Radius: 1}
	s := Segment{A: m.Vec2{X: -2}, B: m.Vec2{X: 2}}

	points := LineCircle(c, s)
	require.Len(t, points, 2)
	assert.InDelta(t, -1, points[0].X, 1e-6)
	assert.InDelta(t, 0, points[0].Y, 1e-6)
	assert.InDelta(t, 1, points[1].X, 1e-6)
	assert.InDelta(t, 0, points[1].Y, 1e-6)
}

func TestLineCircle(t *testing.T) {
	unit := Circle{Radius: 1}
	tests := []struct {
		name  string
		c     Circle
		s     Segment
		count int
	}{
		{"miss", unit, Segment{m.Vec2{X: -2, Y: 2}, m.Vec2{X: 2, Y: 2}}, 0},
		{"tangent", unit, Segment{m.Vec2{X: -2, Y: 1}, m.Vec2{X: 2, Y: 1}}, 1},
		{"inside", unit, Segment{m.Vec2{X: -0.5}, m.Vec2{X: 0.5}}, 0},
		{"exits once", unit, Segment{m.Vec2{}, m.Vec2{X: 3}}, 1},
		{"zero length", unit, Segment{m.Vec2{X: 1}, m.Vec2{X: 1}}, 0},
		{"offset center", Circle{Center: m.Vec2{X: 1, Y: 1}, Radius: 0.5}, Segment{m.Vec2{Y: 1}, m.Vec2{X: 2, Y: 1}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := LineCircle(tt.c, tt.s)
			assert.Len(t, points, tt.count)
			for _, p := range points {
				assert.InDelta(t, tt.c.Radius, p.Distance(tt.c.Center), 1e-5)
			}
		})
	}
}

func TestCircleThrough(t *testing.T) {
	c := CircleThrough(m.Vec2{X: 1, Y: 1}, m.Vec2{X: 4, Y: 5})
	assert.Equal(t, float32(5), c.Radius)
}

func TestCirclePoints(t *testing.T) {
	c := Circle{Center: m.Vec2{X: 0.2, Y: -0.1}, Radius: 0.3}
	pts := CirclePoints(c, 100)
	require.Len(t, pts, 200)

	assert.InDelta(t, 0.5, pts[0], 1e-6)
	assert.InDelta(t, -0.1, pts[1], 1e-6)
	for i := 0; i < len(pts); i += 2 {
		p := m.Vec2{X: pts[i], Y: pts[i+1]}
		assert.InDelta(t, 0.3, p.Distance(c.Center), 1e-5)
	}

	assert.Nil(t, CirclePoints(c, 0))
}

func TestCanvasToNDC(t *testing.T) {
	tests := []struct {
		x, y float32
		want m.Vec2
	}{
		{0, 0, m.Vec2{X: -1, Y: 1}},
		{700, 700, m.Vec2{X: 1, Y: -1}},
		{350, 350, m.Vec2{}},
		{175, 525, m.Vec2{X: -0.5, Y: -0.5}},
	}
	for _, tt := range tests {
		got := CanvasToNDC(tt.x, tt.y, 700, 700)
		assert.InDelta(t, tt.want.X, got.X, 1e-6)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.9), Clamp(1.2, -0.9, 0.9))
	assert.Equal(t, float32(-0.9), Clamp(-3, -0.9, 0.9))
	assert.Equal(t, float32(0.25), Clamp(0.25, -0.9, 0.9))
}
