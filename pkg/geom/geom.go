// Package geom holds the 2D helpers used by the drawing exercises: circles,
// segments, their intersection and the canvas to clip-space conversion.
package geom

import (
	"github.com/chewxy/math32"

	m "github.com/Faultbox/glstudio/pkg/math"
)

// Circle is a circle in the XY plane.
type Circle struct {
	Center m.Vec2
	Radius float32
}

// CircleThrough returns the circle centered at center that passes through p.
func CircleThrough(center, p m.Vec2) Circle {
	return Circle{Center: center, Radius: center.Distance(p)}
}

// Segment is a line segment from A to B.
type Segment struct {
	A, B m.Vec2
}

// Point returns A + t*(B-A).
func (s Segment) Point(t float32) m.Vec2 {
	return s.A.Lerp(s.B, t)
}

// LineCircle returns the points where segment s crosses circle c, ordered by
// their parameter along the segment. A tangent segment yields one point and a
// segment that misses the circle (or has zero length) yields none.
func LineCircle(c Circle, s Segment) []m.Vec2 {
	d := s.B.Sub(s.A)
	f := s.A.Sub(c.Center)

	a := d.Dot(d)
	if a == 0 {
		return nil
	}
	b := 2 * f.Dot(d)
	k := f.Dot(f) - c.Radius*c.Radius

	disc := b*b - 4*a*k
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		t := -b / (2 * a)
		if !inUnit(t) {
			return nil
		}
		return []m.Vec2{s.Point(t)}
	}

	sq := math32.Sqrt(disc)
	var points []m.Vec2
	for _, t := range [2]float32{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if inUnit(t) {
			points = append(points, s.Point(t))
		}
	}
	return points
}

func inUnit(t float32) bool {
	return t >= 0 && t <= 1
}

// CirclePoints returns n points on the circle as interleaved x, y pairs,
// suitable for a line-loop draw.
func CirclePoints(c Circle, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		out = append(out, c.Center.X+c.Radius*co, c.Center.Y+c.Radius*s)
	}
	return out
}

// CanvasToNDC converts a window position (origin top-left, y down) into
// normalized device coordinates.
func CanvasToNDC(x, y, width, height float32) m.Vec2 {
	return m.Vec2{
		X: x/width*2 - 1,
		Y: -(y/height*2 - 1),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
