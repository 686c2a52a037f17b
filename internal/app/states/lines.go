package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/Faultbox/glstudio/pkg/math"
)

const circleSegments = 100

var (
	circleClr       = [4]float32{1, 0, 1, 1}
	segmentClr      = [4]float32{0.5, 0.5, 0.8, 1}
	intersectionClr = [4]float32{1, 1, 0, 1}
)

// lineTool turns two drags into a circle and a segment. The first drag
// sets the circle's center and a point on it, the second the segment's
// end points. Further drags are ignored.
type lineTool struct {
	circle  *geom.Circle
	segment *geom.Segment

	drawing    bool
	start, end math.Vec2
	moved      bool
}

func (t *lineTool) complete() bool {
	return t.segment != nil
}

func (t *lineTool) press(p math.Vec2) {
	if t.drawing || t.complete() {
		return
	}
	t.drawing = true
	t.moved = false
	t.start = p
}

func (t *lineTool) move(p math.Vec2) {
	if t.drawing {
		t.end = p
		t.moved = true
	}
}

// release commits the shape being drawn and reports whether one was added.
func (t *lineTool) release() bool {
	if !t.drawing {
		return false
	}
	t.drawing = false
	if !t.moved {
		return false
	}
	if t.circle == nil {
		c := geom.CircleThrough(t.start, t.end)
		t.circle = &c
	} else {
		t.segment = &geom.Segment{A: t.start, B: t.end}
	}
	return true
}

func (t *lineTool) intersections() []math.Vec2 {
	if !t.complete() {
		return nil
	}
	return geom.LineCircle(*t.circle, *t.segment)
}

// Lines lets the user draw a circle and a segment with the mouse and marks
// where they intersect.
type Lines struct {
	env  *Env
	log  *zap.Logger
	flat flat
	tool lineTool

	axes, circle, segment, points, temp *gpu.Stream
}

// NewLines creates the lines exercise.
func NewLines(env *Env) *Lines {
	return &Lines{env: env, log: logger.Named("lines")}
}

func (s *Lines) Settings() Settings {
	return Settings{ClearColor: black, SquareViewport: true}
}

func (s *Lines) Enter() error {
	f, err := loadFlat(s.env)
	if err != nil {
		return err
	}
	s.flat = f
	s.tool = lineTool{}

	dev := s.env.Device
	s.axes = gpu.NewStream(dev, 0, 2)
	s.axes.Set(axisVerts)
	s.circle = gpu.NewStream(dev, 0, 2)
	s.segment = gpu.NewStream(dev, 0, 2)
	s.points = gpu.NewStream(dev, 0, 2)
	s.temp = gpu.NewStream(dev, 0, 2)
	return nil
}

func (s *Lines) Exit() error {
	for _, st := range []*gpu.Stream{s.axes, s.circle, s.segment, s.points, s.temp} {
		if st != nil {
			st.Delete()
		}
	}
	return nil
}

func (s *Lines) Update(float32) error { return nil }

func (s *Lines) HandleInput(ev input.Event) error {
	switch ev.Type {
	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			s.tool.press(mouseNDC(s.env.Surface, ev.MouseX, ev.MouseY))
		}
	case input.EventMouseMove:
		s.tool.move(mouseNDC(s.env.Surface, ev.MouseX, ev.MouseY))
	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft && s.tool.release() {
			s.committed()
		}
	}
	return nil
}

// committed uploads the new shape and logs what the overlay text would show.
func (s *Lines) committed() {
	t := &s.tool
	if !t.complete() {
		s.circle.Set(geom.CirclePoints(*t.circle, circleSegments))
		s.log.Info("circle",
			zap.Float32("center_x", t.circle.Center.X),
			zap.Float32("center_y", t.circle.Center.Y),
			zap.Float32("radius", t.circle.Radius),
		)
		return
	}

	seg := t.segment
	s.segment.Set([]float32{seg.A.X, seg.A.Y, seg.B.X, seg.B.Y})
	s.log.Info("line segment",
		zap.Float32("x1", seg.A.X), zap.Float32("y1", seg.A.Y),
		zap.Float32("x2", seg.B.X), zap.Float32("y2", seg.B.Y),
	)

	hits := t.intersections()
	pts := make([]float32, 0, 2*len(hits))
	for _, p := range hits {
		pts = append(pts, p.X, p.Y)
	}
	s.points.Set(pts)
	if len(hits) == 0 {
		s.log.Info("no intersection")
		return
	}
	for i, p := range hits {
		s.log.Info("intersection", zap.Int("point", i+1), zap.Float32("x", p.X), zap.Float32("y", p.Y))
	}
}

func (s *Lines) Render() error {
	id := math.Identity()
	t := &s.tool

	if t.circle != nil {
		s.flat.draw(s.circle, gpu.LineLoop, id, circleClr)
	}
	if t.segment != nil {
		s.flat.draw(s.segment, gpu.Lines, id, segmentClr)
		s.flat.draw(s.points, gpu.Points, id, intersectionClr)
	}

	if t.drawing && t.moved {
		if t.circle == nil {
			s.temp.Set(geom.CirclePoints(geom.CircleThrough(t.start, t.end), circleSegments))
			s.flat.draw(s.temp, gpu.LineLoop, id, gray)
		} else {
			s.temp.Set([]float32{t.start.X, t.start.Y, t.end.X, t.end.Y})
			s.flat.draw(s.temp, gpu.Lines, id, gray)
		}
	}

	s.flat.drawAxes(s.axes)
	return nil
}
