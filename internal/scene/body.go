// Package scene models hierarchies of orbiting bodies. A body's frame is its
// parent's frame rotated by the orbit angle and moved out by the orbit
// radius; its own spin and scale apply only to the body, not to children.
package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glstudio/pkg/math"
)

var (
	// ErrUnknownParent is returned when a body names a parent that was not
	// declared before it.
	ErrUnknownParent = errors.New("unknown parent body")
	// ErrDuplicateBody is returned for repeated body names.
	ErrDuplicateBody = errors.New("duplicate body name")
)

// BodySpec describes one body. Speeds are in radians per second.
type BodySpec struct {
	Name        string  `yaml:"name" toml:"name"`
	Parent      string  `yaml:"parent,omitempty" toml:"parent,omitempty"`
	OrbitRadius float32 `yaml:"orbit_radius" toml:"orbit_radius"`
	OrbitSpeed  float32 `yaml:"orbit_speed" toml:"orbit_speed"`
	SpinSpeed   float32 `yaml:"spin_speed" toml:"spin_speed"`
	Scale       float32 `yaml:"scale" toml:"scale"`
	Color       string  `yaml:"color" toml:"color"`
	Texture     string  `yaml:"texture,omitempty" toml:"texture,omitempty"`
	// Emissive bodies are drawn without lighting.
	Emissive bool `yaml:"emissive,omitempty" toml:"emissive,omitempty"`
}

// Body is a node of a System.
type Body struct {
	BodySpec
	Parent   *Body
	Children []*Body

	OrbitAngle float32
	SpinAngle  float32
}

// Frame returns the body's coordinate frame, which children inherit.
func (b *Body) Frame(axis math.Vec3) math.Mat4 {
	parent := math.Identity()
	if b.Parent != nil {
		parent = b.Parent.Frame(axis)
	}
	return math.Chain(
		parent,
		math.RotateAxis(axis, b.OrbitAngle),
		math.Translate(b.OrbitRadius, 0, 0),
	)
}

// World returns the model matrix used to draw the body.
func (b *Body) World(axis math.Vec3) math.Mat4 {
	s := b.Scale
	if s == 0 {
		s = 1
	}
	return math.Chain(
		b.Frame(axis),
		math.RotateAxis(axis, b.SpinAngle),
		math.Scale(s, s, s),
	)
}

// Position returns the body's center in world space.
func (b *Body) Position(axis math.Vec3) math.Vec3 {
	return b.Frame(axis).Translation()
}

// System is a set of bodies orbiting about a common axis.
type System struct {
	// Axis is the orbit and spin axis: Z for planar scenes, Y for scenes
	// orbiting in the XZ plane.
	Axis      math.Vec3
	TimeScale float32
	Paused    bool

	bodies []*Body
	byName map[string]*Body
}

// NewSystem builds a system from specs. Parents must precede children.
func NewSystem(axis math.Vec3, specs []BodySpec) (*System, error) {
	s := &System{
		Axis:      axis.Normalize(),
		TimeScale: 1,
		byName:    make(map[string]*Body, len(specs)),
	}
	for _, spec := range specs {
		if _, ok := s.byName[spec.Name]; ok {
			return nil, fmt.Errorf("body %q: %w", spec.Name, ErrDuplicateBody)
		}
		b := &Body{BodySpec: spec}
		if spec.Parent != "" {
			p, ok := s.byName[spec.Parent]
			if !ok {
				return nil, fmt.Errorf("body %q parent %q: %w", spec.Name, spec.Parent, ErrUnknownParent)
			}
			b.Parent = p
			p.Children = append(p.Children, b)
		}
		s.bodies = append(s.bodies, b)
		s.byName[spec.Name] = b
	}
	return s, nil
}

// Bodies returns the bodies in declaration order.
func (s *System) Bodies() []*Body {
	return s.bodies
}

// Body returns the named body, or nil.
func (s *System) Body(name string) *Body {
	return s.byName[name]
}

// Update advances every angle by its speed times dt seconds. Angles wrap to
// [0, 2pi).
func (s *System) Update(dt float32) {
	if s.Paused {
		return
	}
	dt *= s.TimeScale
	for _, b := range s.bodies {
		b.OrbitAngle = wrap(b.OrbitAngle + b.OrbitSpeed*dt)
		b.SpinAngle = wrap(b.SpinAngle + b.SpinSpeed*dt)
	}
}

// Reset sets every angle back to zero.
func (s *System) Reset() {
	for _, b := range s.bodies {
		b.OrbitAngle = 0
		b.SpinAngle = 0
	}
}

// TogglePause flips Paused and returns the new value.
func (s *System) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

func wrap(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}
