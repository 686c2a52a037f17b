package mesh

import (
	"fmt"
	"strings"
)

// Kind selects one of the procedural solids.
type Kind int

const (
	Cube Kind = iota
	Octahedron
	SquarePyramid
	Cone
	Sphere
)

var kindNames = [...]string{
	Cube:          "cube",
	Octahedron:    "octahedron",
	SquarePyramid: "square_pyramid",
	Cone:          "cone",
	Sphere:        "sphere",
}

// Kinds lists every solid in declaration order.
func Kinds() []Kind {
	return []Kind{Cube, Octahedron, SquarePyramid, Cone, Sphere}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a config name ("cube", "cone", "square_pyramid", ...) to a Kind.
// Dashes and case are ignored, and "pyramid" is accepted for SquarePyramid.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if name == "pyramid" {
		return SquarePyramid, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Palette colors used by the solids.
var (
	Red     = Color{1, 0, 0, 1}
	Yellow  = Color{1, 1, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Cyan    = Color{0, 1, 1, 1}
	Blue    = Color{0, 0, 1, 1}
	Magenta = Color{1, 0, 1, 1}
	White   = Color{1, 1, 1, 1}
	Black   = Color{0, 0, 0, 1}

	// DefaultColor is used by solids that have no per-face palette.
	DefaultColor = Color{0.8, 0.8, 0.8, 1}
)

// Options holds the shape parameters.
type Options struct {
	// Segments is the number of slices around the Y axis (cone, sphere).
	Segments int
	// Rings is the number of stacks from pole to pole (sphere).
	Rings int
	// Color overrides every vertex color when set.
	Color *Color
}

// DefaultOptions returns 32 segments and 16 rings with no color override.
func DefaultOptions() Options {
	return Options{
		Segments: 32,
		Rings:    16,
	}
}

// WithColor returns a copy of o with the color override set.
func (o Options) WithColor(c Color) Options {
	o.Color = &c
	return o
}
