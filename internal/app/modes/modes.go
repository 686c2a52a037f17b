// Package modes holds the toggleable rendering modes shared by the
// exercises and maps keyboard characters to mode commands.
package modes

import (
	"fmt"
	"strings"

	"github.com/Faultbox/glstudio/internal/engine/camera"
	"github.com/Faultbox/glstudio/internal/mesh"
)

// ArcballMode selects what an arcball drag rotates.
type ArcballMode int

const (
	// ArcballCamera rotates the view around the scene.
	ArcballCamera ArcballMode = iota
	// ArcballModel rotates the model in front of a fixed camera.
	ArcballModel
)

func (m ArcballMode) String() string {
	if m == ArcballModel {
		return "model"
	}
	return "camera"
}

// ShadingModel selects where lighting is evaluated.
type ShadingModel int

const (
	// Phong lights per fragment.
	Phong ShadingModel = iota
	// Gouraud lights per vertex.
	Gouraud
)

func (s ShadingModel) String() string {
	if s == Gouraud {
		return "gouraud"
	}
	return "phong"
}

// ParseShading accepts "phong" and "gouraud".
func ParseShading(s string) (ShadingModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "phong":
		return Phong, nil
	case "gouraud":
		return Gouraud, nil
	}
	return Phong, fmt.Errorf("modes: unknown shading model %q", s)
}

// Command is a mode change requested from the keyboard.
type Command int

const (
	None Command = iota
	SmoothNormals
	FlatNormals
	GouraudShading
	PhongShading
	ToggleArcball
	ResetArcball
	ToggleProjection
	TogglePause
)

var commandNames = [...]string{
	None:             "none",
	SmoothNormals:    "smooth_normals",
	FlatNormals:      "flat_normals",
	GouraudShading:   "gouraud",
	PhongShading:     "phong",
	ToggleArcball:    "toggle_arcball",
	ResetArcball:     "reset_arcball",
	ToggleProjection: "toggle_projection",
	TogglePause:      "toggle_pause",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

var keymap = map[rune]Command{
	's': SmoothNormals,
	'f': FlatNormals,
	'g': GouraudShading,
	'p': PhongShading,
	'a': ToggleArcball,
	'r': ResetArcball,
	'c': ToggleProjection,
	' ': TogglePause,
}

// CommandFor returns the command bound to r. Letters are case-insensitive.
func CommandFor(r rune) Command {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return keymap[r]
}

// State is the set of modes one exercise runs with.
type State struct {
	Normals    mesh.NormalMode
	Arcball    ArcballMode
	Shading    ShadingModel
	Projection camera.Projection
	Paused     bool
}

// Apply updates s for cmd and reports whether anything changed.
// ResetArcball returns the arcball to camera mode; the caller also resets
// the arcball rotation.
func (s *State) Apply(cmd Command) bool {
	prev := *s
	switch cmd {
	case SmoothNormals:
		s.Normals = mesh.VertexNormals
	case FlatNormals:
		s.Normals = mesh.FaceNormals
	case GouraudShading:
		s.Shading = Gouraud
	case PhongShading:
		s.Shading = Phong
	case ToggleArcball:
		if s.Arcball == ArcballCamera {
			s.Arcball = ArcballModel
		} else {
			s.Arcball = ArcballCamera
		}
	case ResetArcball:
		s.Arcball = ArcballCamera
		return true
	case ToggleProjection:
		if s.Projection == camera.Perspective {
			s.Projection = camera.Orthographic
		} else {
			s.Projection = camera.Perspective
		}
	case TogglePause:
		s.Paused = !s.Paused
	}
	return *s != prev
}
