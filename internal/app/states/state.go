// Package states implements the exercises and the manager that switches
// between them.
package states

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/Faultbox/glstudio/internal/config"
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/Faultbox/glstudio/pkg/math"
)

// ErrUnknownExercise is returned by New for names that are not registered.
var ErrUnknownExercise = errors.New("unknown exercise")

// State represents one exercise.
type State interface {
	// Settings returns the global GL state the exercise needs.
	Settings() Settings

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with the elapsed seconds.
	Update(dt float32) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleInput processes input events.
	HandleInput(ev input.Event) error
}

// Settings is the global render state of an exercise.
type Settings struct {
	ClearColor [4]float32
	DepthTest  bool
	// SquareViewport keeps the drawing area square and centered.
	SquareViewport bool
}

// Program is a linked shader program.
type Program interface {
	gpu.Pipeline
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v [4]float32)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
}

// Programs looks up shader programs by name.
type Programs interface {
	Program(name string) (Program, error)
}

// Texture is a GPU texture.
type Texture interface {
	Bind(unit uint32)
	Delete()
}

// Textures loads textures, substituting a flat color on failure.
type Textures interface {
	Texture(path string, fallback color.RGBA) Texture
}

// Surface is the window area the exercises draw into.
type Surface interface {
	// Size returns the window size in pixels.
	Size() (width, height int)
	// Viewport returns the drawing area, origin bottom-left.
	Viewport() geom.Rect
	// ClearRect clears rect to c.
	ClearRect(rect geom.Rect, c [4]float32)
}

// Env is everything an exercise draws with.
type Env struct {
	Device   gpu.Device
	Programs Programs
	Textures Textures
	Surface  Surface
	Config   *config.Config
}

type factory func(env *Env) State

var exercises = map[string]factory{
	"quadrants": func(env *Env) State { return NewQuadrants(env) },
	"square":    func(env *Env) State { return NewSquare(env) },
	"lines":     func(env *Env) State { return NewLines(env) },
	"orbit":     func(env *Env) State { return NewOrbit(env) },
	"shapes":    func(env *Env) State { return NewShapes(env) },
	"solar":     func(env *Env) State { return NewSolar(env) },
}

// Names returns the registered exercise names, sorted.
func Names() []string {
	names := make([]string, 0, len(exercises))
	for n := range exercises {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New creates the named exercise.
func New(name string, env *Env) (State, error) {
	f, ok := exercises[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w (have %v)", name, ErrUnknownExercise, Names())
	}
	return f(env), nil
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State

	// OnEnter, when set, is called with a state just before it is entered.
	OnEnter func(State)
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float32) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if m.OnEnter != nil {
			m.OnEnter(m.current)
		}
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleInput forwards ev to the current state.
func (m *Manager) HandleInput(ev input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(ev)
	}
	return nil
}

// Close exits the current state.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
