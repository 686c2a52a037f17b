package states

import (
	"path/filepath"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/app/modes"
	"github.com/Faultbox/glstudio/internal/engine/camera"
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/engine/lighting"
	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/internal/engine/texture"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/internal/mesh"
	"github.com/Faultbox/glstudio/internal/scene"
	"github.com/Faultbox/glstudio/pkg/math"
)

var (
	solarEye = math.Vec3{X: 120, Y: 60, Z: 180}
	solarSun = lighting.Sun{
		Direction: math.Vec3{X: -20, Y: 40, Z: 60},
		Intensity: 2,
		Ambient:   lighting.Gray(0x29 / 255.0),
	}
)

const (
	solarFOV = 45
	// Orthographic view height in world units per window pixel.
	solarOrthoScale = 1.0 / 8
)

// Solar shows textured planets orbiting a sun in the XZ plane under an
// orbit camera.
type Solar struct {
	env *Env
	log *zap.Logger

	system   *scene.System
	sphere   *gpu.MeshBuffers
	textures []Texture
	prog     Program
	camera   *camera.OrbitCamera
	modes    modes.State
	dragging bool
}

// NewSolar creates the solar exercise.
func NewSolar(env *Env) *Solar {
	return &Solar{env: env, log: logger.Named("solar")}
}

func (s *Solar) Settings() Settings {
	return Settings{ClearColor: black, DepthTest: true}
}

func (s *Solar) Enter() error {
	cfg := s.env.Config
	var err error

	specs := cfg.Orbit.Bodies
	if len(specs) == 0 {
		specs = scene.SolarSystem()
	}
	if s.system, err = scene.NewSystem(math.Up, specs); err != nil {
		return err
	}
	s.system.TimeScale = cfg.Orbit.TimeScale

	if s.prog, err = s.env.Programs.Program(glsl.Textured); err != nil {
		return err
	}

	sphere, err := mesh.NewSphere(mesh.Options{Segments: cfg.Shape.Segments, Rings: cfg.Shape.Rings})
	if err != nil {
		return err
	}
	sphere.SetNormalMode(mesh.VertexNormals)
	if s.sphere, err = gpu.Upload(s.env.Device, sphere); err != nil {
		return err
	}

	s.textures = s.textures[:0]
	for _, b := range s.system.Bodies() {
		fallback, err := texture.ParseHexColor(b.Color)
		if err != nil {
			return err
		}
		path := ""
		if b.Texture != "" {
			path = filepath.Join(cfg.Orbit.TextureDir, b.Texture)
		}
		s.textures = append(s.textures, s.env.Textures.Texture(path, fallback))
	}

	projection, err := camera.ParseProjection(cfg.Camera.Projection)
	if err != nil {
		return err
	}
	s.modes = modes.State{Projection: projection}

	_, h := s.env.Surface.Size()
	s.camera = camera.NewOrbitCamera()
	s.camera.Damping = cfg.Camera.Damping
	s.camera.Lens.FOV = solarFOV * math32.Pi / 180
	s.camera.Lens.Projection = projection
	s.camera.Lens.OrthoHeight = float32(h) * solarOrthoScale
	s.camera.LookFrom(solarEye, math.Vec3{})
	s.camera.SaveHome()

	s.log.Info("solar system ready",
		zap.Int("bodies", len(s.system.Bodies())),
		zap.Stringer("projection", projection),
	)
	return nil
}

func (s *Solar) Exit() error {
	if s.sphere != nil {
		s.sphere.Delete()
	}
	for _, t := range s.textures {
		t.Delete()
	}
	s.textures = nil
	return nil
}

// System returns the animated bodies.
func (s *Solar) System() *scene.System {
	return s.system
}

// Camera returns the orbit camera.
func (s *Solar) Camera() *camera.OrbitCamera {
	return s.camera
}

func (s *Solar) Update(dt float32) error {
	s.system.Update(dt)
	s.camera.Update(dt)
	return nil
}

func (s *Solar) HandleInput(ev input.Event) error {
	switch ev.Type {
	case input.EventKeyDown:
		s.command(modes.CommandFor(ev.Rune))
	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			s.dragging = true
		}
	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			s.dragging = false
		}
	case input.EventMouseMove:
		if s.dragging {
			s.camera.HandleDrag(float32(ev.DX), float32(ev.DY))
		}
	case input.EventMouseWheel:
		s.camera.HandleZoom(ev.Wheel)
	}
	return nil
}

func (s *Solar) command(cmd modes.Command) {
	switch cmd {
	case modes.ToggleProjection:
		s.modes.Apply(cmd)
		s.camera.Lens.Projection = s.modes.Projection
		s.log.Info("projection", zap.Stringer("mode", s.modes.Projection))
	case modes.TogglePause:
		s.modes.Apply(cmd)
		s.system.Paused = s.modes.Paused
		s.log.Info("animation", zap.Bool("paused", s.modes.Paused))
	case modes.ResetArcball:
		s.camera.Reset()
		s.log.Info("camera reset")
	}
}

func (s *Solar) Render() error {
	p := s.prog
	p.Use()
	p.SetMat4("u_view", s.camera.ViewMatrix())
	p.SetMat4("u_projection", s.camera.ProjectionMatrix(s.env.Surface.Viewport().Aspect()))
	solarSun.Apply(p)
	p.SetVec4("u_tint", white)
	p.SetInt("u_texture", 0)

	for i, b := range s.system.Bodies() {
		model := b.World(s.system.Axis)
		s.textures[i].Bind(0)
		p.SetMat4("u_model", model)
		p.SetMat4("u_normalMatrix", model.NormalMatrix())
		p.SetBool("u_unlit", b.Emissive)
		s.sphere.Draw(p)
	}
	return nil
}
