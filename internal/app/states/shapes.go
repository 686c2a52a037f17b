package states

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/app/modes"
	"github.com/Faultbox/glstudio/internal/engine/camera"
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/input"
	"github.com/Faultbox/glstudio/internal/engine/lighting"
	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/internal/mesh"
	"github.com/Faultbox/glstudio/pkg/math"
)

// Lighting setup of the shapes exercise.
var (
	lampLight = lighting.PointLight{
		Position: math.Vec3{X: 1, Y: 0.7, Z: 1},
		Ambient:  0.2,
		Diffuse:  0.7,
		Specular: 1,
	}
	material = lighting.Material{
		Diffuse:   math.Vec3{X: 1, Y: 0.5, Z: 0.31},
		Specular:  0.5,
		Shininess: 16,
	}
	shapesClear = [4]float32{0.1, 0.1, 0.1, 1}
)

const (
	lampScale  = 0.1
	shapesNear = 0.1
	shapesFar  = 100
)

// Shapes shows one lit solid with a lamp marker. The arcball rotates either
// the camera or the model; keys switch normals and shading.
type Shapes struct {
	env *Env
	log *zap.Logger

	kind    mesh.Kind
	mesh    *mesh.Mesh
	buffers *gpu.MeshBuffers
	lamp    *gpu.MeshBuffers
	arcball *camera.Arcball
	modes   modes.State

	phong, gouraud Program
	flat           flat
}

// NewShapes creates the shapes exercise.
func NewShapes(env *Env) *Shapes {
	return &Shapes{env: env, log: logger.Named("shapes")}
}

func (s *Shapes) Settings() Settings {
	return Settings{ClearColor: shapesClear, DepthTest: true}
}

func (s *Shapes) Enter() error {
	cfg := s.env.Config
	var err error

	if s.kind, err = mesh.ParseKind(cfg.Shape.Kind); err != nil {
		return err
	}
	opts, err := cfg.Shape.MeshOptions()
	if err != nil {
		return err
	}
	if s.mesh, err = mesh.Build(s.kind, opts); err != nil {
		return err
	}

	s.modes = modes.State{}
	if s.modes.Normals, err = mesh.ParseNormalMode(cfg.Shape.NormalMode); err != nil {
		return err
	}
	if s.modes.Shading, err = modes.ParseShading(cfg.Shape.Shading); err != nil {
		return err
	}
	s.mesh.SetNormalMode(s.modes.Normals)

	if s.phong, err = s.env.Programs.Program(glsl.Phong); err != nil {
		return err
	}
	if s.gouraud, err = s.env.Programs.Program(glsl.Gouraud); err != nil {
		return err
	}
	if s.flat, err = loadFlat(s.env); err != nil {
		return err
	}

	if s.buffers, err = gpu.Upload(s.env.Device, s.mesh); err != nil {
		return err
	}
	lampMesh, err := mesh.NewCube(mesh.Options{}.WithColor(mesh.White))
	if err != nil {
		return err
	}
	if s.lamp, err = gpu.Upload(s.env.Device, lampMesh); err != nil {
		return err
	}

	s.arcball = camera.NewArcball(cfg.Camera.Distance)
	vp := s.env.Surface.Viewport()
	s.arcball.SetViewport(vp.W, vp.H)

	s.log.Info("shape ready",
		zap.Stringer("kind", s.kind),
		zap.Int("vertices", s.mesh.VertexCount()),
		zap.Int("faces", len(s.mesh.Faces)),
		zap.Stringer("normals", s.modes.Normals),
		zap.Stringer("shading", s.modes.Shading),
	)
	return nil
}

func (s *Shapes) Exit() error {
	if s.buffers != nil {
		s.buffers.Delete()
	}
	if s.lamp != nil {
		s.lamp.Delete()
	}
	return nil
}

// Mesh returns the solid being shown.
func (s *Shapes) Mesh() *mesh.Mesh {
	return s.mesh
}

// Modes returns the current modes.
func (s *Shapes) Modes() modes.State {
	return s.modes
}

func (s *Shapes) Update(float32) error { return nil }

func (s *Shapes) HandleInput(ev input.Event) error {
	switch ev.Type {
	case input.EventKeyDown:
		return s.command(modes.CommandFor(ev.Rune))
	case input.EventWindowResize:
		vp := s.env.Surface.Viewport()
		s.arcball.SetViewport(vp.W, vp.H)
	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			vp := s.env.Surface.Viewport()
			s.arcball.SetViewport(vp.W, vp.H)
			s.arcball.Begin(ev.MouseX, ev.MouseY)
		}
	case input.EventMouseMove:
		s.arcball.Drag(ev.MouseX, ev.MouseY)
	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			s.arcball.End()
		}
	case input.EventMouseWheel:
		s.arcball.Zoom(ev.Wheel)
	}
	return nil
}

func (s *Shapes) command(cmd modes.Command) error {
	switch cmd {
	case modes.SmoothNormals, modes.FlatNormals:
		if !s.modes.Apply(cmd) {
			return nil
		}
		s.mesh.SetNormalMode(s.modes.Normals)
		if err := s.buffers.UpdateNormals(s.mesh); err != nil {
			return err
		}
		s.log.Info("normal mode", zap.Stringer("mode", s.modes.Normals))
	case modes.GouraudShading, modes.PhongShading:
		if s.modes.Apply(cmd) {
			s.log.Info("shading", zap.Stringer("model", s.modes.Shading))
		}
	case modes.ToggleArcball:
		s.modes.Apply(cmd)
		s.log.Info("arcball mode", zap.Stringer("mode", s.modes.Arcball))
	case modes.ResetArcball:
		s.modes.Apply(cmd)
		s.arcball.Reset()
		s.log.Info("arcball reset")
	}
	return nil
}

// matrices returns the model, view and projection matrices for the current
// arcball mode.
func (s *Shapes) matrices() (model, view, proj math.Mat4) {
	if s.modes.Arcball == modes.ArcballModel {
		model = s.arcball.Rotation()
		view = s.arcball.DistanceMatrix()
	} else {
		model = math.Identity()
		view = s.arcball.ViewMatrix()
	}
	fov := s.env.Config.Camera.FOV * math32.Pi / 180
	proj = math.Perspective(fov, s.env.Surface.Viewport().Aspect(), shapesNear, shapesFar)
	return model, view, proj
}

func (s *Shapes) program() Program {
	if s.modes.Shading == modes.Gouraud {
		return s.gouraud
	}
	return s.phong
}

func (s *Shapes) Render() error {
	model, view, proj := s.matrices()
	p := s.program()

	p.Use()
	p.SetMat4("u_model", model)
	p.SetMat4("u_view", view)
	p.SetMat4("u_projection", proj)
	p.SetMat4("u_normalMatrix", model.NormalMatrix())
	p.SetVec3("u_viewPos", view.Inverse().Translation())
	p.SetBool("u_useVertexColor", s.env.Config.Shape.VertexColors || s.env.Config.Shape.Color != "")
	material.Apply(p)
	lampLight.Apply(p)
	s.buffers.Draw(p)

	mvp := math.Chain(proj, view, math.TranslateVec3(lampLight.Position), math.Scale(lampScale, lampScale, lampScale))
	s.flat.prog.Use()
	s.flat.prog.SetMat4("u_mvp", mvp)
	s.flat.prog.SetVec4("u_color", white)
	s.lamp.Draw(s.flat.prog)
	return nil
}
