package states

import (
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/Faultbox/glstudio/pkg/math"
)

var (
	black     = [4]float32{0, 0, 0, 1}
	white     = [4]float32{1, 1, 1, 1}
	gray      = [4]float32{0.5, 0.5, 0.5, 1}
	axisXClr  = [4]float32{1, 0.3, 0, 1}
	axisYClr  = [4]float32{0, 1, 0.5, 1}
	axisVerts = []float32{-1, 0, 1, 0, 0, -1, 0, 1}
)

// flat draws 2D streams with a single color.
type flat struct {
	prog Program
}

func loadFlat(env *Env) (flat, error) {
	p, err := env.Programs.Program(glsl.Flat)
	return flat{prog: p}, err
}

func (f flat) draw(s *gpu.Stream, prim gpu.Primitive, mvp math.Mat4, c [4]float32) {
	f.prog.Use()
	f.prog.SetMat4("u_mvp", mvp)
	f.prog.SetVec4("u_color", c)
	f.prog.SetFloat("u_pointSize", 10)
	s.Draw(f.prog, prim)
}

// drawAxes draws the X and Y axes across the viewport. s must hold
// axisVerts.
func (f flat) drawAxes(s *gpu.Stream) {
	f.prog.Use()
	f.prog.SetMat4("u_mvp", math.Identity())
	f.prog.SetFloat("u_pointSize", 1)
	f.prog.SetVec4("u_color", axisXClr)
	s.DrawRange(f.prog, gpu.Lines, 0, 2)
	f.prog.SetVec4("u_color", axisYClr)
	s.DrawRange(f.prog, gpu.Lines, 2, 2)
}

// mouseNDC converts a window position into normalized device coordinates of
// the current viewport.
func mouseNDC(s Surface, x, y int) math.Vec2 {
	vp := s.Viewport()
	_, h := s.Size()
	top := h - (vp.Y + vp.H)
	return geom.CanvasToNDC(float32(x-vp.X), float32(y-top), float32(vp.W), float32(vp.H))
}
