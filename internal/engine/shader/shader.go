// Package shader provides OpenGL shader compilation utilities and a Program
// type with cached uniform locations.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/engine/shader/glsl"
	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/pkg/math"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", gl.GoStr(&log[0]))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, gl.GoStr(&log[0]))
	}

	return shader, nil
}

// Program is a linked GL program. Uniform locations are looked up once and
// cached; unknown uniforms resolve to -1, which GL ignores.
type Program struct {
	Name     string
	id       uint32
	uniforms map[string]int32
}

// New compiles and links src.
func New(src glsl.Source) (*Program, error) {
	id, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", src.Name, err)
	}
	logger.Debug("program linked", zap.String("name", src.Name), zap.Uint32("id", id))
	return &Program{Name: src.Name, id: id, uniforms: make(map[string]int32)}, nil
}

// Load compiles the named program from lib.
func Load(lib glsl.Library, name string) (*Program, error) {
	src, err := lib.Load(name)
	if err != nil {
		return nil, err
	}
	return New(src)
}

// Reload recompiles the program from lib. On failure the previous program
// stays active and the error is returned.
func (p *Program) Reload(lib glsl.Library) error {
	next, err := Load(lib, p.Name)
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.id)
	p.id = next.id
	p.uniforms = make(map[string]int32)
	logger.Info("program reloaded", zap.String("name", p.Name))
	return nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of name.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

func (p *Program) SetVec4(name string, v [4]float32) {
	gl.Uniform4f(p.Uniform(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Uniform(name), f)
}

func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Uniform(name), i)
}

func (p *Program) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
