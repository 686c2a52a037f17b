package states

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/Faultbox/glstudio/internal/config"
	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/Faultbox/glstudio/pkg/geom"
	"github.com/Faultbox/glstudio/pkg/math"
)

type drawCall struct {
	prim     gpu.Primitive
	first    int
	count    int
	elements bool
}

type fakeDevice struct {
	next    uint32
	draws   []drawCall
	subs    int
	deleted int
}

func (d *fakeDevice) CreateVertexArray() uint32 { d.next++; return d.next }
func (d *fakeDevice) CreateBuffer() uint32      { d.next++; return d.next }
func (d *fakeDevice) BindVertexArray(uint32)    {}
func (d *fakeDevice) BindArrayBuffer(uint32)    {}
func (d *fakeDevice) BindElementBuffer(uint32)  {}
func (d *fakeDevice) ArrayBufferData(int, bool) {}
func (d *fakeDevice) ArrayBufferSubData(int, []float32) {
	d.subs++
}
func (d *fakeDevice) ElementBufferData([]uint32)           {}
func (d *fakeDevice) VertexAttribPointer(uint32, int, int) {}
func (d *fakeDevice) EnableVertexAttrib(uint32)            {}
func (d *fakeDevice) DeleteVertexArray(uint32)             { d.deleted++ }
func (d *fakeDevice) DeleteBuffer(uint32)                  { d.deleted++ }
func (d *fakeDevice) DrawElements(p gpu.Primitive, count int) {
	d.draws = append(d.draws, drawCall{prim: p, count: count, elements: true})
}
func (d *fakeDevice) DrawArrays(p gpu.Primitive, first, count int) {
	d.draws = append(d.draws, drawCall{prim: p, first: first, count: count})
}

func (d *fakeDevice) countDraws(c drawCall) int {
	n := 0
	for _, got := range d.draws {
		if got == c {
			n++
		}
	}
	return n
}

type fakeProgram struct {
	name   string
	uses   int
	mats   map[string]math.Mat4
	vec3s  map[string]math.Vec3
	vec4s  map[string][4]float32
	floats map[string]float32
	ints   map[string]int32
	bools  map[string]bool
	colors [][4]float32
	flags  []bool
}

func newFakeProgram(name string) *fakeProgram {
	return &fakeProgram{
		name:   name,
		mats:   map[string]math.Mat4{},
		vec3s:  map[string]math.Vec3{},
		vec4s:  map[string][4]float32{},
		floats: map[string]float32{},
		ints:   map[string]int32{},
		bools:  map[string]bool{},
	}
}

func (p *fakeProgram) Use()                             { p.uses++ }
func (p *fakeProgram) SetMat4(name string, m math.Mat4) { p.mats[name] = m }
func (p *fakeProgram) SetVec3(name string, v math.Vec3) { p.vec3s[name] = v }
func (p *fakeProgram) SetFloat(name string, f float32)  { p.floats[name] = f }
func (p *fakeProgram) SetInt(name string, i int32)      { p.ints[name] = i }
func (p *fakeProgram) SetVec4(name string, v [4]float32) {
	p.vec4s[name] = v
	if name == "u_color" {
		p.colors = append(p.colors, v)
	}
}
func (p *fakeProgram) SetBool(name string, b bool) {
	p.bools[name] = b
	p.flags = append(p.flags, b)
}

type fakePrograms struct {
	programs map[string]*fakeProgram
}

func (f *fakePrograms) Program(name string) (Program, error) {
	if p, ok := f.programs[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no program %q", name)
}

func (f *fakePrograms) get(name string) *fakeProgram {
	return f.programs[name]
}

type fakeTexture struct {
	path     string
	fallback color.RGBA
	binds    int
	deleted  bool
}

func (t *fakeTexture) Bind(uint32) { t.binds++ }
func (t *fakeTexture) Delete()     { t.deleted = true }

type fakeTextures struct {
	loaded []*fakeTexture
}

func (f *fakeTextures) Texture(path string, fallback color.RGBA) Texture {
	t := &fakeTexture{path: path, fallback: fallback}
	f.loaded = append(f.loaded, t)
	return t
}

type clearCall struct {
	rect  geom.Rect
	color [4]float32
}

type fakeSurface struct {
	width, height int
	viewport      geom.Rect
	clears        []clearCall
}

func (s *fakeSurface) Size() (int, int)    { return s.width, s.height }
func (s *fakeSurface) Viewport() geom.Rect { return s.viewport }
func (s *fakeSurface) ClearRect(r geom.Rect, c [4]float32) {
	s.clears = append(s.clears, clearCall{r, c})
}

type testEnv struct {
	*Env
	device   *fakeDevice
	programs *fakePrograms
	textures *fakeTextures
	surface  *fakeSurface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	progs := &fakePrograms{programs: map[string]*fakeProgram{}}
	for _, name := range []string{"flat", "phong", "gouraud", "textured"} {
		progs.programs[name] = newFakeProgram(name)
	}
	te := &testEnv{
		device:   &fakeDevice{},
		programs: progs,
		textures: &fakeTextures{},
		surface:  &fakeSurface{width: 800, height: 800, viewport: geom.Rect{W: 800, H: 800}},
	}
	te.Env = &Env{
		Device:   te.device,
		Programs: te.programs,
		Textures: te.textures,
		Surface:  te.surface,
		Config:   config.Default(),
	}
	return te
}
