package gpu

import "fmt"

// recorder is a Device that records every call.
type recorder struct {
	next    uint32
	calls   []string
	subData []subData
	draws   []draw
	deleted map[uint32]int
	indices []uint32
}

type subData struct {
	offset int
	data   []float32
}

type draw struct {
	prim  Primitive
	first int
	count int
}

func newRecorder() *recorder {
	return &recorder{deleted: make(map[uint32]int)}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) CreateVertexArray() uint32 {
	r.next++
	r.log("vao %d", r.next)
	return r.next
}

func (r *recorder) CreateBuffer() uint32 {
	r.next++
	r.log("buffer %d", r.next)
	return r.next
}

func (r *recorder) BindVertexArray(vao uint32)   { r.log("bind vao %d", vao) }
func (r *recorder) BindArrayBuffer(vbo uint32)   { r.log("bind array %d", vbo) }
func (r *recorder) BindElementBuffer(ebo uint32) { r.log("bind element %d", ebo) }

func (r *recorder) ArrayBufferData(size int, dynamic bool) {
	r.log("alloc %d %v", size, dynamic)
}

func (r *recorder) ArrayBufferSubData(offset int, data []float32) {
	r.log("sub %d %d", offset, len(data))
	r.subData = append(r.subData, subData{offset, append([]float32(nil), data...)})
}

func (r *recorder) ElementBufferData(indices []uint32) {
	r.log("elements %d", len(indices))
	r.indices = append([]uint32(nil), indices...)
}

func (r *recorder) VertexAttribPointer(slot uint32, components int, offset int) {
	r.log("attrib %d %d %d", slot, components, offset)
}

func (r *recorder) EnableVertexAttrib(slot uint32) { r.log("enable %d", slot) }

func (r *recorder) DrawElements(p Primitive, count int) {
	r.log("draw elements %s %d", p, count)
	r.draws = append(r.draws, draw{prim: p, count: count})
}

func (r *recorder) DrawArrays(p Primitive, first, count int) {
	r.log("draw arrays %s %d %d", p, first, count)
	r.draws = append(r.draws, draw{p, first, count})
}

func (r *recorder) DeleteVertexArray(vao uint32) { r.deleted[vao]++ }
func (r *recorder) DeleteBuffer(buf uint32)      { r.deleted[buf]++ }

func (r *recorder) reset() {
	r.calls = nil
	r.subData = nil
	r.draws = nil
}

type pipeline struct{ uses int }

func (p *pipeline) Use() { p.uses++ }
