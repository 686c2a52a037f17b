package renderer

import (
	"unsafe"

	"github.com/Faultbox/glstudio/internal/engine/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice implements gpu.Device with OpenGL calls.
type GLDevice struct{}

var _ gpu.Device = (*GLDevice)(nil)

var primitives = map[gpu.Primitive]uint32{
	gpu.Triangles:   gl.TRIANGLES,
	gpu.TriangleFan: gl.TRIANGLE_FAN,
	gpu.Lines:       gl.LINES,
	gpu.LineLoop:    gl.LINE_LOOP,
	gpu.LineStrip:   gl.LINE_STRIP,
	gpu.Points:      gl.POINTS,
}

func (d *GLDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *GLDevice) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *GLDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *GLDevice) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (d *GLDevice) BindElementBuffer(ebo uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
}

func (d *GLDevice) ArrayBufferData(size int, dynamic bool) {
	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, usage)
}

func (d *GLDevice) ArrayBufferSubData(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data)*4, unsafe.Pointer(&data[0]))
}

func (d *GLDevice) ElementBufferData(indices []uint32) {
	if len(indices) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
}

func (d *GLDevice) VertexAttribPointer(slot uint32, components int, offset int) {
	gl.VertexAttribPointerWithOffset(slot, int32(components), gl.FLOAT, false, 0, uintptr(offset))
}

func (d *GLDevice) EnableVertexAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *GLDevice) DrawElements(p gpu.Primitive, count int) {
	gl.DrawElements(primitives[p], int32(count), gl.UNSIGNED_INT, nil)
}

func (d *GLDevice) DrawArrays(p gpu.Primitive, first, count int) {
	gl.DrawArrays(primitives[p], int32(first), int32(count))
}

func (d *GLDevice) DeleteVertexArray(vao uint32) {
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
}

func (d *GLDevice) DeleteBuffer(buf uint32) {
	if buf != 0 {
		gl.DeleteBuffers(1, &buf)
	}
}
