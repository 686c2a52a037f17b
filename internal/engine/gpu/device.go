// Package gpu owns the GPU-side buffers of meshes and line/point streams.
//
// All calls go through Device so the buffer bookkeeping can be exercised
// without a GL context. renderer.GLDevice is the OpenGL implementation.
package gpu

// Primitive is the topology of a draw call.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleFan
	Lines
	LineLoop
	LineStrip
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle_fan"
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	case LineStrip:
		return "line_strip"
	case Points:
		return "points"
	}
	return "unknown"
}

// Device is the subset of the graphics API used by this package. Buffer
// calls act on the currently bound array or element buffer.
type Device interface {
	CreateVertexArray() uint32
	CreateBuffer() uint32
	BindVertexArray(vao uint32)
	BindArrayBuffer(vbo uint32)
	BindElementBuffer(ebo uint32)

	// ArrayBufferData allocates size bytes for the bound array buffer.
	// dynamic hints that the contents are replaced often.
	ArrayBufferData(size int, dynamic bool)
	// ArrayBufferSubData writes data at a byte offset of the bound array buffer.
	ArrayBufferSubData(offset int, data []float32)
	ElementBufferData(indices []uint32)

	// VertexAttribPointer describes a tightly packed float attribute starting
	// at a byte offset of the bound array buffer.
	VertexAttribPointer(slot uint32, components int, offset int)
	EnableVertexAttrib(slot uint32)

	DrawElements(p Primitive, count int)
	DrawArrays(p Primitive, first, count int)

	DeleteVertexArray(vao uint32)
	DeleteBuffer(buf uint32)
}

// Pipeline is a ready-to-use shader program.
type Pipeline interface {
	Use()
}
