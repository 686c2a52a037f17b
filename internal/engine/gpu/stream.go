package gpu

// Stream is a single-attribute vertex buffer whose contents are replaced
// before every draw. The 2D exercises use it for circles, segments, points
// and the moving square.
type Stream struct {
	dev        Device
	vao, vbo   uint32
	slot       uint32
	components int
	capacity   int
	count      int
	deleted    bool
}

// NewStream creates a stream feeding attribute slot with components floats
// per vertex.
func NewStream(dev Device, slot uint32, components int) *Stream {
	s := &Stream{
		dev:        dev,
		slot:       slot,
		components: components,
	}
	s.vao = dev.CreateVertexArray()
	dev.BindVertexArray(s.vao)
	s.vbo = dev.CreateBuffer()
	dev.BindArrayBuffer(s.vbo)
	dev.VertexAttribPointer(slot, components, 0)
	dev.EnableVertexAttrib(slot)
	dev.BindVertexArray(0)
	return s
}

// Set replaces the vertex data. The buffer only grows.
func (s *Stream) Set(data []float32) {
	if s.deleted {
		return
	}
	s.dev.BindArrayBuffer(s.vbo)
	if len(data) > s.capacity {
		s.capacity = len(data)
		s.dev.ArrayBufferData(s.capacity*4, true)
	}
	if len(data) > 0 {
		s.dev.ArrayBufferSubData(0, data)
	}
	s.count = len(data) / s.components
}

// Len returns the number of vertices set.
func (s *Stream) Len() int {
	return s.count
}

// Draw draws every vertex with primitive prim.
func (s *Stream) Draw(p Pipeline, prim Primitive) {
	s.DrawRange(p, prim, 0, s.count)
}

// DrawRange draws count vertices starting at first. The range is clipped
// to the vertices set.
func (s *Stream) DrawRange(p Pipeline, prim Primitive, first, count int) {
	if first < 0 {
		first = 0
	}
	count = min(count, s.count-first)
	if s.deleted || count <= 0 {
		return
	}
	if p != nil {
		p.Use()
	}
	s.dev.BindVertexArray(s.vao)
	s.dev.DrawArrays(prim, first, count)
	s.dev.BindVertexArray(0)
}

// Delete releases the buffers.
func (s *Stream) Delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	s.dev.DeleteBuffer(s.vbo)
	s.dev.DeleteVertexArray(s.vao)
}
