package gpu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/logger"
	"github.com/Faultbox/glstudio/internal/mesh"
)

var (
	// ErrEmptyMesh is returned when a mesh without vertices or indices is uploaded.
	ErrEmptyMesh = errors.New("gpu: empty mesh")
	// ErrDeleted is returned when released buffers are used.
	ErrDeleted = errors.New("gpu: buffers deleted")
	// ErrLayoutMismatch is returned when a mesh does not fit the uploaded buffers.
	ErrLayoutMismatch = errors.New("gpu: layout mismatch")
)

// MeshBuffers holds the vertex array, the block-packed vertex buffer and the
// index buffer of one mesh.
type MeshBuffers struct {
	dev    Device
	layout mesh.Layout
	source *mesh.Mesh

	vao, vbo, ebo uint32

	vertexCount int
	indexCount  int
	deleted     bool
}

// Upload creates the buffers for ms with mesh.StandardLayout.
func Upload(dev Device, ms *mesh.Mesh) (*MeshBuffers, error) {
	return UploadLayout(dev, ms, mesh.StandardLayout)
}

// UploadLayout creates the buffers for ms, writes each block of layout at its
// offset and points the attribute slots at them.
func UploadLayout(dev Device, ms *mesh.Mesh, layout mesh.Layout) (*MeshBuffers, error) {
	if ms == nil || ms.VertexCount() == 0 || len(ms.Indices) == 0 {
		return nil, ErrEmptyMesh
	}
	if err := ms.Validate(); err != nil {
		return nil, fmt.Errorf("upload %s: %w", ms.Kind, err)
	}

	n := ms.VertexCount()
	b := &MeshBuffers{
		dev:         dev,
		layout:      layout,
		source:      ms,
		vertexCount: n,
		indexCount:  len(ms.Indices),
	}

	b.vao = dev.CreateVertexArray()
	dev.BindVertexArray(b.vao)

	b.vbo = dev.CreateBuffer()
	dev.BindArrayBuffer(b.vbo)
	dev.ArrayBufferData(layout.Size(n), false)
	offsets := layout.Offsets(n)
	for i, a := range layout {
		dev.ArrayBufferSubData(offsets[i], ms.Block(a.Semantic))
	}

	b.ebo = dev.CreateBuffer()
	dev.BindElementBuffer(b.ebo)
	dev.ElementBufferData(ms.Indices)

	for i, a := range layout {
		dev.VertexAttribPointer(a.Slot, a.Components, offsets[i])
		dev.EnableVertexAttrib(a.Slot)
	}

	dev.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Stringer("kind", ms.Kind),
		zap.Int("vertices", n),
		zap.Int("indices", b.indexCount),
		zap.Int("bytes", layout.Size(n)),
	)
	return b, nil
}

// UpdateNormals re-uploads only the normal block from the mesh's active
// normals. Call it after mesh.SetNormalMode. ms must be the mesh the buffers
// were uploaded from.
func (b *MeshBuffers) UpdateNormals(ms *mesh.Mesh) error {
	if b.deleted {
		return ErrDeleted
	}
	if ms == nil || ms.VertexCount() != b.vertexCount {
		return fmt.Errorf("%w: mesh vertex count differs from buffers (%d)", ErrLayoutMismatch, b.vertexCount)
	}
	if ms != b.source {
		return fmt.Errorf("%w: %s is not the uploaded %s", ErrLayoutMismatch, ms.Kind, b.source.Kind)
	}
	off := b.layout.Offset(mesh.SemanticNormal, b.vertexCount)
	if off < 0 {
		return fmt.Errorf("%w: layout has no normal block", ErrLayoutMismatch)
	}

	b.dev.BindArrayBuffer(b.vbo)
	b.dev.ArrayBufferSubData(off, ms.Normals())
	return nil
}

// Draw issues one indexed triangle draw covering every index.
func (b *MeshBuffers) Draw(p Pipeline) {
	if b.deleted {
		return
	}
	if p != nil {
		p.Use()
	}
	b.dev.BindVertexArray(b.vao)
	b.dev.DrawElements(Triangles, b.indexCount)
	b.dev.BindVertexArray(0)
}

// IndexCount returns the number of uploaded indices.
func (b *MeshBuffers) IndexCount() int {
	return b.indexCount
}

// Delete releases the buffers. Further calls are no-ops.
func (b *MeshBuffers) Delete() {
	if b.deleted {
		return
	}
	b.deleted = true
	b.dev.DeleteBuffer(b.vbo)
	b.dev.DeleteBuffer(b.ebo)
	b.dev.DeleteVertexArray(b.vao)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
