// Package mesh builds the procedural solids drawn by the exercises.
//
// A Mesh keeps its attributes in parallel flat slices (3 floats per position
// and normal, 4 per color, 2 per texture coordinate). Every solid carries two
// precomputed normal sets: face normals for flat shading and vertex normals
// for smooth shading. SetNormalMode copies one of them into the active set
// that Pack and the GPU upload read.
package mesh

import (
	"errors"
	"fmt"

	m "github.com/Faultbox/glstudio/pkg/math"
)

// DegenerateEpsilon is the smallest cross product magnitude accepted for a face.
const DegenerateEpsilon = 1e-6

var (
	// ErrDegenerateFace is returned when a face has (almost) zero area.
	ErrDegenerateFace = errors.New("mesh: degenerate face")
	// ErrInvalidSegments is returned for segment or ring counts a solid cannot use.
	ErrInvalidSegments = errors.New("mesh: invalid segment count")
	// ErrUnknownKind is returned for a Kind or kind name that has no builder.
	ErrUnknownKind = errors.New("mesh: unknown kind")
	// ErrInvalidMesh is returned by Validate.
	ErrInvalidMesh = errors.New("mesh: invalid mesh")
)

// Face is one triangle of the mesh.
type Face struct {
	// Indices are wound counter-clockwise seen from outside the solid.
	Indices [3]uint32
	Normal  m.Vec3
}

// Mesh is a built solid.
type Mesh struct {
	Kind Kind

	Positions     []float32
	FaceNormals   []float32
	VertexNormals []float32
	Colors        []float32
	TexCoords     []float32
	Indices       []uint32

	Faces []Face
	// Shared groups the vertex indices that sit at the same position.
	// Groups with a single member are left out.
	Shared [][]uint32

	normals []float32
	mode    NormalMode
}

// VertexCount returns the number of vertices.
func (ms *Mesh) VertexCount() int {
	return len(ms.Positions) / 3
}

// Position returns the position of vertex i.
func (ms *Mesh) Position(i uint32) m.Vec3 {
	return m.Vec3FromSlice(ms.Positions, int(i)*3)
}

// Centroid returns the mean of all vertex positions.
func (ms *Mesh) Centroid() m.Vec3 {
	var sum m.Vec3
	n := ms.VertexCount()
	if n == 0 {
		return sum
	}
	for i := 0; i < n; i++ {
		sum = sum.Add(ms.Position(uint32(i)))
	}
	return sum.Scale(1 / float32(n))
}

// Validate checks the buffer length and index invariants.
func (ms *Mesh) Validate() error {
	n := len(ms.Positions)
	if n%3 != 0 {
		return fmt.Errorf("%w: %d position floats", ErrInvalidMesh, n)
	}
	if len(ms.FaceNormals) != n || len(ms.VertexNormals) != n || len(ms.normals) != n {
		return fmt.Errorf("%w: normal buffers do not match %d position floats", ErrInvalidMesh, n)
	}
	if len(ms.Colors)/4*3 != n || len(ms.Colors)%4 != 0 {
		return fmt.Errorf("%w: %d color floats for %d vertices", ErrInvalidMesh, len(ms.Colors), n/3)
	}
	if len(ms.TexCoords)/2*3 != n || len(ms.TexCoords)%2 != 0 {
		return fmt.Errorf("%w: %d texcoord floats for %d vertices", ErrInvalidMesh, len(ms.TexCoords), n/3)
	}
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrInvalidMesh, len(ms.Indices))
	}
	count := uint32(n / 3)
	for i, idx := range ms.Indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d = %d out of range", ErrInvalidMesh, i, idx)
		}
	}
	for i, f := range ms.Faces {
		a, b, c := f.Indices[0], f.Indices[1], f.Indices[2]
		if a == b || b == c || a == c {
			return fmt.Errorf("%w: face %d repeats a vertex", ErrInvalidMesh, i)
		}
		if a >= count || b >= count || c >= count {
			return fmt.Errorf("%w: face %d out of range", ErrInvalidMesh, i)
		}
	}
	return nil
}

// Build constructs the solid k.
func Build(k Kind, opts Options) (*Mesh, error) {
	var (
		ms  *Mesh
		err error
	)
	switch k {
	case Cube:
		ms, err = buildCube(opts)
	case Octahedron:
		ms, err = buildOctahedron(opts)
	case SquarePyramid:
		ms, err = buildSquarePyramid(opts)
	case Cone:
		ms, err = buildCone(opts)
	case Sphere:
		ms, err = buildSphere(opts)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", k, err)
	}
	return ms, nil
}

// NewCube builds the unit cube.
func NewCube(opts Options) (*Mesh, error) { return Build(Cube, opts) }

// NewOctahedron builds the regular octahedron.
func NewOctahedron(opts Options) (*Mesh, error) { return Build(Octahedron, opts) }

// NewSquarePyramid builds the square pyramid.
func NewSquarePyramid(opts Options) (*Mesh, error) { return Build(SquarePyramid, opts) }

// NewCone builds an open cone with opts.Segments side triangles.
func NewCone(opts Options) (*Mesh, error) { return Build(Cone, opts) }

// NewSphere builds a UV sphere.
func NewSphere(opts Options) (*Mesh, error) { return Build(Sphere, opts) }

// builder accumulates faces in emission order.
type builder struct {
	ms       *Mesh
	override *Color
}

func newBuilder(k Kind, opts Options, vertices, indices int) *builder {
	return &builder{
		ms: &Mesh{
			Kind:        k,
			Positions:   make([]float32, 0, vertices*3),
			FaceNormals: make([]float32, 0, vertices*3),
			Colors:      make([]float32, 0, vertices*4),
			TexCoords:   make([]float32, 0, vertices*2),
			Indices:     make([]uint32, 0, indices),
			Faces:       make([]Face, 0, indices/3),
		},
		override: opts.Color,
	}
}

func (b *builder) color(c Color) Color {
	if b.override != nil {
		return *b.override
	}
	return c
}

func faceNormal(p0, p1, p2 m.Vec3, face int) (m.Vec3, error) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	l := n.Length()
	if l < DegenerateEpsilon {
		return m.Vec3{}, fmt.Errorf("%w: face %d", ErrDegenerateFace, face)
	}
	return n.Scale(1 / l), nil
}

func (b *builder) vertex(p, n m.Vec3, c Color, uv m.Vec2) uint32 {
	idx := uint32(len(b.ms.Positions) / 3)
	b.ms.Positions = append(b.ms.Positions, p.X, p.Y, p.Z)
	b.ms.FaceNormals = append(b.ms.FaceNormals, n.X, n.Y, n.Z)
	b.ms.Colors = append(b.ms.Colors, c[0], c[1], c[2], c[3])
	b.ms.TexCoords = append(b.ms.TexCoords, uv.X, uv.Y)
	return idx
}

func (b *builder) face(i0, i1, i2 uint32, n m.Vec3) {
	b.ms.Indices = append(b.ms.Indices, i0, i1, i2)
	b.ms.Faces = append(b.ms.Faces, Face{Indices: [3]uint32{i0, i1, i2}, Normal: n})
}

// triangle emits three new vertices and one face.
func (b *builder) triangle(p [3]m.Vec3, uv [3]m.Vec2, c Color) error {
	n, err := faceNormal(p[0], p[1], p[2], len(b.ms.Faces))
	if err != nil {
		return err
	}
	c = b.color(c)
	i0 := b.vertex(p[0], n, c, uv[0])
	i1 := b.vertex(p[1], n, c, uv[1])
	i2 := b.vertex(p[2], n, c, uv[2])
	b.face(i0, i1, i2, n)
	return nil
}

// quad emits four new vertices and the faces (a, b, c) and (c, d, a),
// both carrying the normal of the first.
func (b *builder) quad(p [4]m.Vec3, uv [4]m.Vec2, c Color) error {
	n, err := faceNormal(p[0], p[1], p[2], len(b.ms.Faces))
	if err != nil {
		return err
	}
	c = b.color(c)
	var idx [4]uint32
	for k := range p {
		idx[k] = b.vertex(p[k], n, c, uv[k])
	}
	b.face(idx[0], idx[1], idx[2], n)
	b.face(idx[2], idx[3], idx[0], n)
	return nil
}

// finish groups shared vertices, derives the smooth normals with smooth and
// starts the mesh in flat mode.
func (b *builder) finish(smooth func(ms *Mesh)) *Mesh {
	ms := b.ms
	ms.Shared = sharedVertices(ms.Positions)
	ms.VertexNormals = make([]float32, len(ms.FaceNormals))
	copy(ms.VertexNormals, ms.FaceNormals)
	smooth(ms)
	ms.normals = make([]float32, len(ms.FaceNormals))
	ms.SetNormalMode(FaceNormals)
	return ms
}

func uvs3(u0, v0, u1, v1, u2, v2 float32) [3]m.Vec2 {
	return [3]m.Vec2{{X: u0, Y: v0}, {X: u1, Y: v1}, {X: u2, Y: v2}}
}

func uvs4(u0, v0, u1, v1, u2, v2, u3, v3 float32) [4]m.Vec2 {
	return [4]m.Vec2{{X: u0, Y: v0}, {X: u1, Y: v1}, {X: u2, Y: v2}, {X: u3, Y: v3}}
}
