package mesh

// Semantic names what an attribute carries.
type Semantic int

const (
	SemanticPosition Semantic = iota
	SemanticNormal
	SemanticColor
	SemanticTexCoord
)

func (s Semantic) String() string {
	switch s {
	case SemanticPosition:
		return "position"
	case SemanticNormal:
		return "normal"
	case SemanticColor:
		return "color"
	case SemanticTexCoord:
		return "texcoord"
	}
	return "unknown"
}

// Attribute describes one block of the packed vertex buffer.
type Attribute struct {
	Slot       uint32
	Components int
	Semantic   Semantic
}

// Layout is the ordered list of blocks in the packed buffer. Blocks are laid
// out one after another (all positions, then all normals, ...), not
// interleaved.
type Layout []Attribute

// StandardLayout is the slot convention shared by the shaders:
// 0 position, 1 normal, 2 color, 3 texture coordinate.
var StandardLayout = Layout{
	{Slot: 0, Components: 3, Semantic: SemanticPosition},
	{Slot: 1, Components: 3, Semantic: SemanticNormal},
	{Slot: 2, Components: 4, Semantic: SemanticColor},
	{Slot: 3, Components: 2, Semantic: SemanticTexCoord},
}

const floatSize = 4

// Offsets returns the byte offset of every block for vertexCount vertices.
func (l Layout) Offsets(vertexCount int) []int {
	offsets := make([]int, len(l))
	off := 0
	for i, a := range l {
		offsets[i] = off
		off += a.Components * vertexCount * floatSize
	}
	return offsets
}

// Size returns the byte length of the packed buffer.
func (l Layout) Size(vertexCount int) int {
	n := 0
	for _, a := range l {
		n += a.Components * vertexCount * floatSize
	}
	return n
}

// Offset returns the byte offset of the block with semantic s, or -1.
func (l Layout) Offset(s Semantic, vertexCount int) int {
	offsets := l.Offsets(vertexCount)
	for i, a := range l {
		if a.Semantic == s {
			return offsets[i]
		}
	}
	return -1
}

// Block returns the mesh data for semantic s. Normals are the active set.
func (ms *Mesh) Block(s Semantic) []float32 {
	switch s {
	case SemanticPosition:
		return ms.Positions
	case SemanticNormal:
		return ms.normals
	case SemanticColor:
		return ms.Colors
	case SemanticTexCoord:
		return ms.TexCoords
	}
	return nil
}

// Pack returns the blocks of l concatenated in order.
func (ms *Mesh) Pack(l Layout) []float32 {
	out := make([]float32, 0, l.Size(ms.VertexCount())/floatSize)
	for _, a := range l {
		out = append(out, ms.Block(a.Semantic)...)
	}
	return out
}
