package mesh

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	m "github.com/Faultbox/glstudio/pkg/math"
)

// NormalMode selects which precomputed normals are active.
type NormalMode int

const (
	// FaceNormals gives every vertex of a face that face's normal (flat shading).
	FaceNormals NormalMode = iota
	// VertexNormals gives every vertex its smoothed normal.
	VertexNormals
)

func (nm NormalMode) String() string {
	switch nm {
	case FaceNormals:
		return "flat"
	case VertexNormals:
		return "smooth"
	default:
		return fmt.Sprintf("NormalMode(%d)", int(nm))
	}
}

// ParseNormalMode accepts "flat"/"face" and "smooth"/"vertex".
func ParseNormalMode(s string) (NormalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "face":
		return FaceNormals, nil
	case "smooth", "vertex":
		return VertexNormals, nil
	}
	return FaceNormals, fmt.Errorf("mesh: unknown normal mode %q", s)
}

// NormalMode returns the active mode.
func (ms *Mesh) NormalMode() NormalMode {
	return ms.mode
}

// SetNormalMode copies the face or vertex normals into the active normals.
// Positions, colors, texture coordinates and indices are untouched.
func (ms *Mesh) SetNormalMode(mode NormalMode) {
	if mode == VertexNormals {
		copy(ms.normals, ms.VertexNormals)
	} else {
		mode = FaceNormals
		copy(ms.normals, ms.FaceNormals)
	}
	ms.mode = mode
}

// Normals returns the active normals. The slice is owned by the mesh and
// changes on the next SetNormalMode.
func (ms *Mesh) Normals() []float32 {
	return ms.normals
}

// positionEpsilon is the quantization step used to decide that two vertices
// share a position.
const positionEpsilon float32 = 0.001

type positionKey [3]int32

func keyOf(p []float32, i int) positionKey {
	return positionKey{
		int32(math32.Round(p[i] / positionEpsilon)),
		int32(math32.Round(p[i+1] / positionEpsilon)),
		int32(math32.Round(p[i+2] / positionEpsilon)),
	}
}

// sharedVertices groups vertex indices by quantized position. Groups are
// ordered by their lowest index.
func sharedVertices(positions []float32) [][]uint32 {
	byKey := make(map[positionKey][]uint32)
	var order []positionKey
	for i := 0; i < len(positions)/3; i++ {
		k := keyOf(positions, i*3)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], uint32(i))
	}

	var groups [][]uint32
	for _, k := range order {
		if g := byKey[k]; len(g) > 1 {
			groups = append(groups, g)
		}
	}
	return groups
}

// averageShared sets every vertex of a shared group to the normalized sum of
// the face normals in the group.
func averageShared(ms *Mesh) {
	for _, g := range ms.Shared {
		var sum m.Vec3
		for _, idx := range g {
			sum = sum.Add(m.Vec3FromSlice(ms.FaceNormals, int(idx)*3))
		}
		avg := sum.Normalize()
		for _, idx := range g {
			setVec3(ms.VertexNormals, int(idx)*3, avg)
		}
	}
}

// coneNormals approximates the lateral surface normal from the vertex
// position: normalize(x, faceNormal.y-0.5, z). The apex points straight up.
func coneNormals(ms *Mesh) {
	up := m.Vec3{Y: 1}
	for i := 0; i < ms.VertexCount(); i++ {
		o := i * 3
		x := ms.Positions[o]
		y := ms.FaceNormals[o+1] - 0.5
		z := ms.Positions[o+2]

		n := m.Vec3{X: x, Y: y, Z: z}
		l := n.Length()
		if l == 0 || (x == 0 && z == 0) {
			setVec3(ms.VertexNormals, o, up)
			continue
		}
		setVec3(ms.VertexNormals, o, n.Scale(1/l))
	}
}

func sphereNormals(ms *Mesh) {
	for i := 0; i < ms.VertexCount(); i++ {
		o := i * 3
		setVec3(ms.VertexNormals, o, m.Vec3FromSlice(ms.Positions, o).Normalize())
	}
}

func setVec3(s []float32, i int, v m.Vec3) {
	s[i], s[i+1], s[i+2] = v.X, v.Y, v.Z
}
