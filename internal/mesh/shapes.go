package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	m "github.com/Faultbox/glstudio/pkg/math"
)

var cubeCorners = [8]m.Vec3{
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
}

var cubeFaces = [6]struct {
	corners [4]int
	uv      [4]m.Vec2
	color   Color
}{
	{[4]int{0, 1, 2, 3}, uvs4(1, 1, 0, 1, 0, 0, 1, 0), Red},     // front
	{[4]int{0, 3, 4, 5}, uvs4(0, 1, 0, 0, 1, 0, 1, 1), Yellow},  // right
	{[4]int{0, 5, 6, 1}, uvs4(1, 0, 0, 0, 0, 1, 1, 1), Green},   // top
	{[4]int{1, 6, 7, 2}, uvs4(1, 0, 0, 0, 0, 1, 1, 1), Cyan},    // left
	{[4]int{7, 4, 3, 2}, uvs4(0, 0, 0, 1, 1, 1, 1, 0), Blue},    // bottom
	{[4]int{4, 7, 6, 5}, uvs4(0, 0, 0, 1, 1, 1, 1, 0), Magenta}, // back
}

func buildCube(opts Options) (*Mesh, error) {
	b := newBuilder(Cube, opts, 24, 36)
	for _, f := range cubeFaces {
		var p [4]m.Vec3
		for k, c := range f.corners {
			p[k] = cubeCorners[c]
		}
		if err := b.quad(p, f.uv, f.color); err != nil {
			return nil, err
		}
	}
	return b.finish(averageShared), nil
}

func buildOctahedron(opts Options) (*Mesh, error) {
	h := math32.Sqrt(2) / 2
	var (
		top = m.Vec3{Y: h}
		bot = m.Vec3{Y: -h}
		fr  = m.Vec3{X: 0.5, Z: 0.5}
		fl  = m.Vec3{X: -0.5, Z: 0.5}
		br  = m.Vec3{X: 0.5, Z: -0.5}
		bl  = m.Vec3{X: -0.5, Z: -0.5}
	)
	faces := [8]struct {
		p     [3]m.Vec3
		uv    [3]m.Vec2
		color Color
	}{
		{[3]m.Vec3{fr, top, fl}, uvs3(0.25, 0.5, 0.5, 1, 0, 0.5), Red},
		{[3]m.Vec3{br, top, fr}, uvs3(0.5, 0.5, 0.5, 1, 0.25, 0.5), Yellow},
		{[3]m.Vec3{bl, top, br}, uvs3(0.75, 0.5, 0.5, 1, 0.5, 0.5), Green},
		{[3]m.Vec3{fl, top, bl}, uvs3(1, 0.5, 0.5, 1, 0.75, 0.5), Cyan},
		{[3]m.Vec3{fl, bot, fr}, uvs3(0, 0.5, 0.5, 0, 0.25, 0.5), Blue},
		{[3]m.Vec3{fr, bot, br}, uvs3(0.25, 0.5, 0.5, 0, 0.5, 0.5), Magenta},
		{[3]m.Vec3{br, bot, bl}, uvs3(0.5, 0.5, 0.5, 0, 0.75, 0.55), White},
		{[3]m.Vec3{bl, bot, fl}, uvs3(0.75, 0.55, 0.5, 0, 1, 0.5), Black},
	}

	b := newBuilder(Octahedron, opts, 24, 24)
	for _, f := range faces {
		if err := b.triangle(f.p, f.uv, f.color); err != nil {
			return nil, err
		}
	}
	return b.finish(averageShared), nil
}

func buildSquarePyramid(opts Options) (*Mesh, error) {
	var (
		apex = m.Vec3{Y: 1}
		fr   = m.Vec3{X: 0.5, Z: 0.5}
		fl   = m.Vec3{X: -0.5, Z: 0.5}
		br   = m.Vec3{X: 0.5, Z: -0.5}
		bl   = m.Vec3{X: -0.5, Z: -0.5}
	)
	faces := [6]struct {
		p     [3]m.Vec3
		uv    [3]m.Vec2
		color Color
	}{
		// base, facing -Y
		{[3]m.Vec3{br, fr, fl}, uvs3(1, 1, 1, 0, 0, 0), Blue},
		{[3]m.Vec3{fl, bl, br}, uvs3(0, 0, 0, 1, 1, 1), Blue},
		// sides: front, right, back, left
		{[3]m.Vec3{fl, fr, apex}, uvs3(0, 0, 1, 0, 0.5, 1), Red},
		{[3]m.Vec3{fr, br, apex}, uvs3(0, 0, 1, 0, 0.5, 1), Yellow},
		{[3]m.Vec3{br, bl, apex}, uvs3(0, 0, 1, 0, 0.5, 1), Green},
		{[3]m.Vec3{bl, fl, apex}, uvs3(0, 0, 1, 0, 0.5, 1), Magenta},
	}

	b := newBuilder(SquarePyramid, opts, 18, 18)
	for _, f := range faces {
		if err := b.triangle(f.p, f.uv, f.color); err != nil {
			return nil, err
		}
	}
	return b.finish(averageShared), nil
}

const (
	coneRadius     = 0.5
	coneHalfHeight = 0.5
	sphereRadius   = 0.5
)

func buildCone(opts Options) (*Mesh, error) {
	segments := opts.Segments
	if segments < 3 {
		return nil, fmt.Errorf("%w: cone needs at least 3 segments, got %d", ErrInvalidSegments, segments)
	}

	b := newBuilder(Cone, opts, segments*3, segments*3)
	top := m.Vec3{Y: coneHalfHeight}
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		s0, c0 := math32.Sincos(float32(i) * step)
		s1, c1 := math32.Sincos(float32(i+1) * step)
		bot0 := m.Vec3{X: coneRadius * c0, Y: -coneHalfHeight, Z: coneRadius * s0}
		bot1 := m.Vec3{X: coneRadius * c1, Y: -coneHalfHeight, Z: coneRadius * s1}

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)
		if err := b.triangle([3]m.Vec3{top, bot1, bot0}, uvs3(0.5, 1, u1, 0, u0, 0), DefaultColor); err != nil {
			return nil, err
		}
	}
	return b.finish(coneNormals), nil
}

func buildSphere(opts Options) (*Mesh, error) {
	segments, rings := opts.Segments, opts.Rings
	if segments < 3 || rings < 2 {
		return nil, fmt.Errorf("%w: sphere needs at least 3x2, got %dx%d", ErrInvalidSegments, segments, rings)
	}

	faces := segments * (2*rings - 2)
	b := newBuilder(Sphere, opts, faces*3, faces*3)
	point := func(theta, phi float32) m.Vec3 {
		st, ct := math32.Sincos(theta)
		sp, cp := math32.Sincos(phi)
		return m.Vec3{X: sphereRadius * st * cp, Y: sphereRadius * ct, Z: -sphereRadius * st * sp}
	}
	for j := 0; j < rings; j++ {
		t0 := math32.Pi * float32(j) / float32(rings)
		t1 := math32.Pi * float32(j+1) / float32(rings)
		v0 := 1 - float32(j)/float32(rings)
		v1 := 1 - float32(j+1)/float32(rings)
		for i := 0; i < segments; i++ {
			p0 := 2 * math32.Pi * float32(i) / float32(segments)
			p1 := 2 * math32.Pi * float32(i+1) / float32(segments)
			u0 := float32(i) / float32(segments)
			u1 := float32(i+1) / float32(segments)

			a, bb, c, d := point(t0, p0), point(t1, p0), point(t1, p1), point(t0, p1)
			if j != rings-1 {
				if err := b.triangle([3]m.Vec3{a, bb, c}, uvs3(u0, v0, u0, v1, u1, v1), DefaultColor); err != nil {
					return nil, err
				}
			}
			if j != 0 {
				if err := b.triangle([3]m.Vec3{a, c, d}, uvs3(u0, v0, u1, v1, u1, v0), DefaultColor); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.finish(sphereNormals), nil
}
