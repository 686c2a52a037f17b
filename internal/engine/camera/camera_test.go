package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glstudio/pkg/math"
)

func assertVec3(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestLookFromRoundTrip(t *testing.T) {
	c := NewOrbitCamera()
	eye := math.Vec3{X: 120, Y: 60, Z: 180}
	c.LookFrom(eye, math.Vec3{})

	assertVec3(t, eye, c.Position(), 1e-3)
}

func TestViewMatrixMovesCenterInFront(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.Vec3{Z: 3}, math.Vec3{})

	p := c.ViewMatrix().TransformPoint(math.Vec3{})
	assertVec3(t, math.Vec3{Z: -3}, p, 1e-5)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -100000)
	assert.Equal(t, c.MinPitch, c.Pitch)
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleZoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestDampedDragConverges(t *testing.T) {
	c := NewOrbitCamera()
	c.Damping = 0.05
	start := c.Yaw

	c.HandleDrag(-100, 0)
	assert.Equal(t, start, c.Yaw, "damped drag applies on Update")
	assert.True(t, c.Moving())

	c.Update(1.0 / 60)
	first := c.Yaw - start
	assert.InDelta(t, 0.5*0.05, first, 1e-4)

	for i := 0; i < 2000; i++ {
		c.Update(1.0 / 60)
	}
	assert.InDelta(t, 0.5, c.Yaw-start, 1e-3)
	assert.False(t, c.Moving())
}

func TestDampingIsFrameRateIndependent(t *testing.T) {
	a := NewOrbitCamera()
	b := NewOrbitCamera()
	a.Damping, b.Damping = 0.1, 0.1
	a.HandleDrag(200, 0)
	b.HandleDrag(200, 0)

	a.Update(1.0 / 30)
	b.Update(1.0 / 60)
	b.Update(1.0 / 60)

	assert.InDelta(t, a.Yaw, b.Yaw, 1e-5)
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{})
	c.SaveHome()
	home := c.Position()

	c.HandleDrag(50, 50)
	c.HandleZoom(1)
	c.Reset()
	assertVec3(t, home, c.Position(), 1e-5)
}

func TestLensToggle(t *testing.T) {
	l := NewOrbitCamera().Lens
	require.Equal(t, Perspective, l.Projection)

	persp := l.Matrix(1)
	assert.Equal(t, float32(-1), persp[11])

	l.Toggle()
	assert.Equal(t, Orthographic, l.Projection)
	ortho := l.Matrix(2)
	assert.Equal(t, float32(1), ortho[15])
	// Half height 5, half width 10 at aspect 2.
	assert.InDelta(t, 0.1, ortho[0], 1e-6)
	assert.InDelta(t, 0.2, ortho[5], 1e-6)

	l.Toggle()
	assert.Equal(t, Perspective, l.Projection)
}

func TestParseProjection(t *testing.T) {
	p, err := ParseProjection("ortho")
	require.NoError(t, err)
	assert.Equal(t, Orthographic, p)

	p, err = ParseProjection(Perspective.String())
	require.NoError(t, err)
	assert.Equal(t, Perspective, p)

	_, err = ParseProjection("fisheye")
	assert.Error(t, err)
}

func TestArcballProjectCenter(t *testing.T) {
	a := NewArcball(5)
	a.SetViewport(700, 700)
	assertVec3(t, math.Vec3{Z: 1}, a.project(350, 350), 1e-6)

	// Outside the ball the point lands on the rim.
	p := a.project(700, 350)
	assert.InDelta(t, 1, p.Length(), 1e-6)
	assert.Equal(t, float32(0), p.Z)
}

func TestArcballDragRotatesAroundY(t *testing.T) {
	a := NewArcball(5)
	a.SetViewport(700, 700)
	a.RotationSpeed = 1

	a.Begin(350, 350)
	a.Drag(450, 350)
	a.End()

	// Dragging right rotates +Z toward +X.
	v := a.Rotation().TransformPoint(math.Vec3{Z: 1})
	assert.Greater(t, v.X, float32(0))
	assert.InDelta(t, 0, v.Y, 1e-5)

	angle := math32.Asin(v.X)
	want := math32.Asin(100.0 / 350)
	assert.InDelta(t, want, angle, 1e-4)
}

func TestArcballViewAndReset(t *testing.T) {
	a := NewArcball(5)
	a.SetViewport(100, 100)

	assertVec3(t, math.Vec3{Z: 5}, a.Eye(), 1e-5)
	assertVec3(t, math.Vec3{Z: -5}, a.DistanceMatrix().TransformPoint(math.Vec3{}), 1e-6)

	a.Begin(50, 50)
	a.Drag(80, 20)
	assert.NotEqual(t, math.Identity(), a.Rotation())
	assert.InDelta(t, 5, a.Eye().Length(), 1e-4)

	a.Zoom(1)
	assert.Less(t, a.Distance, float32(5))

	a.Reset()
	assert.Equal(t, math.Identity(), a.Rotation())
	assert.Equal(t, float32(5), a.Distance)
	assert.False(t, a.Dragging())
}

func TestArcballDragWithoutBegin(t *testing.T) {
	a := NewArcball(5)
	a.Drag(10, 10)
	assert.Equal(t, math.Identity(), a.Rotation())
}

func TestZoomScalesOrthoHeight(t *testing.T) {
	c := NewOrbitCamera()
	c.LookFrom(math.Vec3{Z: 10}, math.Vec3{})
	c.Lens.OrthoHeight = 8

	c.HandleZoom(5) // 10 - 5*10*0.1 = 5
	assert.InDelta(t, 5, c.Distance, 1e-5)
	assert.InDelta(t, 4, c.Lens.OrthoHeight, 1e-5)
}
