package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/glstudio/pkg/math"
)

// Arcball turns mouse drags into rotations on a virtual trackball centered
// in the viewport. The same rotation can drive the view (camera mode) or the
// model matrix (model mode).
type Arcball struct {
	Distance      float32
	RotationSpeed float32
	ZoomSpeed     float32
	MinDistance   float32

	width, height int
	rotation      math.Quat
	dragging      bool
	last          math.Vec3

	initialDistance float32
}

// NewArcball creates an arcball at distance from the origin.
func NewArcball(distance float32) *Arcball {
	return &Arcball{
		Distance:        distance,
		RotationSpeed:   2,
		ZoomSpeed:       0.1,
		MinDistance:     0.1,
		width:           1,
		height:          1,
		rotation:        math.QuatIdentity(),
		initialDistance: distance,
	}
}

// SetViewport sets the size of the drag area in pixels.
func (a *Arcball) SetViewport(width, height int) {
	a.width, a.height = max(width, 1), max(height, 1)
}

// project maps a window position onto the unit trackball.
func (a *Arcball) project(x, y int) math.Vec3 {
	px := (2*float32(x) - float32(a.width)) / float32(a.width)
	py := (float32(a.height) - 2*float32(y)) / float32(a.height)
	d := px*px + py*py
	if d <= 1 {
		return math.Vec3{X: px, Y: py, Z: math32.Sqrt(1 - d)}
	}
	return math.Vec3{X: px, Y: py}.Normalize()
}

// Begin starts a drag at window position (x, y).
func (a *Arcball) Begin(x, y int) {
	a.dragging = true
	a.last = a.project(x, y)
}

// Drag continues the drag to (x, y).
func (a *Arcball) Drag(x, y int) {
	if !a.dragging {
		return
	}
	p := a.project(x, y)
	axis := a.last.Cross(p)
	if axis.Length() < 1e-6 {
		return
	}
	angle := math32.Acos(math32.Max(-1, math32.Min(1, a.last.Dot(p)))) * a.RotationSpeed
	a.rotation = math.QuatFromAxisAngle(axis.Normalize(), angle).Mul(a.rotation).Normalize()
	a.last = p
}

// End finishes the drag.
func (a *Arcball) End() {
	a.dragging = false
}

// Dragging reports whether a drag is active.
func (a *Arcball) Dragging() bool {
	return a.dragging
}

// Zoom moves the eye along the view axis by wheel delta.
func (a *Arcball) Zoom(delta float32) {
	a.Distance = math32.Max(a.MinDistance, a.Distance-delta*a.Distance*a.ZoomSpeed)
}

// Reset clears the rotation and restores the initial distance.
func (a *Arcball) Reset() {
	a.rotation = math.QuatIdentity()
	a.Distance = a.initialDistance
	a.dragging = false
}

// Eye returns the camera-mode eye position in world space.
func (a *Arcball) Eye() math.Vec3 {
	return a.ViewMatrix().Inverse().Translation()
}

// Rotation returns the accumulated rotation.
func (a *Arcball) Rotation() math.Mat4 {
	return a.rotation.ToMat4()
}

// DistanceMatrix moves the world back by Distance along -Z.
func (a *Arcball) DistanceMatrix() math.Mat4 {
	return math.Translate(0, 0, -a.Distance)
}

// ViewMatrix is the camera-mode view: rotate the world, then push it back
// by Distance, so the eye orbits the origin.
func (a *Arcball) ViewMatrix() math.Mat4 {
	return a.DistanceMatrix().Mul(a.Rotation())
}
