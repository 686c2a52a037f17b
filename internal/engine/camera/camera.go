// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/glstudio/pkg/math"
)

// Projection selects how the camera projects the scene.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// ParseProjection accepts "perspective" and "orthographic" (or "ortho").
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return Perspective, fmt.Errorf("camera: unknown projection %q", s)
}

// Lens holds the projection parameters.
type Lens struct {
	Projection Projection
	FOV        float32 // vertical field of view, radians
	Near, Far  float32
	// OrthoHeight is the visible height in world units for Orthographic.
	OrthoHeight float32
	OrthoNear   float32
	OrthoFar    float32
}

// Matrix returns the projection matrix for a viewport aspect ratio.
func (l Lens) Matrix(aspect float32) math.Mat4 {
	if l.Projection == Orthographic {
		h := l.OrthoHeight / 2
		w := h * aspect
		return math.Ortho(-w, w, -h, h, l.OrthoNear, l.OrthoFar)
	}
	return math.Perspective(l.FOV, aspect, l.Near, l.Far)
}

// Toggle switches between perspective and orthographic.
func (l *Lens) Toggle() {
	if l.Projection == Perspective {
		l.Projection = Orthographic
	} else {
		l.Projection = Perspective
	}
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Damping is the fraction of the remaining motion removed per 1/60 s.
	// Zero applies drags immediately.
	Damping float32

	Lens Lens

	yawVel, pitchVel, zoomVel float32
	home                      orbitPose
}

type orbitPose struct {
	center               math.Vec3
	distance, pitch, yaw float32
	orthoHeight          float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		Distance:        5,
		Pitch:           0.3,
		MinDistance:     0.5,
		MaxDistance:     1000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Lens: Lens{
			FOV:         math32.Pi / 4,
			Near:        0.1,
			Far:         1000,
			OrthoHeight: 10,
			OrthoNear:   -200,
			OrthoFar:    500,
		},
	}
	c.SaveHome()
	return c
}

// LookFrom places the camera at eye looking at center.
func (c *OrbitCamera) LookFrom(eye, center math.Vec3) {
	d := eye.Sub(center)
	c.Center = center
	c.Distance = d.Length()
	if c.Distance > 0 {
		c.Pitch = math32.Asin(d.Y / c.Distance)
	}
	c.Yaw = math32.Atan2(d.X, d.Z)
	c.clamp()
}

// SaveHome remembers the current pose for Reset.
func (c *OrbitCamera) SaveHome() {
	c.home = orbitPose{c.Center, c.Distance, c.Pitch, c.Yaw, c.Lens.OrthoHeight}
}

// Reset returns to the saved pose and stops any motion.
func (c *OrbitCamera) Reset() {
	c.Center, c.Distance, c.Pitch, c.Yaw = c.home.center, c.home.distance, c.home.pitch, c.home.yaw
	c.Lens.OrthoHeight = c.home.orthoHeight
	c.yawVel, c.pitchVel, c.zoomVel = 0, 0, 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// ProjectionMatrix returns the lens matrix for the viewport aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return c.Lens.Matrix(aspect)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	dYaw := -deltaX * c.DragSensitivity
	dPitch := deltaY * c.DragSensitivity
	if c.Damping > 0 {
		c.yawVel += dYaw
		c.pitchVel += dPitch
		return
	}
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.clamp()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	if c.Damping > 0 {
		c.zoomVel += delta
		return
	}
	c.zoom(delta)
}

// zoom scales the orthographic height with the distance so switching
// projections keeps roughly the same framing.
func (c *OrbitCamera) zoom(delta float32) {
	old := c.Distance
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
	if old > 0 {
		c.Lens.OrthoHeight *= c.Distance / old
	}
}

// Update applies the damped motion for a frame of dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	if c.Damping <= 0 {
		return
	}
	// Fraction of the pending motion consumed this frame, independent of
	// the frame rate.
	k := 1 - math32.Pow(1-c.Damping, dt*60)
	c.Yaw += c.yawVel * k
	c.Pitch += c.pitchVel * k
	if c.zoomVel != 0 {
		c.zoom(c.zoomVel * k)
	}
	c.yawVel -= c.yawVel * k
	c.pitchVel -= c.pitchVel * k
	c.zoomVel -= c.zoomVel * k
	c.clamp()
}

// Moving reports whether damped motion is still pending.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return math32.Abs(c.yawVel) > eps || math32.Abs(c.pitchVel) > eps || math32.Abs(c.zoomVel) > eps
}

func (c *OrbitCamera) clamp() {
	c.Pitch = math32.Max(c.MinPitch, math32.Min(c.MaxPitch, c.Pitch))
	c.Distance = math32.Max(c.MinDistance, math32.Min(c.MaxDistance, c.Distance))
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(center math.Vec3) {
	c.Center = center
}
