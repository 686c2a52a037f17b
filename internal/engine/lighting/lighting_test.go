package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/glstudio/pkg/math"
)

type recorder struct {
	vec3s  map[string]math.Vec3
	floats map[string]float32
}

func newRecorder() *recorder {
	return &recorder{vec3s: map[string]math.Vec3{}, floats: map[string]float32{}}
}

func (r *recorder) SetVec3(name string, v math.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetFloat(name string, f float32)  { r.floats[name] = f }

func TestPointLightApply(t *testing.T) {
	r := newRecorder()
	PointLight{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Ambient: 0.2, Diffuse: 0.7, Specular: 1}.Apply(r)

	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, r.vec3s["u_light.position"])
	assert.Equal(t, float32(0.2), r.floats["u_light.ambient"])
	assert.Equal(t, float32(0.7), r.floats["u_light.diffuse"])
	assert.Equal(t, float32(1), r.floats["u_light.specular"])
}

func TestMaterialApply(t *testing.T) {
	r := newRecorder()
	Material{Diffuse: Gray(0.5), Specular: 0.5, Shininess: 32}.Apply(r)

	assert.Equal(t, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, r.vec3s["u_material.diffuse"])
	assert.Equal(t, float32(0.5), r.floats["u_material.specular"])
	assert.Equal(t, float32(32), r.floats["u_material.shininess"])
}

func TestSunApplyNormalizes(t *testing.T) {
	r := newRecorder()
	Sun{Direction: math.Vec3{Y: 4}, Intensity: 2, Ambient: Gray(0.1)}.Apply(r)

	dir := r.vec3s["u_lightDir"]
	assert.InDelta(t, 0, dir.X, 1e-6)
	assert.InDelta(t, 1, dir.Y, 1e-6)
	assert.InDelta(t, 0, dir.Z, 1e-6)
	assert.Equal(t, float32(2), r.floats["u_lightIntensity"])
	assert.Equal(t, Gray(0.1), r.vec3s["u_ambient"])
}
