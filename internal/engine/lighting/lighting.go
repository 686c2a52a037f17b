// Package lighting holds the light and material parameters of the lit
// exercises and uploads them as shader uniforms.
package lighting

import "github.com/Faultbox/glstudio/pkg/math"

// Uniforms is the part of a shader program lights write to.
type Uniforms interface {
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
}

// PointLight is a white Phong light with one intensity per term.
type PointLight struct {
	Position math.Vec3
	Ambient  float32
	Diffuse  float32
	Specular float32
}

// Apply writes the light to the u_light struct uniform.
func (l PointLight) Apply(u Uniforms) {
	u.SetVec3("u_light.position", l.Position)
	u.SetFloat("u_light.ambient", l.Ambient)
	u.SetFloat("u_light.diffuse", l.Diffuse)
	u.SetFloat("u_light.specular", l.Specular)
}

// Material is the surface response of a lit mesh.
type Material struct {
	Diffuse   math.Vec3
	Specular  float32
	Shininess float32
}

// Apply writes the material to the u_material struct uniform.
func (m Material) Apply(u Uniforms) {
	u.SetVec3("u_material.diffuse", m.Diffuse)
	u.SetFloat("u_material.specular", m.Specular)
	u.SetFloat("u_material.shininess", m.Shininess)
}

// Sun is a directional light with a flat ambient term.
type Sun struct {
	// Direction points from the scene towards the light. It need not be
	// normalized.
	Direction math.Vec3
	Intensity float32
	Ambient   math.Vec3
}

// Apply writes the sun to the u_lightDir, u_lightIntensity and u_ambient
// uniforms.
func (s Sun) Apply(u Uniforms) {
	u.SetVec3("u_lightDir", s.Direction.Normalize())
	u.SetFloat("u_lightIntensity", s.Intensity)
	u.SetVec3("u_ambient", s.Ambient)
}

// Gray returns a neutral color with all channels set to v.
func Gray(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}
