package scene

import "github.com/chewxy/math32"

// EarthMoon is the planar sun, earth and moon scene.
func EarthMoon() []BodySpec {
	return []BodySpec{
		{Name: "sun", SpinSpeed: math32.Pi / 4, Scale: 0.2, Color: "#ff0000"},
		{Name: "earth", Parent: "sun", OrbitRadius: 0.7, OrbitSpeed: math32.Pi / 6, SpinSpeed: math32.Pi, Scale: 0.1, Color: "#00ffff"},
		{Name: "moon", Parent: "earth", OrbitRadius: 0.2, OrbitSpeed: 2 * math32.Pi, SpinSpeed: math32.Pi, Scale: 0.05, Color: "#ffff00"},
	}
}

// SolarSystem is the inner solar system orbiting in the XZ plane. Planet
// scales are radii of a unit-diameter sphere, so they are doubled.
func SolarSystem() []BodySpec {
	return []BodySpec{
		{Name: "sun", Scale: 20, Color: "#ffff00", Emissive: true},
		{Name: "mercury", OrbitRadius: 20, OrbitSpeed: 1.2, SpinSpeed: 1.2, Scale: 3, Color: "#a6a6a6", Texture: "textures/Mercury.jpg"},
		{Name: "venus", OrbitRadius: 35, OrbitSpeed: 0.9, SpinSpeed: 0.9, Scale: 6, Color: "#e39e1c", Texture: "textures/Venus.jpg"},
		{Name: "earth", OrbitRadius: 50, OrbitSpeed: 0.6, SpinSpeed: 0.6, Scale: 7, Color: "#3498db", Texture: "textures/Earth.jpg"},
		{Name: "mars", OrbitRadius: 65, OrbitSpeed: 0.48, SpinSpeed: 0.48, Scale: 5, Color: "#c0392b", Texture: "textures/Mars.jpg"},
	}
}
