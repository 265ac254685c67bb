package scene

import "room-renderer/math"

// MaxLights is the number of light slots the shader declares. Every slot is
// uploaded each frame; unused slots stay zeroed and contribute nothing.
const MaxLights = 4

// LightSource is a point light with per-component colors, a focal exponent
// for the specular highlight, and distance attenuation coefficients.
type LightSource struct {
	Position          math.Vec3
	AmbientColor      math.Vec3
	DiffuseColor      math.Vec3
	SpecularColor     math.Vec3
	FocalStrength     float32
	SpecularIntensity float32
	Constant          float32
	Linear            float32
	Quadratic         float32
}

// Material holds the Phong shading coefficients shared by objects that
// reference it by tag.
type Material struct {
	Tag             string
	AmbientColor    math.Vec3
	AmbientStrength float32
	DiffuseColor    math.Vec3
	SpecularColor   math.Vec3
	Shininess       float32
}
