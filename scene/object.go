package scene

import (
	"room-renderer/core"
	"room-renderer/math"
)

// ShapeType identifies one of the built-in unit meshes.
type ShapeType int

const (
	ShapePlane ShapeType = iota
	ShapeBox
	ShapeCylinder
	ShapeCone
)

func (s ShapeType) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	default:
		return "unknown"
	}
}

// Appearance describes how a single object is shaded: either a flat color
// or a tagged texture with a UV tiling factor. Exactly one of the two modes
// is active per object.
type Appearance struct {
	Textured   bool
	Color      core.Color
	TextureTag string
	UVScale    math.Vec2
}

// FlatColor shades the object with a solid color and no texture.
func FlatColor(r, g, b, a float32) Appearance {
	return Appearance{Color: core.NewColor(r, g, b, a)}
}

// Textured shades the object with the named texture at 1:1 UV tiling.
func Textured(tag string) Appearance {
	return TexturedScaled(tag, 1, 1)
}

// TexturedScaled shades the object with the named texture, tiling the UVs
// by (u, v).
func TexturedScaled(tag string, u, v float32) Appearance {
	return Appearance{
		Textured:   true,
		TextureTag: tag,
		UVScale:    math.NewVec2(u, v),
	}
}

// Object is one draw command: a unit shape placed by a scale/rotate/translate
// transform, shaded by an appearance and a named material.
type Object struct {
	Shape       ShapeType
	Scale       math.Vec3
	RotationDeg math.Vec3
	Position    math.Vec3
	Appearance  Appearance
	MaterialTag string
}
