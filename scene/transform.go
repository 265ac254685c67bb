package scene

import "room-renderer/math"

// ComposeTransform builds a model matrix that scales first, then rotates
// about Z, Y, X in that order, then translates. Rotation angles are in
// degrees.
func ComposeTransform(scale, rotationDeg, position math.Vec3) math.Mat4 {
	m := math.Mat4Scale(scale)
	m = m.Mul(math.Mat4RotationZ(math.Radians(rotationDeg.Z)))
	m = m.Mul(math.Mat4RotationY(math.Radians(rotationDeg.Y)))
	m = m.Mul(math.Mat4RotationX(math.Radians(rotationDeg.X)))
	return m.Mul(math.Mat4Translation(position))
}
