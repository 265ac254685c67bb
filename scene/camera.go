package scene

import (
	"github.com/chewxy/math32"

	"room-renderer/math"
)

// Camera is a free-fly camera driven by yaw/pitch angles in degrees.
type Camera struct {
	Position    math.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(position math.Vec3, fov, aspectRatio float32) *Camera {
	return &Camera{
		Position:    position,
		Yaw:         -90,
		Pitch:       0,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.1,
		FarPlane:    100,
	}
}

// Forward returns the unit view direction for the current yaw and pitch.
func (c *Camera) Forward() math.Vec3 {
	sinYaw, cosYaw := math32.Sincos(math.Radians(c.Yaw))
	sinPitch, cosPitch := math32.Sincos(math.Radians(c.Pitch))
	return math.Vec3{
		X: cosYaw * cosPitch,
		Y: sinPitch,
		Z: sinYaw * cosPitch,
	}.Normalize()
}

func (c *Camera) Right() math.Vec3 {
	return c.Forward().Cross(math.Vec3Up).Normalize()
}

// Rotate applies mouse deltas to yaw and pitch, clamping pitch short of the
// poles.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

func (c *Camera) Translate(delta math.Vec3) {
	c.Position = c.Position.Add(delta)
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Forward()), math.Vec3Up)
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(math.Radians(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
