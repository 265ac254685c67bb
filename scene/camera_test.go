package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"room-renderer/math"
)

func TestCameraDefaultForward(t *testing.T) {
	camera := NewCamera(math.Vec3Zero, 60, 16.0/9.0)
	assertVec3Near(t, math.NewVec3(0, 0, -1), camera.Forward())
}

func TestCameraPitchClamp(t *testing.T) {
	camera := NewCamera(math.Vec3Zero, 60, 16.0/9.0)

	camera.Rotate(0, 500)
	assert.Equal(t, float32(89), camera.Pitch)

	camera.Rotate(0, -500)
	assert.Equal(t, float32(-89), camera.Pitch)
}

func TestCameraViewMatrix(t *testing.T) {
	camera := NewCamera(math.NewVec3(0, 5, 10), 60, 16.0/9.0)
	view := camera.ViewMatrix()

	// The camera position maps to the view-space origin.
	assertVec3Near(t, math.Vec3Zero, view.MulVec3(camera.Position))
}

func TestCameraAspectRatioIgnoresZeroHeight(t *testing.T) {
	camera := NewCamera(math.Vec3Zero, 60, 2)
	camera.UpdateAspectRatio(100, 0)
	assert.Equal(t, float32(2), camera.AspectRatio)

	camera.UpdateAspectRatio(300, 100)
	assert.Equal(t, float32(3), camera.AspectRatio)
}
