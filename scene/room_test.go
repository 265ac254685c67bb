package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomObjectsTagsResolve(t *testing.T) {
	textures := make(map[string]bool)
	for _, spec := range RoomTextures() {
		assert.False(t, textures[spec.Tag], "duplicate texture tag %q", spec.Tag)
		textures[spec.Tag] = true
	}

	materials := make(map[string]bool)
	for _, material := range RoomMaterials() {
		assert.False(t, materials[material.Tag], "duplicate material tag %q", material.Tag)
		materials[material.Tag] = true
	}

	for i, object := range RoomObjects() {
		if object.Appearance.Textured {
			assert.True(t, textures[object.Appearance.TextureTag],
				"object %d references unknown texture %q", i, object.Appearance.TextureTag)
		}
		assert.True(t, materials[object.MaterialTag],
			"object %d references unknown material %q", i, object.MaterialTag)
	}
}

func TestRoomObjectsShape(t *testing.T) {
	objects := RoomObjects()
	assert.Len(t, objects, 62)

	counts := make(map[ShapeType]int)
	for _, object := range objects {
		counts[object.Shape]++
	}
	assert.Equal(t, 2, counts[ShapePlane])
	assert.Equal(t, 47, counts[ShapeBox])
	assert.Equal(t, 12, counts[ShapeCylinder])
	assert.Equal(t, 1, counts[ShapeCone])
}

func TestRoomLightsFitSlots(t *testing.T) {
	lights := RoomLights()
	require.LessOrEqual(t, len(lights), MaxLights)

	for i, light := range lights {
		assert.NotZero(t, light.Constant, "light %d has no constant attenuation", i)
	}
}

func TestRoomTexturesFitRegistry(t *testing.T) {
	assert.LessOrEqual(t, len(RoomTextures()), MaxTextures)
}
