package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-renderer/core"
)

func TestBuildPlane(t *testing.T) {
	data := BuildShape(ShapePlane)
	require.Len(t, data.Vertices, 4)
	require.Len(t, data.Indices, 6)

	for _, vertex := range data.Vertices {
		assert.Equal(t, float32(0), vertex.Position.Y)
		assert.InDelta(t, 1, vertex.Position.X*vertex.Position.X, 0.0001)
		assert.InDelta(t, 1, vertex.Position.Z*vertex.Position.Z, 0.0001)
		assert.Equal(t, float32(1), vertex.Normal.Y)
	}
}

func TestBuildBox(t *testing.T) {
	data := BuildShape(ShapeBox)
	require.Len(t, data.Vertices, 24)
	require.Len(t, data.Indices, 36)

	// Unit cube centered at the origin.
	for _, vertex := range data.Vertices {
		assert.InDelta(t, 0.5, abs32(vertex.Position.X), 0.0001)
		assert.InDelta(t, 0.5, abs32(vertex.Position.Y), 0.0001)
		assert.InDelta(t, 0.5, abs32(vertex.Position.Z), 0.0001)
		assert.InDelta(t, 1, vertex.Normal.Length(), 0.0001)
	}
}

func TestBuildCylinderExtents(t *testing.T) {
	data := BuildShape(ShapeCylinder)
	require.NotEmpty(t, data.Vertices)

	minY, maxY := extentsY(data)
	assert.Equal(t, float32(0), minY)
	assert.Equal(t, float32(1), maxY)

	for _, vertex := range data.Vertices {
		radius := vertex.Position.X*vertex.Position.X + vertex.Position.Z*vertex.Position.Z
		assert.LessOrEqual(t, radius, float32(1.0001))
	}
}

func TestBuildConeExtents(t *testing.T) {
	data := BuildShape(ShapeCone)
	require.NotEmpty(t, data.Vertices)

	minY, maxY := extentsY(data)
	assert.Equal(t, float32(0), minY)
	assert.Equal(t, float32(1), maxY)

	// The apex sits on the axis.
	for _, vertex := range data.Vertices {
		if vertex.Position.Y == 1 {
			assert.Equal(t, float32(0), vertex.Position.X)
			assert.Equal(t, float32(0), vertex.Position.Z)
		}
	}
}

func TestBuildShapeIndicesInRange(t *testing.T) {
	for _, shape := range []ShapeType{ShapePlane, ShapeBox, ShapeCylinder, ShapeCone} {
		data := BuildShape(shape)
		require.NotEmpty(t, data.Indices, "shape %s", shape)
		assert.Zero(t, len(data.Indices)%3, "shape %s index count not triangles", shape)
		for _, index := range data.Indices {
			assert.Less(t, int(index), len(data.Vertices), "shape %s", shape)
		}
	}
}

func extentsY(data core.MeshData) (minY, maxY float32) {
	minY, maxY = data.Vertices[0].Position.Y, data.Vertices[0].Position.Y
	for _, vertex := range data.Vertices {
		if vertex.Position.Y < minY {
			minY = vertex.Position.Y
		}
		if vertex.Position.Y > maxY {
			maxY = vertex.Position.Y
		}
	}
	return minY, maxY
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
