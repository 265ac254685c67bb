package scene

import (
	"github.com/chewxy/math32"

	"room-renderer/core"
	"room-renderer/math"
)

const shapeSegments = 36

// BuildShape generates the unit mesh for a shape type. Transforms applied at
// draw time place and size the unit shapes; the generators never take
// dimensions.
func BuildShape(shape ShapeType) core.MeshData {
	switch shape {
	case ShapePlane:
		return buildPlane()
	case ShapeBox:
		return buildBox()
	case ShapeCylinder:
		return buildCylinder(shapeSegments)
	case ShapeCone:
		return buildCone(shapeSegments)
	default:
		return core.MeshData{}
	}
}

// buildPlane spans -1..1 in X and Z at y = 0, facing up.
func buildPlane() core.MeshData {
	vertices := []core.Vertex{
		{Position: math.NewVec3(-1, 0, -1), Normal: math.Vec3Up, UV: math.NewVec2(0, 1)},
		{Position: math.NewVec3(1, 0, -1), Normal: math.Vec3Up, UV: math.NewVec2(1, 1)},
		{Position: math.NewVec3(1, 0, 1), Normal: math.Vec3Up, UV: math.NewVec2(1, 0)},
		{Position: math.NewVec3(-1, 0, 1), Normal: math.Vec3Up, UV: math.NewVec2(0, 0)},
	}
	indices := []uint32{0, 3, 1, 1, 3, 2}
	return core.MeshData{Vertices: vertices, Indices: indices}
}

// buildBox is a unit cube centered at the origin with per-face normals.
func buildBox() core.MeshData {
	type face struct {
		normal math.Vec3
		corner [4]math.Vec3
	}

	h := float32(0.5)
	faces := []face{
		{math.NewVec3(0, 0, 1), [4]math.Vec3{
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.NewVec3(0, 0, -1), [4]math.Vec3{
			{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.NewVec3(1, 0, 0), [4]math.Vec3{
			{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.NewVec3(-1, 0, 0), [4]math.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{math.NewVec3(0, 1, 0), [4]math.Vec3{
			{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{math.NewVec3(0, -1, 0), [4]math.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
	}

	uvs := [4]math.Vec2{
		math.NewVec2(0, 0), math.NewVec2(1, 0), math.NewVec2(1, 1), math.NewVec2(0, 1),
	}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i := 0; i < 4; i++ {
			vertices = append(vertices, core.Vertex{
				Position: f.corner[i],
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return core.MeshData{Vertices: vertices, Indices: indices}
}

// buildCylinder has radius 1 and height 1, base at y = 0, with side walls
// and both caps.
func buildCylinder(segments int) core.MeshData {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		normal := math.NewVec3(cosT, 0, sinT)
		u := float32(i) / float32(segments)

		vertices = append(vertices,
			core.Vertex{
				Position: math.NewVec3(cosT, 0, sinT),
				Normal:   normal,
				UV:       math.NewVec2(u, 0),
			},
			core.Vertex{
				Position: math.NewVec3(cosT, 1, sinT),
				Normal:   normal,
				UV:       math.NewVec2(u, 1),
			})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendCap(&vertices, &indices, segments, 1, math.Vec3Up)
	appendCap(&vertices, &indices, segments, 0, math.Vec3Down)

	return core.MeshData{Vertices: vertices, Indices: indices}
}

// buildCone has base radius 1 and height 1, base at y = 0, apex at y = 1.
func buildCone(segments int) core.MeshData {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	// The slope normal tilts by atan(radius / height); radius and height are
	// both 1 here.
	slope := math32.Atan2(1, 1)
	ny := math32.Cos(slope)
	nr := math32.Sin(slope)

	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		normal := math.NewVec3(cosT*nr, ny, sinT*nr).Normalize()
		u := float32(i) / float32(segments)

		vertices = append(vertices,
			core.Vertex{
				Position: math.NewVec3(cosT, 0, sinT),
				Normal:   normal,
				UV:       math.NewVec2(u, 0),
			},
			core.Vertex{
				Position: math.NewVec3(0, 1, 0),
				Normal:   normal,
				UV:       math.NewVec2(u, 1),
			})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
	}

	appendCap(&vertices, &indices, segments, 0, math.Vec3Down)

	return core.MeshData{Vertices: vertices, Indices: indices}
}

// appendCap adds a triangle-fan disc of radius 1 at height y facing normal.
func appendCap(vertices *[]core.Vertex, indices *[]uint32, segments int, y float32, normal math.Vec3) {
	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: math.NewVec3(0, y, 0),
		Normal:   normal,
		UV:       math.NewVec2(0.5, 0.5),
	})

	for i := 0; i < segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		nextTheta := float32(i+1) * 2 * math32.Pi / float32(segments)
		sinT, cosT := math32.Sincos(theta)
		sinN, cosN := math32.Sincos(nextTheta)

		v1 := uint32(len(*vertices))
		*vertices = append(*vertices,
			core.Vertex{
				Position: math.NewVec3(cosT, y, sinT),
				Normal:   normal,
				UV:       math.NewVec2(cosT*0.5+0.5, sinT*0.5+0.5),
			},
			core.Vertex{
				Position: math.NewVec3(cosN, y, sinN),
				Normal:   normal,
				UV:       math.NewVec2(cosN*0.5+0.5, sinN*0.5+0.5),
			})

		if normal.Y > 0 {
			*indices = append(*indices, center, v1, v1+1)
		} else {
			*indices = append(*indices, center, v1+1, v1)
		}
	}
}
