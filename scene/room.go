package scene

import "room-renderer/math"

// RoomTextures lists the image files the room references, in slot order.
func RoomTextures() []TextureSpec {
	return []TextureSpec{
		{File: "wood_natural.jpg", Tag: "woodReal"},
		{File: "wood_planks_light_brown.jpg", Tag: "woodPlanks"},
		{File: "plastic_white.jpg", Tag: "plastic"},
		{File: "Label.jpg", Tag: "prescription"},
		{File: "rug_proper.png", Tag: "rug"},
		{File: "cloth_yellow.jpg", Tag: "cloth"},
		{File: "black_wood.jpg", Tag: "table"},
		{File: "wallpaper_beige.jpg", Tag: "wall"},
		{File: "black.jpg", Tag: "screen"},
		{File: "pearlescent.jpg", Tag: "pencil"},
	}
}

// RoomMaterials is the Phong palette the objects reference by tag.
func RoomMaterials() []Material {
	return []Material{
		{
			Tag:             "wood",
			AmbientColor:    math.NewVec3(0.1, 0.1, 0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    math.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:   math.NewVec3(0.1, 0.1, 0.1),
			Shininess:       0.3,
		},
		{
			Tag:             "table",
			AmbientColor:    math.NewVec3(0.2, 0.2, 0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    math.NewVec3(0.4, 0.4, 0.4),
			SpecularColor:   math.NewVec3(0.2, 0.2, 0.2),
			Shininess:       0.5,
		},
		{
			Tag:             "rug",
			AmbientColor:    math.NewVec3(0.2, 0.2, 0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    math.NewVec3(0.5, 0.5, 0.5),
			SpecularColor:   math.NewVec3(0.3, 0.3, 0.3),
			Shininess:       0.5,
		},
		{
			Tag:             "glass",
			AmbientColor:    math.NewVec3(0.5, 0.5, 0.5),
			AmbientStrength: 0.3,
			DiffuseColor:    math.NewVec3(0.8, 0.8, 0.8),
			SpecularColor:   math.NewVec3(0.8, 0.8, 0.8),
			Shininess:       100,
		},
	}
}

// RoomLights is the four-light rig: a bright fill near the tables, a warm
// window light, and two dim colored accents.
func RoomLights() []LightSource {
	return []LightSource{
		{
			Position:          math.NewVec3(-4, 2, 0),
			AmbientColor:      math.NewVec3(1, 1, 1),
			DiffuseColor:      math.NewVec3(1, 1, 1),
			SpecularColor:     math.NewVec3(1, 1, 1),
			FocalStrength:     0,
			SpecularIntensity: 1,
			Constant:          1,
			Linear:            0.00001,
			Quadratic:         0,
		},
		{
			Position:          math.NewVec3(50, 15, 0),
			AmbientColor:      math.NewVec3(0.5, 0.3, 0.3),
			DiffuseColor:      math.NewVec3(0.3, 0.3, 0.3),
			SpecularColor:     math.NewVec3(0, 0, 0),
			FocalStrength:     16,
			SpecularIntensity: 0.03,
			Constant:          1,
			Linear:            0.01,
			Quadratic:         0,
		},
		{
			Position:          math.NewVec3(15, 8, 15),
			AmbientColor:      math.NewVec3(0.6, 0.2, 0.6),
			DiffuseColor:      math.NewVec3(0.3, 0.1, 0.3),
			SpecularColor:     math.NewVec3(0, 0, 0.1),
			FocalStrength:     6,
			SpecularIntensity: 0.05,
			Constant:          1,
			Linear:            0.01,
			Quadratic:         0,
		},
		{
			Position:          math.NewVec3(-10, 8, 15),
			AmbientColor:      math.NewVec3(0.1, 0.1, 0.1),
			DiffuseColor:      math.NewVec3(0.1, 0.1, 0.1),
			SpecularColor:     math.NewVec3(0, 0, 0),
			FocalStrength:     4,
			SpecularIntensity: 0.05,
			Constant:          1,
			Linear:            0.001,
			Quadratic:         0,
		},
	}
}

// place builds one object from scale, rotation (degrees), and position.
func place(shape ShapeType, scale, rotationDeg, position math.Vec3, appearance Appearance, material string) Object {
	return Object{
		Shape:       shape,
		Scale:       scale,
		RotationDeg: rotationDeg,
		Position:    position,
		Appearance:  appearance,
		MaterialTag: material,
	}
}

func v3(x, y, z float32) math.Vec3 {
	return math.NewVec3(x, y, z)
}

// RoomObjects returns the draw list for the room, in draw order: floor and
// wall, rugs, the card box and prescription bottles, the coffee table with
// the book and tablet on it, the TV table, and a pencil.
func RoomObjects() []Object {
	var objects []Object

	// Floor and east wall.
	objects = append(objects,
		place(ShapePlane, v3(40, 1, 20), v3(0, 0, 0), v3(25, 0, 0),
			TexturedScaled("woodPlanks", 10, 10), "wood"),
		place(ShapePlane, v3(8, 10, 40), v3(0, 90, 90), v3(25, 8, -20),
			TexturedScaled("wall", 10, 10), "rug"),
	)

	// Two area rugs, each a base with a cloth border sitting just below it.
	objects = append(objects,
		place(ShapeBox, v3(10, 0.1, 20), v3(0, 0, 0), v3(-4, 0.1, 0),
			Textured("rug"), "rug"),
		place(ShapeBox, v3(10.5, 0.1, 20.5), v3(0, 0, 0), v3(-4, 0.09, 0),
			Textured("cloth"), "rug"),
		place(ShapeBox, v3(12, 0.1, 24), v3(0, 90, 0), v3(20, 0.1, -3),
			Textured("rug"), "rug"),
		place(ShapeBox, v3(12.5, 0.1, 24.5), v3(0, 90, 0), v3(20, 0.09, -3),
			Textured("cloth"), "rug"),
	)

	// Card box on the coffee table.
	objects = append(objects,
		place(ShapeBox, v3(0.75, 1, 2), v3(0, 0, 0), v3(-6, 2, 3),
			FlatColor(1, 0, 1, 1), "rug"),
	)

	// First prescription bottle: translucent body, label wrap, and a
	// three-ring cap.
	objects = append(objects,
		place(ShapeCylinder, v3(0.2, 0.8, 0.2), v3(0, 0, 0), v3(-5.8, 2.501, 3.25),
			FlatColor(1, 0.8, 0.5, 0.5), "rug"),
		place(ShapeCylinder, v3(0.21, 0.4, 0.21), v3(0, 0, 0), v3(-5.8, 2.7, 3.25),
			Textured("prescription"), "rug"),
		place(ShapeCylinder, v3(0.26, 0.03, 0.26), v3(0, 0, 0), v3(-5.8, 3.2, 3.25),
			Textured("plastic"), "wood"),
		place(ShapeCylinder, v3(0.23, 0.15, 0.23), v3(0, 0, 0), v3(-5.8, 3.2, 3.25),
			Textured("plastic"), "wood"),
		place(ShapeCylinder, v3(0.21, 0.1, 0.21), v3(0, 0, 0), v3(-5.8, 3.3, 3.25),
			Textured("plastic"), "wood"),
	)

	// Second prescription bottle, behind the first.
	objects = append(objects,
		place(ShapeCylinder, v3(0.2, 0.8, 0.2), v3(0, 0, 0), v3(-6.13, 2.501, 3.7),
			FlatColor(1, 0.8, 0.5, 0.5), "wood"),
		place(ShapeCylinder, v3(0.21, 0.4, 0.21), v3(0, 0, 0), v3(-6.13, 2.7, 3.7),
			Textured("prescription"), "wood"),
		place(ShapeCylinder, v3(0.26, 0.03, 0.26), v3(0, 0, 0), v3(-6.13, 3.2, 3.7),
			Textured("plastic"), "wood"),
		place(ShapeCylinder, v3(0.23, 0.15, 0.23), v3(0, 0, 0), v3(-6.13, 3.2, 3.7),
			Textured("plastic"), "wood"),
		place(ShapeCylinder, v3(0.21, 0.1, 0.21), v3(0, 0, 0), v3(-6.13, 3.3, 3.7),
			Textured("plastic"), "wood"),
	)

	objects = append(objects, tableFrame(
		v3(-1.9, 0, 2.5), Textured("table"), Textured("table"), "table")...)

	// Hardcover book on the coffee table: covers, page block, and spine.
	objects = append(objects,
		place(ShapeBox, v3(1.72, 0.01, 2.45), v3(0, 0, 0), v3(-4.745, 1.5, 2.75),
			FlatColor(0.1, 0.1, 0.1, 1), "rug"),
		place(ShapeBox, v3(1.7, 0.1, 2.4), v3(0, 0, 0), v3(-4.75, 1.56, 2.75),
			FlatColor(1, 1, 1, 1), "rug"),
		place(ShapeBox, v3(1.72, 0.01, 2.45), v3(0, 0, 0), v3(-4.745, 1.62, 2.75),
			FlatColor(0.1, 0.1, 0.1, 1), "rug"),
		place(ShapeBox, v3(0.01, 0.12, 2.45), v3(0, 0, 0), v3(-5.6, 1.56, 2.75),
			FlatColor(0.1, 0.1, 0.1, 1), "rug"),
	)

	// Tablet lying next to the book.
	objects = append(objects,
		place(ShapeBox, v3(1.2, 0.01, 2.0), v3(0, 0, 0), v3(-3, 1.505, 2.75),
			FlatColor(0.1, 0.1, 0.1, 1), "rug"),
		place(ShapeBox, v3(1.2, 0.0025, 2.0), v3(0, 0, 0), v3(-3, 1.51, 2.75),
			Textured("screen"), "glass"),
	)

	objects = append(objects, tableFrame(
		v3(4.1, 0, -9.5), Textured("woodReal"), TexturedScaled("woodReal", 0.1, 1), "table")...)

	// Pencil on the coffee table, lying along Z.
	objects = append(objects,
		place(ShapeCylinder, v3(0.02, 1.4, 0.02), v3(90, 0, 0), v3(-5.6, 1.645, 2.3),
			TexturedScaled("pencil", 0.1, 1), "table"),
		place(ShapeCone, v3(0.02, 0.08, 0.02), v3(90, 0, 0), v3(-5.6, 1.645, 3.7),
			TexturedScaled("table", 0.1, 0.1), "table"),
		place(ShapeCylinder, v3(0.02, 0.04, 0.02), v3(90, 0, 0), v3(-5.6, 1.645, 2.26),
			TexturedScaled("screen", 0.1, 0.1), "table"),
	)

	return objects
}

// tableFrame builds the 18 boxes of one slatted table centered at (cx, _, cz):
// two shelves plus four slatted sides. Horizontal slats use slatAppearance,
// vertical posts use postAppearance.
func tableFrame(center math.Vec3, slatAppearance, postAppearance Appearance, material string) []Object {
	cx, cz := center.X, center.Z

	return []Object{
		// Lower and upper shelves.
		place(ShapeBox, v3(9.0525, 0.1, 3), v3(0, 0, 0), v3(cx+0.025, 1.45, cz),
			slatAppearance, material),
		place(ShapeBox, v3(9.5, 0.1, 3.5), v3(0, 0, 0), v3(cx-0.025, 4.0, cz+0.025),
			slatAppearance, material),

		// Front side: two horizontal slats, two corner posts.
		place(ShapeBox, v3(9, 0.5, 0.1), v3(0, 0, 0), v3(cx, 3.75, cz+1.45),
			slatAppearance, material),
		place(ShapeBox, v3(9, 0.5, 0.1), v3(0, 0, 0), v3(cx, 1.2, cz+1.45),
			slatAppearance, material),
		place(ShapeBox, v3(0.5, 4, 0.1), v3(0, 0, 0), v3(cx-4.35, 2, cz+1.55),
			postAppearance, material),
		place(ShapeBox, v3(0.5, 4, 0.1), v3(0, 0, 0), v3(cx+4.4, 2, cz+1.55),
			postAppearance, material),

		// Back side.
		place(ShapeBox, v3(9, 0.5, 0.1), v3(0, 0, 0), v3(cx, 3.75, cz-1.45),
			slatAppearance, material),
		place(ShapeBox, v3(9, 0.5, 0.1), v3(0, 0, 0), v3(cx, 1.2, cz-1.45),
			slatAppearance, material),
		place(ShapeBox, v3(0.5, 4, 0.1), v3(0, 0, 0), v3(cx-4.35, 2, cz-1.55),
			postAppearance, material),
		place(ShapeBox, v3(0.5, 4, 0.1), v3(0, 0, 0), v3(cx+4.4, 2, cz-1.55),
			postAppearance, material),

		// Left side.
		place(ShapeBox, v3(0.1, 0.5, 3), v3(0, 0, 0), v3(cx-4.45, 3.75, cz),
			slatAppearance, material),
		place(ShapeBox, v3(0.1, 0.5, 3), v3(0, 0, 0), v3(cx-4.45, 1.2, cz),
			slatAppearance, material),
		place(ShapeBox, v3(0.1, 4, 0.5), v3(0, 0, 0), v3(cx-4.55, 2, cz-1.35),
			postAppearance, material),
		place(ShapeBox, v3(0.1, 4, 0.5), v3(0, 0, 0), v3(cx-4.55, 2, cz+1.35),
			postAppearance, material),

		// Right side.
		place(ShapeBox, v3(0.1, 0.5, 3), v3(0, 0, 0), v3(cx+4.5, 3.75, cz),
			slatAppearance, material),
		place(ShapeBox, v3(0.1, 0.5, 3), v3(0, 0, 0), v3(cx+4.5, 1.2, cz),
			slatAppearance, material),
		place(ShapeBox, v3(0.1, 4, 0.5), v3(0, 0, 0), v3(cx+4.6, 2, cz-1.35),
			postAppearance, material),
		place(ShapeBox, v3(0.1, 4, 0.5), v3(0, 0, 0), v3(cx+4.6, 2, cz+1.35),
			postAppearance, material),
	}
}
