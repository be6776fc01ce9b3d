package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: three spheres and a
// triangle above a ground plane, lit by two point lights.
func NewDefaultScene(width, height int) *Scene {
	// Create materials
	matteGray := material.Matte(core.NewVec3(0.5, 0.5, 0.5))
	glossyRed := material.NewMaterial(core.NewVec3(0.7, 0.15, 0.1), core.NewVec3(0.8, 0.8, 0.8), 30)
	glossyBlue := material.NewMaterial(core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.6, 0.6, 0.9), 50)
	chalkGreen := material.NewMaterial(core.NewVec3(0.2, 0.6, 0.2), core.NewVec3(0.2, 0.2, 0.2), 5)
	brass := material.NewMaterial(core.NewVec3(0.65, 0.5, 0.15), core.NewVec3(0.9, 0.8, 0.4), 80)

	primitives := []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.6, glossyRed),
		geometry.NewSphere(core.NewVec3(-2.4, 0.9, -5), 0.8, glossyBlue),
		geometry.NewSphere(core.NewVec3(2.2, 1.1, -4.5), 0.6, chalkGreen),
		geometry.NewTriangle(
			core.NewVec3(-1.2, -2.2, -3.5),
			core.NewVec3(1.2, -2.2, -3.5),
			core.NewVec3(0, -0.6, -4.2),
			brass,
		),
		geometry.NewPlane(core.NewVec3(0, 2.0, 0), core.NewVec3(0, -1, 0), matteGray),
	}

	lights := []Light{
		NewLight(core.NewVec3(-8, -6, 2), core.NewVec3(0.9, 0.9, 0.9)),
		NewLight(core.NewVec3(6, -4, -1), core.NewVec3(0.3, 0.3, 0.45)),
	}

	return &Scene{
		Width:      width,
		Height:     height,
		Fov:        50,
		Camera:     core.NewVec3(0, 0, 2),
		View:       core.NewVec3(0, 0, -1),
		Up:         core.NewVec3(0, 1, 0),
		Ambient:    core.NewVec3(0.1, 0.1, 0.1),
		Primitives: primitives,
		Lights:     lights,
	}
}

// NewShadowScene creates a scene with a small sphere suspended between
// the light and a large backing sphere, casting a hard shadow.
func NewShadowScene(width, height int) *Scene {
	matteWhite := material.Matte(core.NewVec3(0.85, 0.85, 0.85))
	glossyViolet := material.NewMaterial(core.NewVec3(0.4, 0.1, 0.5), core.NewVec3(0.7, 0.5, 0.9), 40)

	primitives := []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, 0, -10), 4.0, matteWhite),
		geometry.NewSphere(core.NewVec3(0.8, -0.8, -4), 0.5, glossyViolet),
	}

	lights := []Light{
		NewLight(core.NewVec3(3, -3, 1), core.NewVec3(1, 1, 1)),
	}

	return &Scene{
		Width:      width,
		Height:     height,
		Fov:        45,
		Camera:     core.NewVec3(0, 0, 1),
		View:       core.NewVec3(0, 0, -1),
		Up:         core.NewVec3(0, 1, 0),
		Ambient:    core.NewVec3(0.05, 0.05, 0.05),
		Primitives: primitives,
		Lights:     lights,
	}
}
