package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a ground plane, lit by a low sun
func NewDefaultScene() *Scene {
	s := &Scene{
		Width:  800,
		Height: 600,
		FOV:    90.0,
	}

	// Create materials
	green := material.NewLambertian(core.NewColor(0.4, 1.0, 0.4), 0.18)
	red := material.NewLambertian(core.NewColor(1.0, 0.3, 0.3), 0.58)
	blue := material.NewLambertian(core.NewColor(0.3, 0.4, 1.0), 0.38)
	ground := material.NewLambertian(core.NewColor(0.6, 0.6, 0.6), 0.5)

	s.AddElement(geometry.NewSphere(core.NewPoint(0, 0, -5), 1.0, green))
	s.AddElement(geometry.NewSphere(core.NewPoint(-3, 1, -6), 2.0, red))
	s.AddElement(geometry.NewSphere(core.NewPoint(2, 1, -4), 1.5, blue))

	// Normal points down, away from the camera above it
	s.AddElement(geometry.NewPlane(core.NewPoint(0, -2, -5), core.NewVec3(0, -1, 0), ground))

	s.AddLight(lights.NewDirectionalLight(
		core.NewVec3(-0.25, -1, -1),  // direction of travel
		core.NewColor(1.0, 1.0, 1.0), // white
		20.0,                         // intensity
	))

	return s
}

// NewSingleSphereScene creates one unit sphere straight ahead of the camera
func NewSingleSphereScene(width, height int) *Scene {
	s := &Scene{
		Width:  width,
		Height: height,
		FOV:    90.0,
	}

	s.AddElement(geometry.NewSphere(
		core.NewPoint(0, 0, -5),
		1.0,
		material.NewLambertian(core.NewColor(0.4, 1.0, 0.4), 0.18),
	))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.NewColor(1, 1, 1), 50.0))

	return s
}

// NewSphereRowScene creates a row of spheres that recede from the camera,
// each described as its own single-object entry
func NewSphereRowScene() *Scene {
	sun := lights.NewDirectionalLight(core.NewVec3(1, -1, -1), core.NewColor(1.0, 0.95, 0.9), 15.0)
	colors := []core.Color{
		core.NewColor(0.9, 0.2, 0.2),
		core.NewColor(0.9, 0.7, 0.2),
		core.NewColor(0.2, 0.8, 0.3),
		core.NewColor(0.2, 0.5, 0.9),
		core.NewColor(0.6, 0.3, 0.9),
	}

	entries := make([]Entry, 0, len(colors))
	for i, c := range colors {
		center := core.NewPoint(float64(i)*1.5-3.0, 0, -4-float64(i)*1.5)
		entries = append(entries, Entry{
			Width:   640,
			Height:  360,
			FOV:     75.0,
			Element: geometry.NewSphere(center, 0.6, material.NewLambertian(c, 0.6)),
			Light:   sun,
		})
	}

	s, err := Composite(entries)
	if err != nil {
		// Entries above are built with identical dimensions
		panic(err)
	}
	return s
}
