package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// oklchToColor converts OKLCH values to a linear color.
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToColor(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b
	lp, mp, sp = lp*lp*lp, mp*mp*mp, sp*sp*sp

	// LMS to linear RGB
	return core.NewColor(
		+4.0767416621*lp-3.3077115913*mp+0.2309699292*sp,
		-1.2684380046*lp+2.6097574011*mp-0.3413193965*sp,
		-0.0041960863*lp-0.7034186147*mp+1.7076147010*sp,
	).Clamp()
}

// NewSphereGridScene creates a gridSize x gridSize carpet of spheres on a ground
// plane in front of the camera. Hue varies left to right, chroma front to back.
func NewSphereGridScene(gridSize int) *Scene {
	s := &Scene{
		Width:  800,
		Height: 450,
		FOV:    70.0,
	}

	const (
		groundY   = -2.0
		halfWidth = 4.5  // Grid spans x in [-4.5, 4.5]
		nearZ     = -6.0 // Grid starts this far in front of the camera
		depth     = 9.0  // and extends this far back
	)

	s.AddElement(geometry.NewPlane(
		core.NewPoint(0, groundY, 0),
		core.NewVec3(0, -1, 0), // faces the camera above it
		material.NewLambertian(core.NewColor(0.5, 0.5, 0.5), 0.4),
	))

	spacing := 2 * halfWidth
	if gridSize > 1 {
		spacing /= float64(gridSize - 1)
	}
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			u, v := 0.0, 0.0
			if gridSize > 1 {
				u = float64(i) / float64(gridSize-1)
				v = float64(j) / float64(gridSize-1)
			}

			center := core.NewPoint(
				-halfWidth+u*2*halfWidth,
				groundY+radius, // Sphere rests on the ground
				nearZ-v*depth,
			)

			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToColor(lightness, minChroma+v*(maxChroma-minChroma), u*360.0)
			albedo := 0.4 + 0.2*float64((i+j)%3)

			s.AddElement(geometry.NewSphere(center, radius, material.NewLambertian(color, albedo)))
		}
	}

	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -2, -1), core.NewColor(1.0, 0.96, 0.9), 12.0))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(1, -0.5, -0.5), core.NewColor(0.4, 0.5, 0.8), 3.0))

	return s
}
