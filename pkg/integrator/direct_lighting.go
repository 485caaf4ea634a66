package integrator

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// DirectLighting shades surfaces with the Lambertian model using only the
// light arriving straight from each light source. There are no secondary
// rays, so occluders do not cast shadows.
type DirectLighting struct{}

// NewDirectLighting creates a new direct lighting integrator
func NewDirectLighting() *DirectLighting {
	return &DirectLighting{}
}

// Shade returns the clamped diffuse color of a surface point lit by every light in lightList
func (dl *DirectLighting) Shade(normal core.Vec3, mat material.Lambertian, lightList []lights.DirectionalLight, hitPoint core.Point) core.Color {
	reflected := mat.Reflectance()
	result := core.Black

	for _, light := range lightList {
		// Cosine term, no contribution from lights behind the surface
		power := math.Max(0, normal.Dot(light.DirectionToLight())) * light.Intensity
		if power == 0 {
			continue
		}

		contribution := mat.Color.Multiply(light.Color).Scale(power * reflected)
		result = result.Add(contribution)
	}

	return result.Clamp()
}
