package material

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Color  core.Color // Base color
	Albedo float64    // Fraction of incident light reflected, conventionally in [0,1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(color core.Color, albedo float64) Lambertian {
	return Lambertian{Color: color, Albedo: albedo}
}

// Reflectance returns the normalized diffuse BRDF scale: albedo / π
func (l Lambertian) Reflectance() float64 {
	return l.Albedo / math.Pi
}
