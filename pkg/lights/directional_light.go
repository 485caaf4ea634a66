package lights

import "github.com/df07/go-direct-raytracer/pkg/core"

// DirectionalLight is a light infinitely far away, like the sun. Every
// point in the scene receives it from the same direction.
type DirectionalLight struct {
	Direction core.Vec3  // Direction the light travels
	Color     core.Color // Light color
	Intensity float64    // Scalar power
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) DirectionalLight {
	return DirectionalLight{
		Direction: direction,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionToLight returns the unit vector from a surface toward the light
func (l DirectionalLight) DirectionToLight() core.Vec3 {
	return l.Direction.Normalize().Negate()
}
