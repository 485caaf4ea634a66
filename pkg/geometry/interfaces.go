package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Element is a renderable surface. The set of implementations is closed:
// only *Sphere and *Plane satisfy it. A new primitive must implement every
// method and be added to Kind.
type Element interface {
	// Intersect returns the distance along the ray to the surface, if any
	Intersect(ray core.Ray) (float64, bool)
	// SurfaceNormal returns the unit normal facing the incoming ray side at a point on the surface
	SurfaceNormal(hitPoint core.Point) core.Vec3
	// Material returns the element's diffuse material
	Material() material.Lambertian

	element()
}

// Kind returns the primitive name of an element
func Kind(e Element) string {
	switch e.(type) {
	case *Sphere:
		return "sphere"
	case *Plane:
		return "plane"
	default:
		panic("geometry: unknown element type")
	}
}
