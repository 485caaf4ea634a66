package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// parallelEpsilon is the smallest normal·direction that still counts as facing the plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal.
// The normal points away from the side the plane is seen from.
type Plane struct {
	Origin core.Point // A point on the plane
	Normal core.Vec3  // Unit normal
	Mat    material.Lambertian
}

// NewPlane creates a new plane
func NewPlane(origin core.Point, normal core.Vec3, mat material.Lambertian) *Plane {
	return &Plane{
		Origin: origin,
		Normal: normal.Normalize(), // Ensure normal is normalized
		Mat:    mat,
	}
}

// Intersect tests if a ray hits the plane in front of its origin
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)

	// Parallel to the plane or travelling away from its visible side
	if denom <= parallelEpsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	distance := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denom
	if distance < 0 {
		return 0, false
	}
	return distance, true
}

// SurfaceNormal returns the normal facing the incoming ray side
func (p *Plane) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return p.Normal.Negate()
}

// Material returns the plane's material
func (p *Plane) Material() material.Lambertian {
	return p.Mat
}

func (p *Plane) element() {}
