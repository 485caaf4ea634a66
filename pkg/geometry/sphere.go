package geometry

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point
	Radius float64
	Mat    material.Lambertian
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, mat material.Lambertian) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Intersect returns the nearer of the two roots of the ray/sphere quadratic.
// The ray direction must be normalized. When the ray starts inside the
// sphere the returned distance is negative.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)

	// Projection of l onto the ray and squared distance of closest approach
	adj := l.Dot(ray.Direction)
	d2 := l.Dot(l) - adj*adj

	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return 0, false
	}

	halfChord := math.Sqrt(radius2 - d2)
	t0 := adj - halfChord
	t1 := adj + halfChord

	return math.Min(t0, t1), true
}

// SurfaceNormal returns the outward normal at a point on the sphere
func (s *Sphere) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return hitPoint.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Lambertian {
	return s.Mat
}

func (s *Sphere) element() {}
