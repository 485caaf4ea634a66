package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Ground plane at y=-2 seen from above, normal points away from the viewer
	plane := NewPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, -1, 0), grey)

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, -1, 0))

	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(dist-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", dist)
	}

	hitPoint := ray.At(dist)
	if math.Abs(hitPoint.Y+2) > 1e-9 {
		t.Errorf("Expected hit point on plane, got %v", hitPoint)
	}
}

func TestPlane_Intersect_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, -1, 0), grey)

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(1, 0, 0))

	if dist, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected miss for parallel ray, but got hit at t=%f", dist)
	}
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	// The plane faces the ray, but the ray starts past it
	plane := NewPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, -1, 0), grey)

	ray := core.NewRay(core.NewPoint(0, -3, 0), core.NewVec3(0, -1, 0))

	if dist, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", dist)
	}
}

func TestPlane_Intersect_BackFacing(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, -1, 0), grey)

	// Travelling against the normal: the plane is not visible from this side
	ray := core.NewRay(core.NewPoint(0, -5, 0), core.NewVec3(0, 1, 0))

	if dist, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected miss for back-facing ray, but got hit at t=%f", dist)
	}
}

func TestPlane_SurfaceNormal(t *testing.T) {
	plane := NewPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, -3, 0), grey)

	if plane.Normal != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected stored normal to be normalized, got %v", plane.Normal)
	}

	normal := plane.SurfaceNormal(core.NewPoint(4, -2, 7))
	if normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected surface normal (0,1,0), got %v", normal)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		element  Element
		expected string
	}{
		{NewSphere(core.NewPoint(0, 0, 0), 1, grey), "sphere"},
		{NewPlane(core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0), grey), "plane"},
	}

	for _, tt := range tests {
		if got := Kind(tt.element); got != tt.expected {
			t.Errorf("Expected kind %q, got %q", tt.expected, got)
		}
	}
}
