package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

var grey = material.NewLambertian(core.NewColor(0.5, 0.5, 0.5), 0.18)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, -5), 1.0, grey)

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{
			name:      "through center returns entry point",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVec3(0, 0, -1),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "tangent ray has a single root",
			origin:    core.NewPoint(1, 0, 0),
			direction: core.NewVec3(0, 0, -1),
			expectHit: true,
			expectedT: 5.0,
		},
		{
			name:      "closest approach beyond radius misses",
			origin:    core.NewPoint(2, 0, 0),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "origin inside returns negative nearer root",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVec3(0, 0, -1),
			expectHit: true,
			expectedT: -1.0,
		},
		{
			name:      "oblique ray from offset origin",
			origin:    core.NewPoint(0, 3, -5),
			direction: core.NewVec3(0, -1, 0),
			expectHit: true,
			expectedT: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			dist, isHit := sphere.Intersect(ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got hit=%v (t=%f)", tt.expectHit, isHit, dist)
			}
			if tt.expectHit && math.Abs(dist-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestSphere_SurfaceNormal(t *testing.T) {
	sphere := NewSphere(core.NewPoint(1, 2, 3), 2.0, grey)

	normal := sphere.SurfaceNormal(core.NewPoint(1, 4, 3))
	expected := core.NewVec3(0, 1, 0)
	if normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
	if math.Abs(normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", normal.Length())
	}
}

func TestSphere_Material(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1.0, grey)
	if sphere.Material() != grey {
		t.Errorf("Expected material %v, got %v", grey, sphere.Material())
	}
}
