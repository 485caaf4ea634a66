package material

import (
	"math"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestLambertian_Reflectance(t *testing.T) {
	tests := []struct {
		name     string
		albedo   float64
		expected float64
	}{
		{"Full albedo", 1.0, 1.0 / math.Pi},
		{"Half albedo", 0.5, 0.5 / math.Pi},
		{"Black body", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := NewLambertian(core.NewColor(1, 1, 1), tt.albedo)
			if got := mat.Reflectance(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
