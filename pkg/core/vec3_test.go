package core

import (
	"math"
	"testing"
)

func TestVec3_NormalizeHasUnitLength(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"Axis aligned", NewVec3(0, 0, -5)},
		{"Diagonal", NewVec3(1, 1, 1)},
		{"Tiny", NewVec3(1e-7, -3e-7, 2e-7)},
		{"Large", NewVec3(1e8, 2e8, -3e8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1.0) > 1e-9 {
				t.Errorf("Expected unit length, got %v", length)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	result := Vec3{}.Normalize()
	if result != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", result)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %v", got)
	}
}

func TestPoint_Algebra(t *testing.T) {
	p := NewPoint(1, 1, 1)
	q := NewPoint(0, 2, -3)

	d := p.Subtract(q)
	if d != NewVec3(1, -1, 4) {
		t.Errorf("Expected displacement (1,-1,4), got %v", d)
	}
	if back := q.Add(d); back != p {
		t.Errorf("Expected q + (p - q) == p, got %v", back)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(0, 0, 0), NewVec3(0, 0, -2))

	if ray.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Expected normalized direction, got %v", ray.Direction)
	}
	if got := ray.At(5); got != NewPoint(0, 0, -5) {
		t.Errorf("Expected (0,0,-5), got %v", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN vector to be non-finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected Inf vector to be non-finite")
	}
}
