package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec3
		b        Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross X is negative Z",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "parallel vectors give zero",
			a:        NewVec3(2, -4, 6),
			b:        NewVec3(1, -2, 3),
			expected: NewVec3(0, 0, 0),
		},
		{
			name:     "general case",
			a:        NewVec3(1, 2, 3),
			b:        NewVec3(4, 5, 6),
			expected: NewVec3(-3, 6, -3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "already unit",
			vector:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "scales to unit length",
			vector:   NewVec3(3, 0, 4),
			expected: NewVec3(0.6, 0, 0.8),
		},
		{
			name:     "zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_DotAndMultiplyVec(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %v", got)
	}

	expected := NewVec3(4, -10, 18)
	if got := a.MultiplyVec(b); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	expected := NewVec3(0, 0.5, 1)
	if got := v.Clamp(0, 1); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"at origin", 0, NewVec3(1, 0, 0)},
		{"halfway along unnormalized direction", 0.5, NewVec3(1, 1, 0)},
		{"past the direction's length", 2, NewVec3(1, 4, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ray.At(tt.t)
			if math.Abs(result.Subtract(tt.expected).Length()) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
