package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "straight down onto the plane",
			rayOrigin:      core.NewVec3(0, 2, 0),
			rayDirection:   core.NewVec3(0, -1, 0),
			expectHit:      true,
			expectedT:      2.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "from below the normal is flipped toward the ray",
			rayOrigin:      core.NewVec3(0, -3, 0),
			rayDirection:   core.NewVec3(0, 1, 0),
			expectHit:      true,
			expectedT:      3.0,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:         "parallel ray misses",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			expectHit:    false,
		},
		{
			name:         "plane behind the ray",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			expectHit:    false,
		},
		{
			name:         "zero direction is a miss",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(0, 0, 0),
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := plane.Intersect(ray)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}
