package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Unit right triangle in the z=0 plane
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		expectHit    bool
		expectedT    float64
	}{
		{
			name:         "hit near the centroid",
			rayOrigin:    core.NewVec3(0.25, 0.25, 1),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    true,
			expectedT:    1.0,
		},
		{
			name:         "miss outside the edge",
			rayOrigin:    core.NewVec3(0.75, 0.75, 1),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:         "miss with parallel ray",
			rayOrigin:    core.NewVec3(0.25, 0.25, 1),
			rayDirection: core.NewVec3(1, 0, 0),
			expectHit:    false,
		},
		{
			name:         "triangle behind the ray",
			rayOrigin:    core.NewVec3(0.25, 0.25, -1),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := triangle.Intersect(ray)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_Intersect_NormalFacesRay(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)

	// Approach from +z and -z; the reported normal should oppose the ray
	for _, dir := range []core.Vec3{core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)} {
		origin := dir.Negate() // start one unit on the incoming side
		ray := core.NewRay(core.NewVec3(0.25, 0.25, origin.Z), dir)

		hit, isHit := triangle.Intersect(ray)
		if !isHit {
			t.Fatalf("Expected hit approaching from %v", dir)
		}
		if hit.Normal.Dot(dir) >= 0 {
			t.Errorf("Expected normal %v to oppose ray direction %v", hit.Normal, dir)
		}
	}
}
