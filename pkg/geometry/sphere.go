package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		// Degenerate direction, treat as a miss
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < hitEpsilon {
		root = (-halfB + sqrtD) / a
		if root < hitEpsilon {
			return nil, false
		}
	}
	if math.IsInf(root, 0) || math.IsNaN(root) {
		return nil, false
	}

	// Outward normal, from center to hit point
	normal := ray.At(root).Subtract(s.Center)

	return &Intersection{
		T:         root,
		Normal:    normal,
		Primitive: s,
	}, true
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.Mat
}
