package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (normalized at construction)
	Mat    material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (*Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane (or zero direction)
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < hitEpsilon || math.IsInf(t, 0) || math.IsNaN(t) {
		return nil, false
	}

	// Face the normal against the incoming ray
	normal := p.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}

	return &Intersection{
		T:         t,
		Normal:    normal,
		Primitive: p,
	}, true
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.Mat
}
