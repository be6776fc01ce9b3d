package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        material.Material
	normal     core.Vec3 // Cached geometric normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:  v0,
		V1:  v1,
		V2:  v2,
		Mat: mat,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (*Intersection, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane (or zero direction)
	if math.Abs(a) < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	root := f * edge2.Dot(q)
	if root < hitEpsilon || math.IsInf(root, 0) || math.IsNaN(root) {
		return nil, false
	}

	// Face the cached normal against the incoming ray
	normal := t.normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return &Intersection{
		T:         root,
		Normal:    normal,
		Primitive: t,
	}, true
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.Mat
}
