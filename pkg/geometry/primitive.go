package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// hitEpsilon is the minimum accepted intersection distance. Rejecting
// roots below it keeps a ray that starts on a surface (a shadow ray)
// from reporting its own t≈0 root.
const hitEpsilon = 1e-7

// Intersection records where a ray hit a primitive.
// T is the distance along the ray in units of the direction's length.
// Normal is the surface normal direction at the hit point; it is not
// required to be unit length.
type Intersection struct {
	T         float64
	Normal    core.Vec3
	Primitive Primitive
}

// Primitive is a shape that can be intersected by rays.
// Intersect returns the nearest intersection with t > 0, or false when
// the ray misses. Negative and non-finite roots must be rejected here;
// callers trust the sign of T. A zero-length ray direction is a miss,
// never a fault.
type Primitive interface {
	Intersect(ray core.Ray) (*Intersection, bool)
	Material() material.Material
}
