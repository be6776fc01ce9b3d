package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material describes Phong surface properties for a primitive.
// All fields are read-only once the material is attached to a shape.
type Material struct {
	Diffuse   core.Vec3 // Diffuse reflectance per channel
	Specular  core.Vec3 // Specular reflectance per channel
	Shininess float64   // Phong exponent for the specular highlight
}

// NewMaterial creates a new material
func NewMaterial(diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Matte creates a material with no specular highlight
func Matte(diffuse core.Vec3) Material {
	return Material{Diffuse: diffuse, Shininess: 1}
}
