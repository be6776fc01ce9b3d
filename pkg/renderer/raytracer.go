package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// shadeEpsilon is the threshold below which a diffuse or specular
// coefficient contributes nothing.
const shadeEpsilon = 1e-6

// backgroundColor is returned for rays that hit nothing
var backgroundColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}

// Raytracer resolves rays against a scene and shades the hits
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// hitNearest scans every primitive and keeps the intersection with the
// smallest distance. The scan is a plain best-so-far reduction over the
// whole primitive list; primitives already reject non-positive and
// non-finite roots, so no distance filtering happens here.
func (rt *Raytracer) hitNearest(ray core.Ray) (*geometry.Intersection, bool) {
	var nearest *geometry.Intersection
	for _, p := range rt.scene.Primitives {
		hit, isHit := p.Intersect(ray)
		if !isHit {
			continue
		}
		if nearest == nil || hit.T < nearest.T {
			nearest = hit
		}
	}
	return nearest, nearest != nil
}

// Shade resolves a ray to a color: background on a miss, otherwise the
// Phong sum of ambient, diffuse and specular terms with hard shadows.
func (rt *Raytracer) Shade(ray core.Ray) color.RGBA {
	hit, isHit := rt.hitNearest(ray)
	if !isHit {
		return backgroundColor
	}

	point := ray.At(hit.T)
	normal := hit.Normal.Normalize()
	unitRay := ray.Direction.Normalize()
	mat := hit.Primitive.Material()

	diffuse := core.Vec3{}
	specular := core.Vec3{}

	for _, light := range rt.scene.Lights {
		shadowRay := core.NewRay(point, light.Position.Subtract(point))

		// Hard shadow test: any occluder along the shadow ray removes
		// this light entirely, including occluders beyond the light
		// itself. That matches the unbounded shadow rays this renderer
		// is specified to have, not a distance-clipped test.
		if _, occluded := rt.hitNearest(shadowRay); occluded {
			continue
		}

		toLight := shadowRay.Direction.Normalize()
		diffuseCoef := normal.Dot(toLight)
		if diffuseCoef > shadeEpsilon {
			diffuse = diffuse.Add(mat.Diffuse.Multiply(diffuseCoef).MultiplyVec(light.Color))
		}

		// Mirror the light direction about the normal and compare it to
		// the incoming ray for the specular highlight
		reflected := toLight.Subtract(normal.Multiply(2 * diffuseCoef))
		specularCoef := math.Abs(math.Pow(reflected.Dot(unitRay), mat.Shininess))
		if specularCoef > shadeEpsilon {
			specular = specular.Add(mat.Specular.Multiply(specularCoef).MultiplyVec(light.Color))
		}
	}

	ambient := rt.scene.Ambient.MultiplyVec(mat.Diffuse)
	total := diffuse.Add(specular).Add(ambient)

	return vec3ToColor(total)
}

// TracePixel maps a pixel through the view setup to a world-space ray
// and shades it
func (rt *Raytracer) TracePixel(view ViewSetup, p Pixel) color.RGBA {
	imagePoint := view.TopLeft.
		Add(view.Horizontal.Multiply(view.AspectRatio * float64(p.X))).
		Add(rt.scene.Up.Multiply(float64(p.Y)))

	ray := core.NewRay(rt.scene.Camera, imagePoint.Subtract(rt.scene.Camera))
	return rt.Shade(ray)
}

// vec3ToColor scales a linear color by 255, clamps each channel to
// [0, 255] and truncates to 8 bits.
func vec3ToColor(v core.Vec3) color.RGBA {
	scaled := v.Multiply(255).Clamp(0, 255)
	return color.RGBA{
		R: uint8(scaled.X),
		G: uint8(scaled.Y),
		B: uint8(scaled.Z),
		A: 255,
	}
}
