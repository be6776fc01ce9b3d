package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ViewSetup holds the camera-space geometry derived from a scene.
// It is computed once per render and shared read-only across pixels.
type ViewSetup struct {
	AspectRatio float64   // width / height
	ViewLength  float64   // distance from camera to the image plane, in pixel units
	Horizontal  core.Vec3 // normalized screen basis vector, view × up
	TopLeft     core.Vec3 // world-space anchor for pixel (0, 0)
}

// degToRad converts degrees to radians
func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// NewViewSetup derives the view geometry for a scene. It is a pure
// function: a degenerate view/up basis propagates NaN into the setup
// rather than failing here. Callers that want an error up front should
// run scene.Validate first, as Renderer.Render does.
func NewViewSetup(s *scene.Scene) ViewSetup {
	width := float64(s.Width)
	height := float64(s.Height)

	aspectRatio := width / height
	viewLength := height / math.Tan(degToRad(s.Fov)/2)
	horizontal := s.View.Cross(s.Up).Normalize()

	center := s.Camera.Add(s.View.Multiply(viewLength))
	topLeft := center.
		Add(horizontal.Multiply(width / -2)).
		Add(s.Up.Multiply(height / -2))

	return ViewSetup{
		AspectRatio: aspectRatio,
		ViewLength:  viewLength,
		Horizontal:  horizontal,
		TopLeft:     topLeft,
	}
}
