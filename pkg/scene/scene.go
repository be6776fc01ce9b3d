package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Light is a point light source
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3) Light {
	return Light{Position: position, Color: color}
}

// Scene contains all the elements needed for rendering.
// It is read-only for the whole render: the renderer never mutates it.
type Scene struct {
	Width      int       // Output width in pixels
	Height     int       // Output height in pixels
	Fov        float64   // Field of view in degrees, (0, 180)
	Camera     core.Vec3 // Camera position
	View       core.Vec3 // View direction
	Up         core.Vec3 // Up vector, must not be parallel to View
	Ambient    core.Vec3 // Ambient color
	Primitives []geometry.Primitive
	Lights     []Light
}

// DegenerateSceneError reports a scene that cannot produce a defined image
type DegenerateSceneError struct {
	Reason string
}

func (e *DegenerateSceneError) Error() string {
	return fmt.Sprintf("degenerate scene: %s", e.Reason)
}

// Validate checks the scene invariants that would otherwise surface as
// NaN pixels mid-render. It returns a *DegenerateSceneError naming the
// first defect found, or nil for a renderable scene.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return &DegenerateSceneError{Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", s.Width, s.Height)}
	}
	if s.Fov <= 0 || s.Fov >= 180 {
		return &DegenerateSceneError{Reason: fmt.Sprintf("fov must be in (0, 180) degrees, got %g", s.Fov)}
	}
	if s.View.LengthSquared() == 0 {
		return &DegenerateSceneError{Reason: "view direction is the zero vector"}
	}
	if s.Up.LengthSquared() == 0 {
		return &DegenerateSceneError{Reason: "up vector is the zero vector"}
	}
	if s.View.Cross(s.Up).LengthSquared() == 0 {
		return &DegenerateSceneError{Reason: "view and up vectors are parallel"}
	}
	return nil
}
