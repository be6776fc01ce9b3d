package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for the render driver
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// Renderer drives a full render: view setup once, then every pixel of
// the grid mapped to a color through the raytracer.
type Renderer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render produces the color buffer for the scene. The result is
// deterministic for a given scene regardless of worker count: each row
// is written to its own disjoint slice of the image, and the renderer
// keeps no state between calls.
//
// The context is checked between row submissions; a cancelled context
// aborts the render and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	// Surface scene defects before rendering starts instead of letting
	// NaN propagate into the buffer
	if err := r.scene.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	view := NewViewSetup(r.scene)
	grid := PixelGrid(r.scene.Width, r.scene.Height)
	img := image.NewRGBA(image.Rect(0, 0, r.scene.Width, r.scene.Height))

	pool := newWorkerPool(NewRaytracer(r.scene), r.config.NumWorkers, len(grid))
	pool.Start()

	r.logger.Printf("Rendering %dx%d pixels with %d workers...\n",
		r.scene.Width, r.scene.Height, pool.GetNumWorkers())

	submitted := 0
	cancelled := false
	for id, row := range grid {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
			pool.SubmitTask(rowTask{ID: id, Pixels: row, View: view, Img: img})
			submitted++
		}
		if cancelled {
			break
		}
	}

	// Wait for every submitted row before tearing the pool down
	for i := 0; i < submitted; i++ {
		if _, ok := pool.GetResult(); !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
	}
	pool.Stop()

	if cancelled {
		r.logger.Printf("Render cancelled after %d of %d rows\n", submitted, len(grid))
		return nil, RenderStats{}, ctx.Err()
	}

	stats := RenderStats{
		TotalPixels: r.scene.Width * r.scene.Height,
		Rows:        len(grid),
		Workers:     pool.GetNumWorkers(),
		Elapsed:     time.Since(start),
	}
	return img, stats, nil
}
