package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	Rows        int           // Number of raster rows rendered
	Workers     int           // Number of parallel workers used
	Elapsed     time.Duration // Wall-clock render time
}
