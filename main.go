package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'shadow'")
	width := flag.Int("width", 400, "Output width in pixels")
	height := flag.Int("height", 300, "Output height in pixels")
	output := flag.String("out", "", "Output file (.ppm or .png); empty writes P3 text to stdout")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres and a triangle over a ground plane, two lights")
		fmt.Println("  shadow  - Small sphere casting a hard shadow onto a backing sphere")
		fmt.Println()
		fmt.Println("Without -out the image is printed to stdout in plain-text P3 format.")
		return
	}

	// Progress goes to stderr so stdout stays a clean image stream
	logger := log.New(os.Stderr, "", 0)

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(selectedScene, renderer.Config{NumWorkers: *workers}, logger)
	img, stats, err := r.Render(context.Background())
	if err != nil {
		logger.Printf("Render error: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Rendered %d pixels (%d rows, %d workers) in %v\n",
		stats.TotalPixels, stats.Rows, stats.Workers, stats.Elapsed)

	if err := writeOutput(*output, img); err != nil {
		logger.Printf("Output error: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		logger.Printf("Render saved as %s\n", *output)
	}
}

// createScene builds a scene for the given type name
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width, height), nil
	case "shadow":
		return scene.NewShadowScene(width, height), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// writeOutput serializes the image to stdout or to a file, picking the
// format from the file extension
func writeOutput(path string, img *image.RGBA) error {
	if path == "" {
		return renderer.WritePPM(os.Stdout, img)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return renderer.WritePPM(file, img)
	case ".png":
		return png.Encode(file, img)
	default:
		return fmt.Errorf("unsupported file extension %q (supported: ppm, png)", filepath.Ext(path))
	}
}
