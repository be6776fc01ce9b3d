package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM serializes an image as a plain-text P3 PPM: header, then one
// line per raster row of space-separated decimal RGB triples, top row
// first.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d ", c.R, c.G, c.B)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
