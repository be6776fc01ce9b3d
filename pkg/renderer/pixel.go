package renderer

// Pixel is an integer raster coordinate in [0, width) × [0, height)
type Pixel struct {
	X, Y int
}

// PixelGrid enumerates every pixel of a width×height raster as
// row-major rows: result[y][x] == Pixel{x, y}. It is a pure function
// with no retained state, so the grid can be re-enumerated freely.
// Non-positive dimensions yield an empty grid.
func PixelGrid(width, height int) [][]Pixel {
	if width <= 0 || height <= 0 {
		return nil
	}

	rows := make([][]Pixel, height)
	for y := range rows {
		row := make([]Pixel, width)
		for x := range row {
			row[x] = Pixel{X: x, Y: y}
		}
		rows[y] = row
	}
	return rows
}
