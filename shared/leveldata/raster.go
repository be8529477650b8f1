package leveldata

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Resample scales img to exactly size x size with nearest-neighbour sampling.
// Each output pixel is a copy of one source pixel so wall edges stay hard.
func Resample(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.NearestNeighbor)
}

// Classify returns Wall for transparent or near-black pixels and Walkable otherwise.
func Classify(c color.NRGBA, t Thresholds) uint8 {
	// Transparent pixels are out of bounds
	if int(c.A) < t.Alpha {
		return Wall
	}
	if int(c.R) < t.Black && int(c.G) < t.Black && int(c.B) < t.Black {
		return Wall
	}
	return Walkable
}

// Rasterize builds a size x size collision grid from img, whatever its dimensions.
func Rasterize(img image.Image, size int, t Thresholds) *CollisionGrid {
	small := Resample(img, size)
	grid := NewCollisionGrid(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			grid.Cells[y*size+x] = Classify(small.NRGBAAt(x, y), t)
		}
	}

	return grid
}
