// Package leveldata turns collision bitmaps into collision grids and writes
// them out as generated map modules. It has no dependencies on ebitengine or
// any other graphics runtime: pure data only.
package leveldata

// Cell values stored in a CollisionGrid.
const (
	Walkable uint8 = 0
	Wall     uint8 = 1
)

// CollisionGrid is a square grid of wall/walkable cells stored row-major.
type CollisionGrid struct {
	Size  int
	Cells []uint8 // Cells[y*Size+x]
}

// NewCollisionGrid returns an all-walkable grid of size x size cells.
func NewCollisionGrid(size int) *CollisionGrid {
	if size < 0 {
		size = 0
	}
	return &CollisionGrid{
		Size:  size,
		Cells: make([]uint8, size*size),
	}
}

// At returns the cell at column x, row y.
func (g *CollisionGrid) At(x, y int) uint8 {
	return g.Cells[y*g.Size+x]
}

// Len returns the total number of cells.
func (g *CollisionGrid) Len() int {
	return len(g.Cells)
}

// Walls counts wall cells.
func (g *CollisionGrid) Walls() int {
	n := 0
	for _, c := range g.Cells {
		if c == Wall {
			n++
		}
	}
	return n
}

// MapDims are the logical world dimensions written alongside the grid.
type MapDims struct {
	Width  int
	Height int
}

// Thresholds decide which pixels become walls.
type Thresholds struct {
	Alpha int // alpha strictly below this is a wall
	Black int // every colour channel strictly below this is a wall
}
