package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// MapConfig contains the logical world dimensions the grid is mapped onto.
// These are independent of grid resolution.
type MapConfig struct {
	Width  int // world units
	Height int // world units
}

// WallConfig contains the pixel thresholds used to classify wall cells.
// A pixel is a wall if its alpha is below Alpha, or if all of its colour
// channels are below Black.
type WallConfig struct {
	Alpha int
	Black int
}

// PipelineConfig holds everything the map pipeline needs to run
type PipelineConfig struct {
	// Inputs
	ImagePath  string // collision bitmap
	CoordsPath string // map source whose y: fields are flipped in place

	// Outputs
	OutputPath string // generated collision grid module

	GridSize int // cells per side
	Map      MapConfig
	Walls    WallConfig
	FlipAxis int // y values become FlipAxis - y

	SkipGrid bool
	SkipFlip bool
}

// C is the global pipeline configuration
var C *PipelineConfig

func init() {
	C = Default()
}

// Default returns a fresh configuration carrying the dust2 map defaults.
func Default() *PipelineConfig {
	return &PipelineConfig{
		ImagePath:  "/tmp/file_attachments/image.png",
		CoordsPath: "src/lib/engine/maps/dust2.ts",
		OutputPath: "src/lib/engine/maps/dust2_collisions.ts",

		GridSize: 200, // 5x5 world units per cell
		Map: MapConfig{
			Width:  1000,
			Height: 1000,
		},
		Walls: WallConfig{
			Alpha: 50, // below this counts as empty space
			Black: 30, // tolerance for anti-aliasing noise
		},
		FlipAxis: 1000,
	}
}

// BindFlags registers command-line flags that override fields of c.
func (c *PipelineConfig) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ImagePath, "image", c.ImagePath, "Collision bitmap to rasterize")
	fs.StringVar(&c.OutputPath, "out", c.OutputPath, "Generated collision grid module")
	fs.StringVar(&c.CoordsPath, "coords", c.CoordsPath, "Map source file whose y: fields are flipped in place")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "Grid resolution (cells per side)")
	fs.IntVar(&c.Map.Width, "width", c.Map.Width, "Map width in world units")
	fs.IntVar(&c.Map.Height, "height", c.Map.Height, "Map height in world units")
	fs.IntVar(&c.Walls.Alpha, "alpha", c.Walls.Alpha, "Pixels with alpha below this are walls")
	fs.IntVar(&c.Walls.Black, "black", c.Walls.Black, "Pixels with every channel below this are walls")
	fs.IntVar(&c.FlipAxis, "axis", c.FlipAxis, "Y values are replaced with axis - y")
	fs.BoolVar(&c.SkipGrid, "skip-grid", c.SkipGrid, "Skip collision grid generation")
	fs.BoolVar(&c.SkipFlip, "skip-flip", c.SkipFlip, "Skip flipping y coordinates")
}

// Validate reports every problem with c at once.
func (c *PipelineConfig) Validate() error {
	var errs []error

	if !c.SkipGrid {
		if strings.TrimSpace(c.ImagePath) == "" {
			errs = append(errs, errors.New("image path is required"))
		}
		if strings.TrimSpace(c.OutputPath) == "" {
			errs = append(errs, errors.New("output path is required"))
		}
		if c.GridSize <= 0 {
			errs = append(errs, fmt.Errorf("grid size must be positive, got %d", c.GridSize))
		}
		if c.Map.Width <= 0 || c.Map.Height <= 0 {
			errs = append(errs, fmt.Errorf("map dimensions must be positive, got %dx%d", c.Map.Width, c.Map.Height))
		}
		// 256 is allowed so that every pixel can be forced to a wall
		if c.Walls.Alpha < 0 || c.Walls.Alpha > 256 {
			errs = append(errs, fmt.Errorf("alpha threshold %d out of range 0..256", c.Walls.Alpha))
		}
		if c.Walls.Black < 0 || c.Walls.Black > 256 {
			errs = append(errs, fmt.Errorf("black threshold %d out of range 0..256", c.Walls.Black))
		}
	}

	if !c.SkipFlip && strings.TrimSpace(c.CoordsPath) == "" {
		errs = append(errs, errors.New("coords path is required"))
	}

	return errors.Join(errs...)
}
