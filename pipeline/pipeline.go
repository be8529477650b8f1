// Package pipeline runs the map asset steps: rasterizing the collision
// bitmap into a grid module, then flipping the Y axis of the map source.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-mapgen/config"
	"github.com/automoto/doomerang-mapgen/shared/coordflip"
	"github.com/automoto/doomerang-mapgen/shared/leveldata"
)

// Failure classes. Errors returned by Run wrap exactly one of these.
// ErrInputNotFound covers inputs that are missing or cannot be read.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInputNotFound = errors.New("input not found")
	ErrDecode        = errors.New("decode failure")
	ErrWrite         = errors.New("write failure")
)

// Run executes the enabled steps in order. The grid step, including its file
// write, completes before the flip step starts. The first failure aborts.
func Run(cfg *config.PipelineConfig, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !cfg.SkipGrid {
		if err := RasterizeStep(cfg, stdout); err != nil {
			return err
		}
	}

	if !cfg.SkipFlip {
		if err := FlipStep(cfg, stdout); err != nil {
			return err
		}
	}

	return nil
}

// RasterizeStep decodes the collision bitmap, builds the grid and overwrites
// the generated module.
func RasterizeStep(cfg *config.PipelineConfig, stdout io.Writer) error {
	img, err := loadImage(cfg.ImagePath)
	if err != nil {
		return err
	}

	grid := leveldata.Rasterize(img, cfg.GridSize, leveldata.Thresholds{
		Alpha: cfg.Walls.Alpha,
		Black: cfg.Walls.Black,
	})

	dims := leveldata.MapDims{Width: cfg.Map.Width, Height: cfg.Map.Height}
	if err := leveldata.WriteModuleFile(cfg.OutputPath, grid, dims); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.Printf("Collision grid %dx%d: %d walls, %d walkable", grid.Size, grid.Size, grid.Walls(), grid.Len()-grid.Walls())
	fmt.Fprintf(stdout, "Generated %s with %d cells.\n", filepath.Base(cfg.OutputPath), grid.Len())
	return nil
}

// FlipStep rewrites the coordinate file in place with every y: value flipped.
func FlipStep(cfg *config.PipelineConfig, stdout io.Writer) error {
	flipped, err := coordflip.FlipFile(cfg.CoordsPath, cfg.FlipAxis)
	if err != nil {
		if errors.Is(err, coordflip.ErrWrite) {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}

	log.Printf("Flipped %d y fields around %d", flipped, cfg.FlipAxis)
	fmt.Fprintf(stdout, "Updated %s with flipped Y coordinates.\n", filepath.Base(cfg.CoordsPath))
	return nil
}

// loadImage resolves imgPath against the filesystem root (absolute paths)
// or the working directory (relative paths).
func loadImage(imgPath string) (image.Image, error) {
	fsys, name, err := splitFS(imgPath)
	if err != nil {
		return nil, err
	}

	img, err := leveldata.LoadImage(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, nil
}

func splitFS(p string) (fs.FS, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: resolve %s: %w", ErrInputNotFound, p, err)
	}
	vol := filepath.VolumeName(abs)
	root := vol + string(filepath.Separator)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, "", fmt.Errorf("%w: resolve %s: %w", ErrInputNotFound, p, err)
	}
	return os.DirFS(root), filepath.ToSlash(rel), nil
}
