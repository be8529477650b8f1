package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeModule writes g as a generated TypeScript module exporting the map
// dimensions, the grid resolution and the flat row-major COLLISION_GRID.
func EncodeModule(w io.Writer, g *CollisionGrid, dims MapDims) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Auto-generated collision grid (%dx%d)\n", g.Size, g.Size)
	fmt.Fprintf(bw, "export const MAP_WIDTH = %d;\n", dims.Width)
	fmt.Fprintf(bw, "export const MAP_HEIGHT = %d;\n", dims.Height)
	fmt.Fprintf(bw, "export const GRID_SIZE = %d;\n", g.Size)
	bw.WriteString("// 0 = Walkable, 1 = Wall\n")
	bw.WriteString("export const COLLISION_GRID = [")
	for i, c := range g.Cells {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('0' + c)
	}
	bw.WriteString("];\n")

	return bw.Flush()
}

// WriteModuleFile overwrites outPath with the generated module for g,
// creating parent directories as needed.
func WriteModuleFile(outPath string, g *CollisionGrid, dims MapDims) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	if err := EncodeModule(f, g, dims); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}
	return nil
}
