package leveldata

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(w, h, c)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoadImagePNG(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/dust2.png": {Data: encodePNG(t, 40, 30, color.NRGBA{R: 255, G: 255, B: 255, A: 49})},
	}

	img, err := LoadImage(fsys, "maps/dust2.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 40x30", b)
	}

	// Alpha must survive decoding unpremultiplied for the threshold to hold.
	grid := Rasterize(img, 200, defaultThresholds)
	if grid.Walls() != grid.Len() {
		t.Fatalf("alpha 49 image produced %d walls of %d", grid.Walls(), grid.Len())
	}
}

func TestLoadImageBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, solid(8, 8, black)); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	fsys := fstest.MapFS{"map.bmp": {Data: buf.Bytes()}}

	img, err := LoadImage(fsys, "map.bmp")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if grid := Rasterize(img, 200, defaultThresholds); grid.Walls() != 40000 {
		t.Fatalf("black bmp produced %d walls, want 40000", grid.Walls())
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(fstest.MapFS{}, "nope.png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadImageCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("definitely not an image")}}

	_, err := LoadImage(fsys, "bad.png")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("decode error reported as missing file: %v", err)
	}
}
