package leveldata

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes any registered bitmap format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// LoadImage opens and decodes imgPath. It takes an fs.FS so callers can pass
// os.DirFS for real files or an fstest.MapFS in tests.
func LoadImage(fsys fs.FS, imgPath string) (image.Image, error) {
	f, err := fsys.Open(imgPath)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", imgPath, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", imgPath, err)
	}
	return img, nil
}
