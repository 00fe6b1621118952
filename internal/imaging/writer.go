package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrEmptyGrid is returned when an empty grid is encoded; image formats
// cannot represent a 0x0 image.
var ErrEmptyGrid = errors.New("cannot encode an empty grid")

// ImageFromGrid renders g as an opaque image with one pixel per sample.
func ImageFromGrid(g *Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+g.width*4]
		for x := 0; x < g.width; x++ {
			s := g.at(y, x)
			i := x * 4
			row[i] = s.r
			row[i+1] = s.g
			row[i+2] = s.b
			row[i+3] = 0xff
		}
	}
	return img
}

// SaveGrid writes g to path. The image format is chosen from the file
// extension, and missing parent directories are created.
//
// Parameters:
//   - g: The grid to write. Must not be empty.
//   - path: Destination file. An existing file is overwritten.
//
// # Errors
//
//   - Returns ErrEmptyGrid if g has no samples
//   - Returns error if the parent directory cannot be created
//   - Returns error if the extension names no supported format or the file
//     cannot be written
func SaveGrid(g *Grid, path string) error {
	if g.Empty() {
		return ErrEmptyGrid
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(ImageFromGrid(g), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodeGridPNG returns g encoded as PNG.
func EncodeGridPNG(g *Grid) ([]byte, error) {
	if g.Empty() {
		return nil, ErrEmptyGrid
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, ImageFromGrid(g), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
