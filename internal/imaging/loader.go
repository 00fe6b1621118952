package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images to avoid redundant
// disk reads.
//
// Images are keyed by the exact path string passed to Load. Cached images stay
// in memory until removed with Evict or Clear.
//
//	cache := imaging.NewImageCache()
//	grid, err := cache.LoadGrid("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := grid.ScanForMatches()
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache, ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk only when it
// is not already cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     those understood by disintegration/imaging: PNG, JPEG, GIF, BMP and TIFF.
//
// Returns:
//   - image.Image: The decoded image. EXIF orientation is not applied, so row 0
//     is always the first row stored in the file.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached under the exact path string provided. A file rewritten
// on disk keeps its old cached pixels until the path is evicted.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadGrid loads the image at path through the cache and converts it to a
// Grid.
func (c *ImageCache) LoadGrid(path string) (*Grid, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return GridFromImage(img), nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image cached under path. Unknown paths are ignored.
//
// Callers that overwrite a file must evict its path so that the next Load
// reads the new contents from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// LoadGrid decodes the image file at path into a Grid without caching it.
//
// Parameters:
//   - path: Path to the image file.
//
// Returns:
//   - *Grid: One Sample per pixel, in file row order. Alpha is dropped.
//   - error: Non-nil if the file cannot be opened or decoded.
func LoadGrid(path string) (*Grid, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return GridFromImage(img), nil
}

// GridFromImage converts a decoded image to a Grid.
//
// Channels are read non-premultiplied so that every 8-bit value survives
// exactly; alpha and any other extra channel are dropped. The image bounds are
// normalized so that its top-left pixel becomes (0, 0).
func GridFromImage(img image.Image) *Grid {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return &Grid{}
	}

	pix := make([]Sample, width*height)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			i := x * 4
			pix[y*width+x] = Sample{r: row[i], g: row[i+1], b: row[i+2]}
		}
	}

	return &Grid{height: height, width: width, pix: pix}
}

func decodeFile(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format inferred from the file extension: "png", "jpeg",
	// "gif", "bmp", "tiff" or "unknown".
	Format string `json:"format"`

	// HasAlpha reports whether any pixel is less than fully opaque. Alpha is
	// always discarded when the image is converted to a Grid.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Dimensions, format, alpha presence and file size.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Format Detection
//
// The format is determined by file extension through imaging.FormatFromFilename:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif", ".bmp", ".tif", ".tiff" -> "gif", "bmp", "tiff"
//   - Other extensions -> "unknown"
//
// # Alpha Detection
//
// The PNG decoder returns *image.RGBA even for files without an alpha channel,
// so the image type alone says nothing. HasAlpha is computed from the pixels
// via the Opaque method every standard image type provides.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	hasAlpha := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image loaded through the cache.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *DimensionsResult: Width and height in pixels.
//   - error: Non-nil if the image cannot be loaded.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
