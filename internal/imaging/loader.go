package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecode marks failures to read or decode the source image.
var ErrDecode = errors.New("failed to load image")

// Load opens and decodes the image at path.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The decoded pixels
// are returned as stored in the file; EXIF orientation is not applied.
//
// # Errors
//
// Every failure wraps ErrDecode together with the underlying cause, so callers
// can still match errors such as fs.ErrNotExist with errors.Is.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Stat reads only the header of the image at path.
//
// It is much cheaper than Load for large images and is used for logging before
// the full decode.
func Stat(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
