package imaging

import (
	"fmt"
	"image"
	"image/jpeg"

	"github.com/anthonynsimon/bild/imgio"
)

// DefaultJPEGQuality matches the standard library's default JPEG quality.
const DefaultJPEGQuality = jpeg.DefaultQuality

// SaveJPEG encodes img as a JPEG file at path, replacing any existing file.
//
// Quality ranges from 1 to 100; values outside that range fall back to
// DefaultJPEGQuality. The format is always JPEG, whatever the extension of path.
func SaveJPEG(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imgio.Save(path, img, imgio.JPEGEncoder(quality)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
