package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropTile copies the tile's region out of img into a new image.
//
// The tile coordinates are taken relative to img.Bounds().Min, so images whose
// bounds do not start at (0,0) are handled. The returned image always has its
// origin at (0,0) and owns its pixels; later writes to img do not affect it.
func CropTile(img image.Image, tile Tile) (*image.NRGBA, error) {
	bounds := img.Bounds()
	rect := tile.Rect().Add(bounds.Min)

	// Validate coordinates
	if tile.Width <= 0 || tile.Height <= 0 {
		return nil, fmt.Errorf("invalid tile (%d,%d): size %dx%d must be positive",
			tile.Col, tile.Row, tile.Width, tile.Height)
	}
	if !rect.In(bounds) {
		return nil, fmt.Errorf("tile (%d,%d) region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			tile.Col, tile.Row, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, rect), nil
}
