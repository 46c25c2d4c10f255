package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// MeanColor returns the average colour of every pixel in img.
//
// Channels are averaged in sRGB space after alpha is discarded. An empty image
// yields black.
func MeanColor(img image.Image) colorful.Color {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n <= 0 {
		return colorful.Color{}
	}

	var sumR, sumG, sumB uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
		}
	}

	count := float64(n) * 255
	return colorful.Color{
		R: float64(sumR) / count,
		G: float64(sumG) / count,
		B: float64(sumB) / count,
	}
}

// MeanColorHex is MeanColor formatted as "#rrggbb".
func MeanColorHex(img image.Image) string {
	return MeanColor(img).Hex()
}
