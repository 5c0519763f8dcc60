package collage

import (
	"math"

	"github.com/bodgit/collage/picture"
)

// NTSC luma weights
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Intensity returns the NTSC luminance of c, between 0 and 255. Shades of
// gray return their exact level.
func Intensity(c picture.Color) float64 {
	r, g, b := c.R(), c.G(), c.B()
	if r == g && r == b {
		return float64(r)
	}
	return lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b)
}

// ToGray returns the shade of gray with the same luminance as c.
func ToGray(c picture.Color) picture.Color {
	y := grayLevel(Intensity(c))
	return picture.RGB(y, y, y)
}

// Round half away from zero
func grayLevel(y float64) uint8 {
	return uint8(math.Round(y))
}
