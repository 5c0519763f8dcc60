package picture

import (
	"errors"
	"image/color"
)

// ErrColorRange is returned when a color component is outside [0, 255].
var ErrColorRange = errors.New("picture: color component out of range")

// Color is an opaque RGB color. The zero value is black.
type Color struct {
	r, g, b uint8
}

// RGB returns the Color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// NewColor returns the Color with the given components, rejecting any
// component that doesn't fit in eight bits.
func NewColor(r, g, b int) (Color, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 0xff {
			return Color{}, ErrColorRange
		}
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

func (c Color) R() uint8 { return c.r }

func (c Color) G() uint8 { return c.g }

func (c Color) B() uint8 { return c.b }

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.r, c.g, c.b, 0xff}.RGBA()
}
