/*
Package picture implements the pixel grid the collage is built from.

A Picture is a width by height grid of opaque RGB pixels addressed by
(column, row) with (0, 0) in the upper left corner. Pictures can be decoded
from and encoded to the usual image file formats; PNG, JPEG, GIF, BMP and
TIFF are supported for both, WebP for decoding only.
*/
package picture

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrBadDimensions is returned when allocating a Picture with a
// non-positive width or height.
var ErrBadDimensions = errors.New("picture: invalid dimensions")

// Picture is a mutable grid of RGB pixels.
type Picture struct {
	m *image.RGBA
}

// New returns a width by height Picture where every pixel is black.
func New(width, height int) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)
	return &Picture{m: m}, nil
}

// FromImage returns a copy of m as a Picture. Any transparency is dropped
// and the top-left corner of m becomes (0, 0).
func FromImage(m image.Image) (*Picture, error) {
	b := m.Bounds()
	p, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(p.m, p.m.Bounds(), m, b.Min, draw.Over)
	return p, nil
}

// Open decodes the image file at path, honouring any EXIF orientation.
func Open(path string) (*Picture, error) {
	m, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return FromImage(m)
}

func (p *Picture) Width() int {
	return p.m.Rect.Dx()
}

func (p *Picture) Height() int {
	return p.m.Rect.Dy()
}

// Get returns the color of the pixel at (col, row).
func (p *Picture) Get(col, row int) Color {
	i := p.m.PixOffset(col, row)
	s := p.m.Pix[i : i+3 : i+3]
	return Color{s[0], s[1], s[2]}
}

// Set changes the color of the pixel at (col, row).
func (p *Picture) Set(col, row int, c Color) {
	i := p.m.PixOffset(col, row)
	s := p.m.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.r, c.g, c.b, 0xff
}

// Image returns the underlying image. It shares pixels with p.
func (p *Picture) Image() image.Image {
	return p.m
}

// Clone returns a deep copy of p.
func (p *Picture) Clone() *Picture {
	m := image.NewRGBA(p.m.Rect)
	copy(m.Pix, p.m.Pix)
	return &Picture{m: m}
}

// Equal reports whether p and o have the same dimensions and pixels.
func (p *Picture) Equal(o *Picture) bool {
	if p.m.Rect != o.m.Rect {
		return false
	}
	for i := range p.m.Pix {
		if p.m.Pix[i] != o.m.Pix[i] {
			return false
		}
	}
	return true
}
