package picture

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

// Format is an image file format.
type Format = imaging.Format

// Supported encoding formats.
const (
	JPEG = imaging.JPEG
	PNG  = imaging.PNG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// EncodeOption tweaks how a Picture is encoded.
type EncodeOption = imaging.EncodeOption

// JPEGQuality sets the JPEG quality, from 1 to 100.
func JPEGQuality(quality int) EncodeOption {
	return imaging.JPEGQuality(quality)
}

const maxGIFColors = 256

// FormatFromFilename returns the format implied by the extension of path.
func FormatFromFilename(path string) (Format, error) {
	return imaging.FormatFromFilename(path)
}

// Reduce m to at most n colors using median cut, mapping each pixel to its
// nearest palette entry
func quantizeImage(m image.Image, n int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Encode writes p to w in the given format.
func (p *Picture) Encode(w io.Writer, f Format, opts ...EncodeOption) error {
	if f == GIF {
		// The stock encoder falls back to the Plan 9 palette
		return gif.Encode(w, quantizeImage(p.m, maxGIFColors), nil)
	}
	return imaging.Encode(w, p.m, f, opts...)
}

// Save writes p to the file at path, choosing the format from its
// extension.
func (p *Picture) Save(path string, opts ...EncodeOption) (err error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return p.Encode(f, format, opts...)
}
