/*
Package collage builds a tiled collage from a source picture.

The canvas is a square grid of gridSize by gridSize tiles, each tile being
tileSize by tileSize pixels. Construction fills the canvas with the source
scaled to the full canvas as a preview; MakeCollage then replaces it with the
source scaled to a single tile and repeated across the grid. Individual tiles
can afterwards be colorized, converted to grayscale or replaced with another
picture.
*/
package collage

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/bodgit/collage/picture"
	"github.com/charmbracelet/log"
)

// Default dimensions used when the caller has no preference.
const (
	DefaultTileSize = 150
	DefaultGridSize = 4

	// MaxCanvasSide bounds tileSize*gridSize so the canvas stays
	// allocatable.
	MaxCanvasSide = 1 << 14
)

var errNoPicture = errors.New("collage: no picture")

// Collage holds a source picture and the canvas the collage is drawn on.
// It is not safe for concurrent use.
type Collage struct {
	source   *picture.Picture
	canvas   *picture.Picture
	tileSize int
	gridSize int

	loader Loader
	logger *log.Logger
}

// Option configures a Collage.
type Option func(*Collage)

// WithLogger sets the logger used for debug output. A nil logger is
// ignored.
func WithLogger(logger *log.Logger) Option {
	return func(c *Collage) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLoader sets how source and replacement pictures are loaded. The
// default is FileLoader.
func WithLoader(loader Loader) Option {
	return func(c *Collage) {
		c.loader = loader
	}
}

func newCollage(tileSize, gridSize int, opts ...Option) (*Collage, error) {
	if tileSize <= 0 || gridSize <= 0 || gridSize > math.MaxInt/tileSize || tileSize*gridSize > MaxCanvasSide {
		return nil, fmt.Errorf("%w: tile size %d, grid size %d", ErrInvalidDimension, tileSize, gridSize)
	}

	c := &Collage{
		tileSize: tileSize,
		gridSize: gridSize,
		loader:   FileLoader,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// New returns a Collage of gridSize by gridSize tiles of tileSize pixels
// built from source. The canvas starts out as source scaled to fit it.
func New(source *picture.Picture, tileSize, gridSize int, opts ...Option) (*Collage, error) {
	c, err := newCollage(tileSize, gridSize, opts...)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errNoPicture
	}
	if err := c.init(source); err != nil {
		return nil, err
	}
	return c, nil
}

// Open is like New but loads the source picture by name using the
// configured Loader. Failure to load is reported as a *LoadError.
func Open(name string, tileSize, gridSize int, opts ...Option) (*Collage, error) {
	c, err := newCollage(tileSize, gridSize, opts...)
	if err != nil {
		return nil, err
	}

	source, err := c.load(name)
	if err != nil {
		return nil, err
	}

	if err := c.init(source); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collage) init(source *picture.Picture) error {
	side := c.tileSize * c.gridSize

	canvas, err := picture.New(side, side)
	if err != nil {
		return err
	}

	c.source, c.canvas = source, canvas
	Scale(c.source, c.canvas)

	c.logger.Debugf("Created %dx%d canvas from %dx%d source", side, side, source.Width(), source.Height())

	return nil
}

// Load loads the named picture with l, reporting any failure as a
// *LoadError.
func Load(l Loader, name string) (*picture.Picture, error) {
	p, err := l.Load(name)
	if err == nil && p == nil {
		err = errNoPicture
	}
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return p, nil
}

func (c *Collage) load(name string) (*picture.Picture, error) {
	return Load(c.loader, name)
}

func (c *Collage) GridSize() int {
	return c.gridSize
}

func (c *Collage) TileSize() int {
	return c.tileSize
}

// Source returns the source picture. It must not be modified.
func (c *Collage) Source() *picture.Picture {
	return c.source
}

// Canvas returns the collage canvas.
func (c *Collage) Canvas() *picture.Picture {
	return c.canvas
}

// MakeCollage redraws the whole canvas as the source scaled to one tile and
// repeated across every tile of the grid.
func (c *Collage) MakeCollage() {
	// Tile dimensions were validated on construction
	tile, _ := picture.New(c.tileSize, c.tileSize)
	Scale(c.source, tile)

	for col := 0; col < c.canvas.Height(); col++ {
		for row := 0; row < c.canvas.Width(); row++ {
			c.canvas.Set(col, row, tile.Get(col%tile.Width(), row%tile.Height()))
		}
	}

	c.logger.Debugf("Made %dx%d collage", c.gridSize, c.gridSize)
}
