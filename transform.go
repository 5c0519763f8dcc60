package collage

import (
	"fmt"

	"github.com/bodgit/collage/picture"
)

// Channel is one of the red, green or blue color channels.
type Channel int

// Color channels.
const (
	NoChannel Channel = iota
	Red
	Green
	Blue
)

var channelNames = map[string]Channel{
	"red":   Red,
	"r":     Red,
	"green": Green,
	"g":     Green,
	"blue":  Blue,
	"b":     Blue,
}

// ParseChannel maps a channel name, either in full or as its initial, to a
// Channel. Unknown names return NoChannel and false.
func ParseChannel(s string) (Channel, bool) {
	ch, ok := channelNames[s]
	return ch, ok
}

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

func (ch Channel) isolate(c picture.Color) picture.Color {
	switch ch {
	case Red:
		return picture.RGB(c.R(), 0, 0)
	case Green:
		return picture.RGB(0, c.G(), 0)
	case Blue:
		return picture.RGB(0, 0, c.B())
	default:
		return c
	}
}

// Return the canvas offset of tile (col, row)
func (c *Collage) tileOffset(col, row int) (int, int, error) {
	if col < 0 || col >= c.gridSize || row < 0 || row >= c.gridSize {
		return 0, 0, fmt.Errorf("%w: (%d, %d) not within %dx%d grid", ErrInvalidCoordinate, col, row, c.gridSize, c.gridSize)
	}
	return col * c.tileSize, row * c.tileSize, nil
}

// Replace every pixel in tile (col, row) with f applied to it
func (c *Collage) mapTile(col, row int, f func(picture.Color) picture.Color) error {
	xOffset, yOffset, err := c.tileOffset(col, row)
	if err != nil {
		return err
	}

	for x := 0; x < c.tileSize; x++ {
		for y := 0; y < c.tileSize; y++ {
			c.canvas.Set(x+xOffset, y+yOffset, f(c.canvas.Get(x+xOffset, y+yOffset)))
		}
	}

	return nil
}

// ColorizeTile keeps only channel ch of every pixel in tile (col, row),
// zeroing the other two. NoChannel leaves the tile alone.
func (c *Collage) ColorizeTile(ch Channel, col, row int) error {
	if _, _, err := c.tileOffset(col, row); err != nil {
		return err
	}
	if ch == NoChannel {
		return nil
	}
	return c.mapTile(col, row, ch.isolate)
}

// ColorizeTileNamed is ColorizeTile with the channel given by name as
// accepted by ParseChannel. Unrecognised names are ignored.
func (c *Collage) ColorizeTileNamed(name string, col, row int) error {
	ch, ok := ParseChannel(name)
	if !ok {
		c.logger.Debugf("Ignoring unknown channel %q", name)
	}
	return c.ColorizeTile(ch, col, row)
}

// GrayscaleTile converts every pixel in tile (col, row) to gray.
func (c *Collage) GrayscaleTile(col, row int) error {
	return c.mapTile(col, row, ToGray)
}

// ReplaceTile loads the named picture, scales it to a single tile and
// copies it over tile (col, row). The canvas is left untouched if the
// picture can't be loaded.
func (c *Collage) ReplaceTile(name string, col, row int) error {
	xOffset, yOffset, err := c.tileOffset(col, row)
	if err != nil {
		return err
	}

	shell, err := c.load(name)
	if err != nil {
		return err
	}
	c.logger.Debugf("Replacing tile (%d, %d) with %q", col, row, name)

	tile, _ := picture.New(c.tileSize, c.tileSize)
	Scale(shell, tile)

	for x := 0; x < c.tileSize; x++ {
		for y := 0; y < c.tileSize; y++ {
			c.canvas.Set(x+xOffset, y+yOffset, tile.Get(x, y))
		}
	}

	return nil
}
