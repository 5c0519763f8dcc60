/*
Package config loads the optional TOML file holding defaults for the collage
command.

	tile_size = 150
	grid_size = 4
	catalog   = "/home/me/tiles.db"
	quality   = 90
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/bodgit/collage"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// Config holds the command defaults.
type Config struct {
	TileSize int    `toml:"tile_size"`
	GridSize int    `toml:"grid_size"`
	Catalog  string `toml:"catalog"`
	Quality  int    `toml:"quality"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		TileSize: collage.DefaultTileSize,
		GridSize: collage.DefaultGridSize,
		Quality:  DefaultQuality,
	}
}

// Load returns the defaults overlaid with any values set in the file at
// path. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("config: tile_size must be positive, got %d", c.TileSize)
	case c.GridSize <= 0:
		return fmt.Errorf("config: grid_size must be positive, got %d", c.GridSize)
	case c.Quality < 1 || c.Quality > 100:
		return fmt.Errorf("config: quality must be between 1 and 100, got %d", c.Quality)
	}
	return nil
}
