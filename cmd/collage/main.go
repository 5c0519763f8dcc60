package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bodgit/collage"
	"github.com/bodgit/collage/catalog"
	"github.com/bodgit/collage/internal/config"
	"github.com/bodgit/collage/picture"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const defaultConfig = "collage.toml"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.WarnLevel,
	})
	if c.Bool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Load the config file and let any explicitly set flags override it
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("catalog") {
		cfg.Catalog = c.String("catalog")
	}
	if c.IsSet("tile-size") {
		cfg.TileSize = c.Int("tile-size")
	}
	if c.IsSet("grid-size") {
		cfg.GridSize = c.Int("grid-size")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}

	return cfg, cfg.Validate()
}

func openCatalog(cfg config.Config, logger *log.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return nil, errors.New("no catalog configured")
	}
	return catalog.New(cfg.Catalog, logger)
}

var sizeFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "tile-size",
		Aliases: []string{"t"},
		Value:   collage.DefaultTileSize,
		Usage:   "pixels along each side of a tile",
	},
	&cli.IntFlag{
		Name:    "grid-size",
		Aliases: []string{"g"},
		Value:   collage.DefaultGridSize,
		Usage:   "tiles along each side of the collage",
	},
	&cli.IntFlag{
		Name:  "quality",
		Value: config.DefaultQuality,
		Usage: "JPEG output quality",
	},
}

func preview(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.NArg() != 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	m, err := collage.Open(c.Args().Get(0), cfg.TileSize, cfg.GridSize, collage.WithLogger(logger))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := m.Canvas().Save(c.Args().Get(1), picture.JPEGQuality(cfg.Quality)); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func makeCollage(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	// Parse everything up front so a typo doesn't waste a render
	var ops []operation
	for _, arg := range c.Args().Slice()[2:] {
		op, err := parseOperation(arg)
		if err != nil {
			return cli.Exit(err, 1)
		}
		ops = append(ops, op)
	}

	// The source is always a file, only replacement tiles come from the
	// catalog
	source, err := collage.Load(collage.FileLoader, c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}

	opts := []collage.Option{collage.WithLogger(logger)}
	if cfg.Catalog != "" {
		cat, err := openCatalog(cfg, logger)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer cat.Close()
		opts = append(opts, collage.WithLoader(cat))
	}

	m, err := collage.New(source, cfg.TileSize, cfg.GridSize, opts...)
	if err != nil {
		return cli.Exit(err, 1)
	}

	return render(m, ops, c.Args().Get(1), cfg)
}

func render(m *collage.Collage, ops []operation, output string, cfg config.Config) error {
	m.MakeCollage()

	for _, op := range ops {
		if err := op.apply(m); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if err := m.Canvas().Save(output, picture.JPEGQuality(cfg.Quality)); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func importPictures(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	cat, err := openCatalog(cfg, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer cat.Close()

	if _, err := cat.Import(context.Background(), c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func list(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	cat, err := openCatalog(cfg, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer cat.Close()

	names, err := cat.Names()
	if err != nil {
		return cli.Exit(err, 1)
	}

	for _, name := range names {
		fmt.Fprintln(c.App.Writer, name)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "collage"
	app.Usage = "Tiled collage builder"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"COLLAGE_CONFIG"},
			Value:   defaultConfig,
			Usage:   "path to configuration file",
		},
		&cli.StringFlag{
			Name:    "catalog",
			EnvVars: []string{"COLLAGE_CATALOG"},
			Usage:   "path to picture catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "preview",
			Usage:     "Scale a picture to the collage size",
			ArgsUsage: "SOURCE OUTPUT",
			Flags:     sizeFlags,
			Action:    preview,
		},
		{
			Name:  "make",
			Usage: "Make a collage and transform its tiles",
			Description: "Each OP is applied in order after the collage is made and is one of:\n\n" +
				"   colorize:CHANNEL:COL:ROW  keep only the red, green or blue channel\n" +
				"   grayscale:COL:ROW         convert the tile to gray\n" +
				"   replace:COL:ROW:NAME      replace the tile with another picture",
			ArgsUsage: "SOURCE OUTPUT [OP...]",
			Flags:     sizeFlags,
			Action:    makeCollage,
		},
		{
			Name:      "import",
			Usage:     "Import pictures into the catalog",
			ArgsUsage: "DIRECTORY",
			Action:    importPictures,
		},
		{
			Name:   "list",
			Usage:  "List pictures in the catalog",
			Action: list,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
