/*
Package catalog implements a library of named pictures stored in a SQLite
database.

Pictures are stored PNG encoded alongside the SHA-1 of the encoding so
re-adding an unchanged picture is a no-op. A Catalog can be used as a
collage.Loader so tiles can be replaced by name rather than by file path.
*/
package catalog

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/bodgit/collage/picture"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3" // register driver
)

// ErrNotFound is returned when no picture exists with the requested name.
var ErrNotFound = errors.New("catalog: picture not found")

type Catalog struct {
	db     *sql.DB
	logger *log.Logger
}

// New opens, creating if necessary, the catalog stored in file. A nil
// logger discards all output.
func New(file string, logger *log.Logger) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Catalog{
		db:     db,
		logger: logger,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add stores p under name, replacing any existing picture with that name.
func (c *Catalog) Add(name string, p *picture.Picture) error {
	b := new(bytes.Buffer)
	h := sha1.New()
	if err := p.Encode(io.MultiWriter(b, h), picture.PNG); err != nil {
		return err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	var existing string
	switch err := c.db.QueryRow("SELECT sha1 FROM image WHERE name = ?", name).Scan(&existing); err {
	case sql.ErrNoRows:
	case nil:
		if existing == sha {
			c.logger.Debugf("%q is unchanged", name)
			return nil
		}
	default:
		return err
	}

	if _, err := c.db.Exec("INSERT OR REPLACE INTO image (name, sha1, data) VALUES (?, ?, ?)", name, sha, b.Bytes()); err != nil {
		return err
	}
	c.logger.Debugf("Stored %q (%dx%d, %s)", name, p.Width(), p.Height(), sha)

	return nil
}

// Load returns the picture stored under name. It implements the
// collage.Loader interface.
func (c *Catalog) Load(name string) (*picture.Picture, error) {
	var data []byte
	switch err := c.db.QueryRow("SELECT data FROM image WHERE name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case nil:
	default:
		return nil, err
	}

	m, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return picture.FromImage(m)
}

// Names returns the names of every stored picture in sorted order.
func (c *Catalog) Names() ([]string, error) {
	rows, err := c.db.Query("SELECT name FROM image ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
