package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/collage/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
	})
	return c
}

func fill(t *testing.T, width, height int, col picture.Color) *picture.Picture {
	t.Helper()
	p, err := picture.New(width, height)
	require.NoError(t, err)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			p.Set(x, y, col)
		}
	}
	return p
}

func TestAddLoad(t *testing.T) {
	c := newCatalog(t)

	p := fill(t, 3, 2, picture.RGB(10, 20, 30))
	p.Set(2, 1, picture.RGB(1, 1, 1))
	require.NoError(t, c.Add("shell", p))

	got, err := c.Load("shell")
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

func TestAddReplaces(t *testing.T) {
	c := newCatalog(t)

	require.NoError(t, c.Add("tile", fill(t, 2, 2, picture.RGB(255, 0, 0))))
	require.NoError(t, c.Add("tile", fill(t, 2, 2, picture.RGB(255, 0, 0))))
	require.NoError(t, c.Add("tile", fill(t, 4, 4, picture.RGB(0, 255, 0))))

	got, err := c.Load("tile")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Width())
	assert.Equal(t, picture.RGB(0, 255, 0), got.Get(3, 3))

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"tile"}, names)
}

func TestLoadNotFound(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Load("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNames(t *testing.T) {
	c := newCatalog(t)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"b", "c", "a"} {
		require.NoError(t, c.Add(name, fill(t, 1, 1, picture.RGB(0, 0, 0))))
	}

	names, err = c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0755))

	red := fill(t, 5, 5, picture.RGB(255, 0, 0))
	blue := fill(t, 6, 4, picture.RGB(0, 0, 255))

	require.NoError(t, red.Save(filepath.Join(dir, "red.png")))
	require.NoError(t, blue.Save(filepath.Join(dir, "sub", "blue.bmp")))
	require.NoError(t, red.Save(filepath.Join(dir, ".hidden", "secret.png")))
	require.NoError(t, red.Save(filepath.Join(dir, ".dotfile.png")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644))

	c := newCatalog(t)

	n, err := c.Import(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"blue", "red"}, names)

	got, err := c.Load("blue")
	require.NoError(t, err)
	assert.True(t, blue.Equal(got))
}

func TestImportMissingDirectory(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Import(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestImportCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, fill(t, 2, 2, picture.RGB(1, 2, 3)).Save(filepath.Join(dir, name)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newCatalog(t)
	_, err := c.Import(ctx, dir)
	assert.Error(t, err)
}
