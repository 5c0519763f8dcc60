package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/collage/picture"
)

const (
	numWorkers  = 4
	maxFileSize = 32 << (10 * 2)
)

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

type entry struct {
	name    string
	picture *picture.Picture
}

func (c *Catalog) findImages(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if info.Size() > maxFileSize {
				c.logger.Debugf("Skipping %q, too large", file)
				return nil
			}

			if _, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]; !ok {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Catalog) decodeWorker(ctx context.Context, in <-chan string, out chan<- entry, wg *sync.WaitGroup) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer wg.Done()
		defer close(errc)
		for file := range in {
			p, err := picture.Open(file)
			if err != nil {
				c.logger.Warnf("Unable to decode %q: %v", file, err)
				continue
			}

			select {
			case out <- entry{name: strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)), picture: p}:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Import walks the directory tree at path and adds every picture it can
// decode, named after its file name without the extension. Files that fail
// to decode are logged and skipped. If more than one file maps to the same
// name, which one is kept is undefined. It returns the number of pictures
// decoded.
func (c *Catalog) Import(ctx context.Context, path string) (int, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := c.findImages(ctx, dir)
	errcList = append(errcList, errc)

	entries := make(chan entry)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		errcList = append(errcList, c.decodeWorker(ctx, files, entries, &wg))
	}
	go func() {
		wg.Wait()
		close(entries)
	}()

	// SQLite only allows one writer so inserts happen here
	var n int
	for e := range entries {
		if err := c.Add(e.name, e.picture); err != nil {
			cancelFunc()
			for range entries {
			}
			return n, err
		}
		n++
	}

	if err := waitForPipeline(errcList...); err != nil {
		return n, err
	}

	if err := ctx.Err(); err != nil {
		return n, err
	}

	c.logger.Infof("Imported %d pictures from %q", n, dir)

	return n, nil
}
