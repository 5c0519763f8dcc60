package collage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a tile operation addresses a
	// tile outside the grid.
	ErrInvalidCoordinate = errors.New("collage: invalid tile coordinate")
	// ErrInvalidDimension is returned when the tile or grid size is not
	// positive.
	ErrInvalidDimension = errors.New("collage: invalid dimension")
)

// LoadError records a picture that couldn't be loaded.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("collage: unable to load %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
