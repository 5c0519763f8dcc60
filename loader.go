package collage

import "github.com/bodgit/collage/picture"

// Loader loads a picture by name.
type Loader interface {
	Load(name string) (*picture.Picture, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(string) (*picture.Picture, error)

func (f LoaderFunc) Load(name string) (*picture.Picture, error) {
	return f(name)
}

// FileLoader treats names as file paths.
var FileLoader Loader = LoaderFunc(picture.Open)
