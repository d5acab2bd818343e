package partial

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// DefaultExt is appended to a partial name to find its file.
const DefaultExt = ".html"

// Loader returns the raw text of the partial called name.
type Loader interface {
	Load(name string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (string, error)

func (f LoaderFunc) Load(name string) (string, error) { return f(name) }

// FSLoader reads partials from a file system, one file per name.
type FSLoader struct {
	fsys fs.FS
	ext  string
}

// NewFSLoader creates a loader rooted at fsys. An empty ext means DefaultExt.
func NewFSLoader(fsys fs.FS, ext string) *FSLoader {
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &FSLoader{fsys: fsys, ext: ext}
}

// Load implements Loader. Names may contain "/" to address subdirectories.
func (l *FSLoader) Load(name string) (string, error) {
	p := path.Clean(name) + l.ext
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("%w: %s", ErrPartialNotFound, name)
	}

	b, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPartialNotFound, name)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrFailedToReadPartial, name, err)
	}
	return string(b), nil
}
