package storage

import (
	"context"
	"errors"
)

// Mirror writes every document to all of its stores, in order. It is used
// to publish build output to a bucket alongside the local copy.
type Mirror struct {
	stores []Storage
}

// NewMirror returns a Storage fanning out to stores. At least one store is
// required.
func NewMirror(stores ...Storage) (*Mirror, error) {
	if len(stores) == 0 {
		return nil, ErrInvalidConfig
	}
	return &Mirror{stores: stores}, nil
}

// Write attempts every store and joins the failures.
func (m *Mirror) Write(ctx context.Context, path string, data []byte) error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Write(ctx, path, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exists reports whether the first store holds path.
func (m *Mirror) Exists(ctx context.Context, path string) bool {
	return m.stores[0].Exists(ctx, path)
}
