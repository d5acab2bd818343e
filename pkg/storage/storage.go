package storage

import (
	"context"
	"mime"
	"path"
)

// Storage receives the documents produced by the build and convert steps.
// Paths are slash-separated and relative to the storage root.
type Storage interface {
	Write(ctx context.Context, path string, data []byte) error
	Exists(ctx context.Context, path string) bool
}

// contentType guesses the MIME type from the file extension.
func contentType(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
