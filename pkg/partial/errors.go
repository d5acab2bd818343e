package partial

import "errors"

var (
	// ErrPartialNotFound is returned by a Loader when no document backs a name.
	// The Resolver never surfaces it; it substitutes MissingMarker instead.
	ErrPartialNotFound = errors.New("partial not found")

	ErrFailedToReadPartial = errors.New("failed to read partial")
)
