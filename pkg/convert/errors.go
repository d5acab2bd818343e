package convert

import "errors"

var (
	ErrSourceDirNotFound  = errors.New("convert: source directory not found")
	ErrNoContentExtracted = errors.New("convert: no content extracted")
	ErrUnknownProfile     = errors.New("convert: unknown profile")
	ErrFailedToRead       = errors.New("convert: failed to read source document")
	ErrFailedToWrite      = errors.New("convert: failed to write template")
)
