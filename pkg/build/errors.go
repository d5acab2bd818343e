package build

import "errors"

var (
	ErrTemplatesDirNotFound  = errors.New("build: templates directory not found")
	ErrFailedToReadTemplate  = errors.New("build: failed to read template")
	ErrFailedToWriteTemplate = errors.New("build: failed to write template")
)
