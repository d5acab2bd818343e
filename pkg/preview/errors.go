package preview

import "errors"

var (
	ErrFailedToReadSamples  = errors.New("failed to read sample file")
	ErrFailedToParseSamples = errors.New("failed to parse sample file")
)
