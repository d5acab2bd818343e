package email

import "errors"

var (
	ErrFailedToSendEmail  = errors.New("email: failed to send email")
	ErrInvalidConfig      = errors.New("email: invalid configuration")
	ErrInvalidParams      = errors.New("email: invalid parameters")
	ErrMissingCredentials = errors.New("email: sandbox credentials not found")
	ErrUnknownTransport   = errors.New("email: unknown transport")
)
