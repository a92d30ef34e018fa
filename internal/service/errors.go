package service

import "errors"

// Pipeline error taxonomy. Handlers map these onto HTTP statuses;
// everything else surfaces as a 500 with its cause.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrNotFound           = errors.New("file not found")
	ErrAccountUnavailable = errors.New("account unavailable")
	ErrNoValidFiles       = errors.New("no valid files found on server")
	ErrPlatformRejected   = errors.New("reddit rejected the request")
)
