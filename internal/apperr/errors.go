package apperr

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("storage unavailable")
	ErrMalformed   = errors.New("malformed data")
)
