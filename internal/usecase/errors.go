package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingFields = errors.New("missing required fields")
	ErrLookup        = errors.New("size chart lookup failed")
	ErrInternal      = errors.New("internal error")
)
