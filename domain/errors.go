package domain

import "errors"

// Error kinds. Every error crossing a layer boundary wraps exactly one of
// these so controllers can map it to a status with errors.Is instead of
// matching message strings.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
