package apperr

import "errors"

// Sentinel errors shared across stores and handlers. Stores return these
// (optionally wrapped) so handlers can translate them into HTTP responses
// without string matching.
var (
	ErrValidation      = errors.New("validation failed")
	ErrWeakPassword    = errors.New("password too short")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNotFound        = errors.New("not found")
)
