package domain

import "errors"

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("booking conflict")
	ErrDuplicate    = errors.New("already exists")
)
