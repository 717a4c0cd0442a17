package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStorage           = errors.New("storage failure")
	ErrValidation        = errors.New("validation failed")

	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrSeatConflict       = errors.New("seat availability changed concurrently")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
