package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user insert violates email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)
