package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or its id is
	// malformed.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidMediaURL is returned when an object key cannot be derived
	// from an image URL.
	ErrInvalidMediaURL = errors.New("invalid image URL")
)
