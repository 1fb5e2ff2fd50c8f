package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a precondition re-check fails because a
	// racing caller already changed the record.
	ErrConflict = errors.New("conflict")
)
