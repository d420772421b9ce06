package boostweb

import "errors"

// Package errors.
var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("boostweb: invalid configuration")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("boostweb: not found")

	// ErrReadOnly indicates the site is in read-only mode.
	ErrReadOnly = errors.New("boostweb: read-only mode")
)
