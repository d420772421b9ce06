package service

import "errors"

// Service package errors.
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("service: not found")

	// ErrEmptyContent indicates an entry with no content.
	ErrEmptyContent = errors.New("service: empty content")
)
