package clipper2

import "errors"

// Package errors for the clipper2 backend.
var (
	// ErrLibraryNotFound is returned when no candidate library could be loaded.
	ErrLibraryNotFound = errors.New("clipper2: library not found")

	// ErrMissingSymbol is returned when the library lacks a required export.
	ErrMissingSymbol = errors.New("clipper2: missing export")
)
