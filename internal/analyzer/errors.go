package analyzer

import "errors"

var (
	// ErrInvalidInput marks a slide sequence the analyzer refuses to
	// process: page numbers not strictly increasing or below 1. No
	// partial structure is returned.
	ErrInvalidInput = errors.New("invalid slide input")

	// ErrInvalidConfig marks out-of-range analyzer options, rejected
	// at construction time before any classification work.
	ErrInvalidConfig = errors.New("invalid analyzer configuration")
)
