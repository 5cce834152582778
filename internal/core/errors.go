package core

import "errors"

var (
	// ErrConfiguration reports invalid sizes or scales supplied at startup.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrCorruptedGrid reports a grid whose rightmost column is missing or empty.
	// Growth aborts without modifying the grid and may be retried.
	ErrCorruptedGrid = errors.New("corrupted grid")
	// ErrOutOfBounds reports an edit aimed at a coordinate that was never generated.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
