package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSeed is returned when a seed coordinate lies outside the grid.
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrInvalidDimensions is returned for non-positive grid dimensions.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrAlreadySeeded is returned when Seed is called more than once.
	ErrAlreadySeeded = errors.New("grid already seeded")
	// ErrUnknownPattern is returned when a named pattern does not exist.
	ErrUnknownPattern = errors.New("unknown pattern")
)
