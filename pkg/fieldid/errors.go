package fieldid

import "errors"

// Package-specific errors
var (
	// ErrInvalidFieldID is returned when a value cannot be parsed into a composite field identifier.
	ErrInvalidFieldID = errors.New("invalid field identifier")
)
