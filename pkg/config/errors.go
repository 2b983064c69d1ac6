package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the settings struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrParsingRules is returned when a rule document is not valid YAML.
	ErrParsingRules = errors.New("failed to parse rule definitions")

	// ErrReadingRules is returned when a rule file cannot be opened.
	ErrReadingRules = errors.New("failed to read rule file")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
