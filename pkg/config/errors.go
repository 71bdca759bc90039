package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnv is returned when an explicitly named .env file cannot
	// be loaded.
	ErrLoadingEnv = errors.New("config: failed to load env file")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided")
)
