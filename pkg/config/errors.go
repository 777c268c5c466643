package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingEnvFile is returned when an existing .env file cannot be read or parsed
	ErrReadingEnvFile = errors.New("failed to read env file")
)
