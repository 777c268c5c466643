package factory

import "errors"

var (
	// ErrMissingConstructor is returned when a factory is built without a constructor.
	ErrMissingConstructor = errors.New("factory constructor must be defined")
)
