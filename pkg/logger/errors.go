package logger

import "errors"

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("unknown log level")
