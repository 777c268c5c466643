package people

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidInput         = errors.New("invalid input document")
	ErrNotReady             = errors.New("person factory not ready")
)
