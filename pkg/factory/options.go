package factory

import "log/slog"

// Option configures a Factory during construction.
type Option func(*options)

type options struct {
	name string
	log  *slog.Logger
}

// WithName labels the factory in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger enables debug logging of rejected inputs.
// A nil logger keeps the factory silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
