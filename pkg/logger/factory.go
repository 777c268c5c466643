package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable records for terminals.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for unknown formats: a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithService tags every record with the service name.
func WithService(name string) Option {
	return func(c *config) {
		if name != "" {
			c.attrs = append(c.attrs, slog.String("service", name))
		}
	}
}

// WithContextValue copies the value stored under key in the record's context
// into an attribute called name, for example a request id set by middleware.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// ParseLevel converts debug, info, warn or error (any case) into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []contextExtractor
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured *slog.Logger. Defaults: JSON, info level, stdout.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	if len(cfg.extractors) > 0 {
		handler = &contextHandler{next: handler, extractors: cfg.extractors}
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
