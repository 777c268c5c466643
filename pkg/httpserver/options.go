package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	mustPositive("WithReadHeaderTimeout", d)
	return func(c *config) { c.readHeaderTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger sets the server logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic(name + ": duration must be > 0")
	}
}
