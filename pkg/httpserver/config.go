package httpserver

import "time"

// Config holds server settings parsed from the environment.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig creates a Server from cfg. Zero values keep the defaults and
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadHeaderTimeout > 0 {
		configOpts = append(configOpts, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
