package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix limits parsing to variables starting with prefix. Tags are
// written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles adds .env files whose values fill variables missing from the
// environment.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnvironment replaces the process environment as the source of values.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses the environment into a new T.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//		User string `env:"DB_USER,required"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig]()
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	vars := o.environment
	if vars == nil {
		vars = environ()
	} else {
		vars = copyVars(vars)
	}

	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, v := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

func copyVars(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
