package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/valdi/pkg/config"
	"github.com/dmitrymomot/valdi/pkg/factory"
	"github.com/dmitrymomot/valdi/pkg/httpserver"
	"github.com/dmitrymomot/valdi/pkg/logger"
	"github.com/dmitrymomot/valdi/svc/people"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const usage = `usage:
  valdi check FILE   validate a YAML or JSON list of people
  valdi serve        serve the people HTTP API
`

// Config is read from VALDI_* environment variables.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Service   string `env:"SERVICE" envDefault:"valdi"`

	HTTP httpserver.Config
}

func loadConfig(opts ...config.Option) (Config, error) {
	opts = append([]config.Option{
		config.WithPrefix("VALDI_"),
		config.WithEnvFiles(".env"),
	}, opts...)
	return config.Load[Config](opts...)
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService(cfg.Service),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	), nil
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...config.Option) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cfg, err := loadConfig(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "valdi: %v\n", err)
		return exitUsage
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "valdi: %v\n", err)
		return exitUsage
	}

	f := people.NewFactory(factory.WithLogger(log))

	switch args[0] {
	case "check":
		if len(args) != 2 {
			fmt.Fprint(stderr, usage)
			return exitUsage
		}
		return check(args[1], f, stdout, log)
	case "serve":
		if err := serve(ctx, cfg, f, log); err != nil {
			log.Error("server failed", logger.Error(err))
			return exitInvalid
		}
		return exitOK
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "valdi: unknown command %q\n%s", args[0], usage)
		return exitUsage
	}
}

func check(path string, f *people.Factory, stdout io.Writer, log *slog.Logger) int {
	file, err := os.Open(path)
	if err != nil {
		log.Error("failed to open input", slog.String("path", path), logger.Error(err))
		return exitUsage
	}
	defer file.Close()

	inputs, err := people.DecodeInputs(file)
	if err != nil {
		log.Error("failed to decode input", slog.String("path", path), logger.Error(err))
		return exitUsage
	}

	report := people.CheckBatch(f, inputs)
	log.Info("batch checked",
		slog.String("path", path),
		slog.Int("total", report.Total),
		slog.Int("invalid", report.Invalid),
	)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Error("failed to write report", logger.Error(err))
		return exitUsage
	}

	if !report.OK() {
		return exitInvalid
	}
	return exitOK
}

// serve blocks until ctx is cancelled or the listener fails.
func serve(ctx context.Context, cfg Config, f *people.Factory, log *slog.Logger) error {
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router(f, log))
}

func router(f *people.Factory, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, people.ReadinessCheck(f)))
	r.Mount("/", people.NewHandler(f, log).Routes())
	return r
}
