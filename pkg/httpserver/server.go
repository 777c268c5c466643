package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/valdi/pkg/logger"
)

type config struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
}

func defaultConfig() *config {
	return &config{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
		logger:            logger.Discard(),
	}
}

// Server wraps http.Server with context driven graceful shutdown.
type Server struct {
	cfg *config

	mu   sync.Mutex
	srv  *http.Server
	addr net.Addr
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.logger = cfg.logger.With(logger.Component("httpserver"))
	return &Server{cfg: cfg}
}

// Run listens and serves handler until ctx is done, then shuts down within
// the shutdown timeout. A Server runs once.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:              s.cfg.addr,
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
		ReadTimeout:       s.cfg.readTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		IdleTimeout:       s.cfg.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	log := s.cfg.logger
	log.Info("server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
	defer cancel()

	log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	log.Info("server stopped")
	return nil
}

// Addr reports the bound listener address, or nil before Run starts
// listening. Useful with ":0" addresses.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
