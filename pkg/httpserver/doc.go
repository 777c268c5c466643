// Package httpserver runs an http.Handler until its context is cancelled and
// then shuts the server down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Signal handling is left to the caller so that Run can be driven by any
// context. HealthCheckHandler serves liveness and readiness checks.
package httpserver
