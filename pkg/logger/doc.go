// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers for consistent key names.
//
// New selects a text or JSON handler, applies the level and static
// attributes, and optionally wraps the handler so that values stored in the
// record's context (for example a request id) are added to every record.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("people-api"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//
//	log.DebugContext(ctx, "input rejected", logger.Failures(errs))
//
// Failure and Failures render validation failures as text, so failure types
// do not need to know how they are logged. Error and Errors return an empty
// Attr for nil errors, which slog drops, so callers can skip nil checks.
package logger
