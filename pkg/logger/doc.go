// Package logger builds configured log/slog loggers.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttrs(slog.String("service", "web")),
//	)
//
// NewDiscard returns a no-op logger for components that treat logging as an
// optional dependency, such as the signedcookie middleware.
package logger
