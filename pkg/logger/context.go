package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// ToContext attaches the process logger to ctx. main calls it once; every
// menu action and bank operation below reads it back with FromContext.
func ToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or slog.Default() when
// none is attached (for example when bank is used without a console).
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With narrows the context logger with session attributes and stores the
// result back in the returned context. The console uses it to tag records
// with the session id at start, and with the account id once logged in:
//
//	log, ctx := logger.With(ctx, "account_id", id)
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	logger := FromContext(ctx).With(args...)
	return logger, ToContext(ctx, logger)
}
