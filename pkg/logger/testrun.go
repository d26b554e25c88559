package logger

import (
	"context"
	"io"
	"log/slog"
)

func NewTestHandler(level slog.Level) slog.Handler {
	return newTextHandler(io.Discard, level)
}

// TestCtx returns a context carrying a logger that discards everything.
func TestCtx() context.Context {
	return ToContext(context.Background(), slog.New(NewTestHandler(slog.LevelDebug)))
}
