// Package logging builds the service's slog logger and carries it through
// request and job contexts.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "kanban-service"))
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.Int64("board_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "board finalized")
//
// Services log failures with the operation, the entity ids involved and the
// whole error chain:
//
//	logger.ErrorContext(ctx, "failed to finalize board",
//	    slog.String("operation", "FinalizeBoard"),
//	    slog.Int64("board_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn (or
// warning) and error, case-insensitive, defaulting to info. format "text"
// selects the text handler; anything else is JSON. Debug loggers add the
// source location. attrs are attached to every record.
//
// Values are passed through the masq redactor before they are written.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With stores a child of the context logger carrying args, so everything
// logged further down the call chain is tagged with them.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
