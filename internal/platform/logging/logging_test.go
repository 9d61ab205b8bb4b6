package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"board created"`}},
		{format: "text", want: []string{"level=INFO", `msg="board created"`}},
		{format: "TEXT", want: []string{"level=INFO"}},
		{format: "logfmt", want: []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("board created")

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output = %q, want it to contain %q", buf.String(), w)
				}
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		enabled   slog.Level
		filtered  slog.Level
		hasFilter bool
	}{
		{level: "debug", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo, filtered: slog.LevelDebug, hasFilter: true},
		{level: "WARN", enabled: slog.LevelWarn, filtered: slog.LevelInfo, hasFilter: true},
		{level: "warning", enabled: slog.LevelWarn, filtered: slog.LevelInfo, hasFilter: true},
		{level: " error ", enabled: slog.LevelError, filtered: slog.LevelWarn, hasFilter: true},
		{level: "verbose", enabled: slog.LevelInfo, filtered: slog.LevelDebug, hasFilter: true},
		{level: "", enabled: slog.LevelInfo, filtered: slog.LevelDebug, hasFilter: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", new(bytes.Buffer))
			ctx := context.Background()

			if !logger.Enabled(ctx, tt.enabled) {
				t.Errorf("level %q: %v disabled, want enabled", tt.level, tt.enabled)
			}
			if tt.hasFilter && logger.Enabled(ctx, tt.filtered) {
				t.Errorf("level %q: %v enabled, want filtered", tt.level, tt.filtered)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("sweep started")
	logging.New("info", "json", &infoBuf).Info("sweep started")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source location", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source location", infoBuf.String())
	}
}

func TestNew_BaseAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf, slog.String("service", "kanban-service"))

	logger.Info("server started")

	if !strings.Contains(buf.String(), `"service":"kanban-service"`) {
		t.Errorf("output = %q, want service attribute", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext() on empty context did not return slog.Default()")
	}

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if logging.FromContext(ctx) != second {
		t.Error("FromContext() did not return the most recently stored logger")
	}
}

func TestWith_TagsDownstreamRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.Int64("board_id", 12))

	logging.FromContext(ctx).InfoContext(ctx, "counting tasks")

	if !strings.Contains(buf.String(), `"board_id":12`) {
		t.Errorf("output = %q, want board_id attribute", buf.String())
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{
			name:   "authorization field",
			attr:   slog.String("authorization", "Bearer supersecret-token"),
			secret: "supersecret-token",
		},
		{
			name:   "email field",
			attr:   slog.String("email", "ana@example.com"),
			secret: "ana@example.com",
		},
		{
			name:   "email inside a message value",
			attr:   slog.String("detail", "email ana@example.com is already registered"),
			secret: "ana@example.com",
		},
		{
			name:   "secret prefixed field",
			attr:   slog.String("secret_token", "hunter2"),
			secret: "hunter2",
		},
		{
			name:   "raw bearer value",
			attr:   slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"),
			secret: "eyJhbGciOiJSUzI1NiJ9",
		},
		{
			name:   "storage account key",
			attr:   slog.String("target", "DefaultEndpointsProtocol=https;AccountName=kanban;AccountKey=c2VjcmV0a2V5;EndpointSuffix=core.windows.net"),
			secret: "c2VjcmV0a2V5",
		},
		{
			name:   "queue SAS signature",
			attr:   slog.String("queue_url", "https://kanban.queue.core.windows.net/task-assignments?sv=2024-05-04&sig=QWxhZGRpbjpvcGVu"),
			secret: "QWxhZGRpbjpvcGVu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			if strings.Contains(buf.String(), tt.secret) {
				t.Errorf("output = %q, want %q redacted", buf.String(), tt.secret)
			}
			if !strings.Contains(buf.String(), "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", buf.String())
			}
		})
	}
}

func TestNew_KeepsDomainFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("task assigned",
		slog.Int64("user_id", 7),
		slog.String("title", "Review PR"),
		slog.String("path", "/board/7/tasks"),
	)

	for _, want := range []string{`"user_id":7`, "Review PR", "/board/7/tasks"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want %q kept", buf.String(), want)
		}
	}
}
