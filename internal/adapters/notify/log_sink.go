package notify

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.AssignmentSink = (*LogSink)(nil)

// LogSink writes each notification as a structured log record.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Name returns "log".
func (s *LogSink) Name() string { return "log" }

// Deliver logs a.
func (s *LogSink) Deliver(ctx context.Context, a task.Assignment) error {
	attrs := []slog.Attr{
		slog.String("notification_id", a.ID),
		slog.Int64("user_id", a.UserID),
		slog.Int64("task_id", a.TaskID),
		slog.Int64("board_id", a.BoardID),
		slog.String("title", a.Title),
		slog.String("status", a.Status.String()),
	}
	if a.DueDate != nil {
		attrs = append(attrs, slog.Time("due_date", *a.DueDate))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "task assigned to user", attrs...)
	return nil
}
