package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

// AddAction queues action for Commit without touching the cache.
// AddAction is safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Pending returns the descriptions of actions staged but not yet committed.
// It returns nil once Commit has run.
func (rc *RequestContext) Pending() []string {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed || len(rc.items) == 0 {
		return nil
	}
	out := make([]string, len(rc.items))
	for i, item := range rc.items {
		out[i] = item.Description()
	}
	return out
}

// Commit executes staged actions in order. When one fails, the actions that
// already succeeded are rolled back in reverse order and the failure is
// returned. Rollback errors are logged only.
//
// Commit runs once per RequestContext; later calls return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.Description()),
		)

		if err := item.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, items[:i], logger)
			return fmt.Errorf("executing %s: %w", item.Description(), err)
		}
	}

	return nil
}

func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		item := done[i]
		if err := item.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
		}
	}
}

// ActionFunc adapts plain functions to domain.Action. A nil Undo makes
// Rollback a no-op.
type ActionFunc struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Execute runs Do.
func (a ActionFunc) Execute(ctx context.Context) error { return a.Do(ctx) }

// Rollback runs Undo when set.
func (a ActionFunc) Rollback(ctx context.Context) error {
	if a.Undo == nil {
		return nil
	}
	return a.Undo(ctx)
}

// Description returns Desc.
func (a ActionFunc) Description() string { return a.Desc }
