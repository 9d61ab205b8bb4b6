package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// Rejection reasons returned to callers verbatim.
const (
	ReasonDoneRequiresUser = "Tasks with DONE status must have a responsible user"
	ReasonDoingLimit       = "User already has 5 tasks in Doing status. Limit reached."
)

// TaskRules enforces the entry conditions into DONE and DOING. It runs on the
// proposed state of a task before any create or update reaches the store.
type TaskRules struct {
	tasks   ports.TaskStore
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewTaskRules creates a TaskRules validator. metrics may be nil.
func NewTaskRules(tasks ports.TaskStore, metrics *telemetry.Metrics, logger *slog.Logger) *TaskRules {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskRules{tasks: tasks, metrics: metrics, logger: logger}
}

// Validate returns a *domain.RuleViolation of kind domain.ErrTaskValidation
// for the first rule t breaks, or nil. TODO tasks pass unconditionally.
//
// The DOING count is read before the write and is not locked, so concurrent
// writes for one user can overshoot the limit.
func (r *TaskRules) Validate(ctx context.Context, t *task.Task) error {
	switch t.Status {
	case task.StatusDone:
		if !t.HasUser() {
			return r.reject(ctx, "done_requires_user", ReasonDoneRequiresUser)
		}
	case task.StatusDoing:
		if !t.HasUser() {
			return nil
		}
		n, err := r.tasks.CountByUserAndStatus(ctx, *t.UserID, task.StatusDoing)
		if err != nil {
			return fmt.Errorf("counting doing tasks: %w", err)
		}
		if t.ID != 0 {
			prev, err := persistedTask(ctx, r.tasks, t.ID)
			switch {
			case err == nil && prev.Status == task.StatusDoing && prev.HasUser() && *prev.UserID == *t.UserID:
				// Already counted for this user.
				n--
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("loading persisted task: %w", err)
			}
		}
		if n >= task.MaxDoingPerUser {
			return r.reject(ctx, "doing_limit", ReasonDoingLimit)
		}
	}
	return nil
}

func (r *TaskRules) reject(ctx context.Context, rule, reason string) error {
	r.logger.InfoContext(ctx, "task rule rejected write", slog.String("rule", rule))
	if r.metrics != nil {
		r.metrics.TaskRuleRejections.Add(ctx, 1, metric.WithAttributes(telemetry.AttrRule.String(rule)))
	}
	return domain.NewTaskRuleViolation(reason)
}
