package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
)

// Notifier informs a task's responsible user that the task was assigned to
// them. Notify never fails the caller: delivery is asynchronous and errors are
// handled behind the port.
type Notifier interface {
	Notify(ctx context.Context, t task.Task)
}

// AssignmentSink is an outbound delivery channel for assignment
// notifications (log, webhook, message queue).
type AssignmentSink interface {
	// Name identifies the sink in logs and metrics (e.g., "webhook").
	Name() string

	// Deliver sends one notification. Implementations should respect ctx
	// cancellation and deadlines.
	Deliver(ctx context.Context, a task.Assignment) error
}
