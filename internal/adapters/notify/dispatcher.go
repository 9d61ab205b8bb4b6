// Package notify delivers task assignment notifications off the request path.
//
// The Dispatcher implements ports.Notifier: Notify enqueues and returns at
// once, and a fixed pool of workers hands each assignment to every configured
// sink concurrently. Delivery failures are logged and counted, never returned
// to the caller that triggered the notification.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-service/internal/app/fanout"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// Compile-time check that Dispatcher implements ports.Notifier.
var _ ports.Notifier = (*Dispatcher)(nil)

// Config sizes the dispatcher.
type Config struct {
	QueueSize       int
	Workers         int
	DeliveryTimeout time.Duration
}

type job struct {
	ctx        context.Context
	assignment task.Assignment
}

// Dispatcher is an asynchronous, bounded notification fan-out.
type Dispatcher struct {
	sinks   []ports.AssignmentSink
	timeout time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan job
	wg     sync.WaitGroup
}

// NewDispatcher starts cfg.Workers delivery goroutines. Call Close to stop
// them. metrics may be nil.
func NewDispatcher(cfg Config, sinks []ports.AssignmentSink, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	d := &Dispatcher{
		sinks:   sinks,
		timeout: cfg.DeliveryTimeout,
		metrics: metrics,
		logger:  logger,
		queue:   make(chan job, cfg.QueueSize),
	}

	d.wg.Add(cfg.Workers)
	for range cfg.Workers {
		go d.work()
	}
	return d
}

// Notify enqueues an assignment notification for t. Tasks without a
// responsible user are ignored. When the queue is full or the dispatcher is
// closed the notification is dropped and logged.
func (d *Dispatcher) Notify(ctx context.Context, t task.Task) {
	a, ok := task.NewAssignment(uuid.NewString(), t, time.Now().UTC())
	if !ok {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, a, "closed")
		return
	}

	// The request may finish before delivery; keep its values, drop its
	// cancellation.
	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), assignment: a}:
	default:
		d.drop(ctx, a, "queue_full")
	}
}

// Close stops accepting notifications and waits for queued ones to be
// delivered, or for ctx to end. Close is idempotent.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for j := range d.queue {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	// Sinks that log through the context (the webhook client's retries) tag
	// their records with the notification.
	ctx := logging.With(j.ctx,
		slog.String("notification_id", j.assignment.ID),
		slog.Int64("task_id", j.assignment.TaskID),
	)
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	results := fanout.Run(ctx, len(d.sinks), d.sinks, func(ctx context.Context, s ports.AssignmentSink) (struct{}, error) {
		return struct{}{}, s.Deliver(ctx, j.assignment)
	})

	for i, r := range results {
		sink := d.sinks[i].Name()
		result := "success"
		if r.Err != nil {
			result = "error"
			var pe *fanout.PanicError
			if errors.As(r.Err, &pe) {
				d.logger.ErrorContext(ctx, "sink panicked",
					slog.String("sink", sink),
					slog.String("stack", string(pe.Stack)),
				)
			}
			d.logger.ErrorContext(ctx, "failed to deliver assignment notification",
				slog.String("operation", "Dispatcher.deliver"),
				slog.String("sink", sink),
				slog.String("notification_id", j.assignment.ID),
				slog.Int64("task_id", j.assignment.TaskID),
				slog.Any("error", r.Err),
			)
		}
		d.record(ctx, sink, result)
	}
}

func (d *Dispatcher) drop(ctx context.Context, a task.Assignment, reason string) {
	d.logger.WarnContext(ctx, "dropping assignment notification",
		slog.String("reason", reason),
		slog.String("notification_id", a.ID),
		slog.Int64("task_id", a.TaskID),
	)
	d.record(ctx, "dispatcher", reason)
}

func (d *Dispatcher) record(ctx context.Context, sink, result string) {
	if d.metrics == nil {
		return
	}
	d.metrics.Notifications.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrSink.String(sink),
		telemetry.AttrResult.String(result),
	))
}
