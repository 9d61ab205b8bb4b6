// Package scheduler runs periodic background jobs against the application
// services. The only job today is the overdue sweep, which reports boards
// holding tasks past their due date.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rcron "github.com/robfig/cron/v3"

	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// specParser accepts an optional leading seconds field and descriptors such
// as @every 5m.
var specParser = rcron.NewParser(
	rcron.SecondOptional | rcron.Minute | rcron.Hour | rcron.Dom | rcron.Month | rcron.Dow | rcron.Descriptor,
)

// DefaultJobTimeout bounds a single sweep run.
const DefaultJobTimeout = 30 * time.Second

// Scheduler owns a cron runner and the jobs registered on it.
type Scheduler struct {
	cron    *rcron.Cron
	boards  ports.BoardService
	timeout time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a stopped Scheduler. metrics may be nil; a nil logger discards
// output.
func New(boards ports.BoardService, metrics *telemetry.Metrics, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		cron:    rcron.New(rcron.WithParser(specParser), rcron.WithChain(rcron.SkipIfStillRunning(rcron.DiscardLogger))),
		boards:  boards,
		timeout: DefaultJobTimeout,
		metrics: metrics,
		logger:  logger,
	}
}

// ScheduleOverdueSweep registers the overdue sweep under spec.
func (s *Scheduler) ScheduleOverdueSweep(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.SweepOverdue(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling overdue sweep %q: %w", spec, err)
	}
	s.logger.Info("overdue sweep scheduled", slog.String("spec", spec))
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SweepOverdue logs every board that holds an overdue task. Errors are logged,
// not returned, so a failing run never stops the schedule.
func (s *Scheduler) SweepOverdue(ctx context.Context) {
	boards, err := s.boards.FindOverdueBoards(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "overdue sweep failed",
			slog.String("operation", "SweepOverdue"),
			slog.Any("error", err),
		)
		return
	}

	if s.metrics != nil {
		s.metrics.OverdueBoards.Record(ctx, int64(len(boards)))
	}

	if len(boards) == 0 {
		s.logger.DebugContext(ctx, "overdue sweep found no boards")
		return
	}

	ids := make([]int64, len(boards))
	for i := range boards {
		ids[i] = boards[i].ID
	}
	s.logger.WarnContext(ctx, "boards with overdue tasks",
		slog.Int("count", len(boards)),
		slog.Any("board_ids", ids),
	)
}
