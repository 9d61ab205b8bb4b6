package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	appctx "github.com/jsamuelsen11/kanban-service/internal/app/context"
	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// Board rule rejection reasons.
const (
	ReasonPendingTasks = "Cannot finalize board with pending tasks"
	ReasonReopen       = "Completed boards cannot be reopened"
)

// BoardService implements ports.BoardService on top of the board store.
type BoardService struct {
	boards   ports.BoardStore
	resolver *BoardResolver
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewBoardService creates a BoardService. metrics may be nil; a nil logger
// discards output.
func NewBoardService(boards ports.BoardStore, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		boards:   boards,
		resolver: NewBoardResolver(boards),
		metrics:  metrics,
		logger:   logger,
	}
}

// ListBoards returns every board.
func (s *BoardService) ListBoards(ctx context.Context) ([]board.Board, error) {
	s.logger.InfoContext(ctx, "listing boards")

	boards, err := s.boards.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list boards",
			slog.String("operation", "ListBoards"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return boards, nil
}

// GetBoard returns a single board.
func (s *BoardService) GetBoard(ctx context.Context, id int64) (*board.Board, error) {
	s.logger.InfoContext(ctx, "fetching board", slog.Int64("id", id))

	b, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch board",
			slog.String("operation", "GetBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return b, nil
}

// FindBoardsByName returns boards whose name contains name.
func (s *BoardService) FindBoardsByName(ctx context.Context, name string) ([]board.Board, error) {
	s.logger.InfoContext(ctx, "searching boards by name", slog.String("name", name))

	boards, err := s.boards.FindByNameContains(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search boards",
			slog.String("operation", "FindBoardsByName"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return boards, nil
}

// FindBoardsByStatus returns boards in the given status.
func (s *BoardService) FindBoardsByStatus(ctx context.Context, raw string) ([]board.Board, error) {
	status, err := board.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing boards by status", slog.String("status", status.String()))

	boards, err := s.boards.FindByStatus(ctx, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list boards by status",
			slog.String("operation", "FindBoardsByStatus"),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return boards, nil
}

// FindOverdueBoards returns boards holding a task past its due date that is
// not DONE.
func (s *BoardService) FindOverdueBoards(ctx context.Context) ([]board.Board, error) {
	s.logger.InfoContext(ctx, "listing boards with overdue tasks")

	boards, err := s.boards.FindWithOverdueTasks(ctx, now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list overdue boards",
			slog.String("operation", "FindOverdueBoards"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return boards, nil
}

// CreateBoard validates and persists a new board. Names are not unique.
func (s *BoardService) CreateBoard(ctx context.Context, b *board.Board) (*board.Board, error) {
	b.ApplyDefaults()
	s.logger.InfoContext(ctx, "creating board", slog.String("name", b.Name))

	if err := b.Validate(); err != nil {
		return nil, err
	}

	created, err := s.boards.Save(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create board",
			slog.String("operation", "CreateBoard"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateBoard overwrites name and status of an existing board. An empty
// status keeps the stored one, and a completed board stays completed. Tasks
// are left untouched.
func (s *BoardService) UpdateBoard(ctx context.Context, id int64, updates *board.Board) (*board.Board, error) {
	updates.Name = strings.TrimSpace(updates.Name)
	s.logger.InfoContext(ctx, "updating board", slog.Int64("id", id))

	if err := updates.ValidateUpdate(); err != nil {
		return nil, err
	}

	existing, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve board",
			slog.String("operation", "UpdateBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	next := *existing
	next.Name = updates.Name
	if updates.Status != "" {
		next.Status = updates.Status
	}
	if existing.Status == board.StatusCompleted && next.Status != board.StatusCompleted {
		return nil, domain.NewBoardRuleViolation(ReasonReopen)
	}

	rc := appctx.From(ctx)
	var saved *board.Board
	save := appctx.ActionFunc{
		Desc: fmt.Sprintf("save board %d", id),
		Do: func(ctx context.Context) error {
			var err error
			saved, err = s.boards.Save(ctx, &next)
			return err
		},
	}
	if err := rc.Stage(boardKey(id), &next, save); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		rc.Forget(boardKey(id))
		s.logger.ErrorContext(ctx, "failed to update board",
			slog.String("operation", "UpdateBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return saved, nil
}

// DeleteBoard removes a board and its tasks. The store is not touched when the
// board does not exist.
func (s *BoardService) DeleteBoard(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting board", slog.Int64("id", id))

	if _, err := s.resolver.Resolve(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve board",
			slog.String("operation", "DeleteBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.boards.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete board",
			slog.String("operation", "DeleteBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	appctx.From(ctx).Forget(boardKey(id))
	return nil
}

// CountTasks returns the number of tasks on a board.
func (s *BoardService) CountTasks(ctx context.Context, id int64) (int64, error) {
	s.logger.InfoContext(ctx, "counting board tasks", slog.Int64("id", id))

	if _, err := s.resolver.Resolve(ctx, id); err != nil {
		return 0, err
	}

	n, err := s.boards.CountTasks(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count board tasks",
			slog.String("operation", "CountTasks"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return 0, err
	}
	return n, nil
}

// FinalizeBoard moves a board to COMPLETED when every one of its tasks is
// DONE. A board without tasks finalizes.
func (s *BoardService) FinalizeBoard(ctx context.Context, id int64) (*board.Board, error) {
	s.logger.InfoContext(ctx, "finalizing board", slog.Int64("id", id))

	b, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve board",
			slog.String("operation", "FinalizeBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	done, err := s.boards.AreAllTasksDone(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check board tasks",
			slog.String("operation", "FinalizeBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !done {
		return nil, domain.NewBoardRuleViolation(ReasonPendingTasks)
	}

	if err := s.boards.UpdateStatus(ctx, id, board.StatusCompleted); err != nil {
		s.logger.ErrorContext(ctx, "failed to update board status",
			slog.String("operation", "FinalizeBoard"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BoardsFinalized.Add(ctx, 1)
	}

	completed := *b
	completed.Status = board.StatusCompleted
	return &completed, nil
}
