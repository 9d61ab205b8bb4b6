package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/kanban-service/internal/app/context"
	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Every create and update runs
// field validation, then TaskRules, then the board check, and only then
// writes. Assignment notifications go out after the write succeeds.
type TaskService struct {
	tasks    ports.TaskStore
	resolver *BoardResolver
	rules    *TaskRules
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(
	tasks ports.TaskStore,
	resolver *BoardResolver,
	rules *TaskRules,
	notifier ports.Notifier,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		tasks:    tasks,
		resolver: resolver,
		rules:    rules,
		notifier: notifier,
		logger:   logger,
	}
}

// ListTasks returns every task.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks")

	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a single task.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.Int64("id", id))

	t, err := persistedTask(ctx, s.tasks, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// FindTasksByTitle returns tasks whose title contains title.
func (s *TaskService) FindTasksByTitle(ctx context.Context, title string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "searching tasks by title", slog.String("title", title))

	tasks, err := s.tasks.FindByTitleContains(ctx, title)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search tasks",
			slog.String("operation", "FindTasksByTitle"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// FindTasksByStatus returns tasks in the given status.
func (s *TaskService) FindTasksByStatus(ctx context.Context, raw string) ([]task.Task, error) {
	status, err := task.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing tasks by status", slog.String("status", status.String()))

	tasks, err := s.tasks.FindByStatus(ctx, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks by status",
			slog.String("operation", "FindTasksByStatus"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// FindTasksByBoard returns the tasks of an existing board.
func (s *TaskService) FindTasksByBoard(ctx context.Context, boardID int64) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing board tasks", slog.Int64("board_id", boardID))

	if _, err := s.resolver.Resolve(ctx, boardID); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.FindByBoard(ctx, boardID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list board tasks",
			slog.String("operation", "FindTasksByBoard"),
			slog.Int64("board_id", boardID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// FindTasksByBoardAndStatus checks the board before parsing the status, so a
// missing board wins over a bad status.
func (s *TaskService) FindTasksByBoardAndStatus(ctx context.Context, boardID int64, raw string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing board tasks by status",
		slog.Int64("board_id", boardID),
		slog.String("status", raw),
	)

	if _, err := s.resolver.Resolve(ctx, boardID); err != nil {
		return nil, err
	}

	status, err := task.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.FindByBoardAndStatus(ctx, boardID, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list board tasks by status",
			slog.String("operation", "FindTasksByBoardAndStatus"),
			slog.Int64("board_id", boardID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// GetLastCreatedTask returns the most recently created task. An empty store
// reports false, not an error.
func (s *TaskService) GetLastCreatedTask(ctx context.Context) (*task.Task, bool, error) {
	s.logger.InfoContext(ctx, "fetching last created task")

	t, err := s.tasks.FindLastCreated(ctx)
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return nil, false, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "failed to fetch last created task",
			slog.String("operation", "GetLastCreatedTask"),
			slog.Any("error", err),
		)
		return nil, false, err
	}
	return t, true, nil
}

// FindTasksByDueDate returns tasks due on the calendar day given as
// YYYY-MM-DD, from 00:00:00 through 23:59:59.
func (s *TaskService) FindTasksByDueDate(ctx context.Context, raw string) ([]task.Task, error) {
	day, err := task.ParseDay(raw, nil)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing tasks by due date", slog.String("date", raw))

	tasks, err := s.tasks.FindByDueDateRange(ctx, day.Start, day.End)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks by due date",
			slog.String("operation", "FindTasksByDueDate"),
			slog.String("date", raw),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// CreateTask validates t, attaches it to boardID and persists it.
func (s *TaskService) CreateTask(ctx context.Context, t *task.Task, boardID int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.Int64("board_id", boardID))

	t.ID = 0
	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.rules.Validate(ctx, t); err != nil {
		return nil, err
	}
	if _, err := s.resolver.Resolve(ctx, boardID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify board",
			slog.String("operation", "CreateTask"),
			slog.Int64("board_id", boardID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying board: %w", err)
	}
	t.BoardID = boardID

	rc := appctx.From(ctx)
	var saved *task.Task
	err := rc.AddAction(appctx.ActionFunc{
		Desc: "insert task",
		Do: func(ctx context.Context) error {
			var err error
			saved, err = s.tasks.Save(ctx, t)
			return err
		},
		Undo: func(ctx context.Context) error {
			return s.tasks.DeleteByID(ctx, saved.ID)
		},
	})
	if err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Int64("board_id", boardID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if saved.HasUser() {
		s.notifier.Notify(ctx, *saved)
	}
	return saved, nil
}

// UpdateTask replaces the mutable fields of task id with updates. The
// responsible user is notified when it changes to a non-nil value.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, updates *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("id", id))

	updates.ID = id
	updates.ApplyDefaults()
	if err := updates.Validate(); err != nil {
		return nil, err
	}
	if err := s.rules.Validate(ctx, updates); err != nil {
		return nil, err
	}

	existing, err := persistedTask(ctx, s.tasks, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve task",
			slog.String("operation", "UpdateTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	prevUser := existing.UserID

	if _, err := s.resolver.Resolve(ctx, updates.BoardID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify board",
			slog.String("operation", "UpdateTask"),
			slog.Int64("id", id),
			slog.Int64("board_id", updates.BoardID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying board: %w", err)
	}

	next := *existing
	next.Title = updates.Title
	next.Description = updates.Description
	next.Status = updates.Status
	next.BoardID = updates.BoardID
	next.DueDate = updates.DueDate
	next.UserID = updates.UserID

	rc := appctx.From(ctx)
	var saved *task.Task
	save := appctx.ActionFunc{
		Desc: fmt.Sprintf("save task %d", id),
		Do: func(ctx context.Context) error {
			var err error
			saved, err = s.tasks.Save(ctx, &next)
			return err
		},
	}
	if err := rc.Stage(taskKey(id), &next, save); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		rc.Forget(taskKey(id))
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if userChanged(prevUser, saved.UserID) {
		s.notifier.Notify(ctx, *saved)
	}
	return saved, nil
}

// DeleteTask removes an existing task.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("id", id))

	if _, err := persistedTask(ctx, s.tasks, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve task",
			slog.String("operation", "DeleteTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.tasks.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	appctx.From(ctx).Forget(taskKey(id))
	return nil
}

// userChanged reports whether next names a user that prev did not.
func userChanged(prev, next *int64) bool {
	if next == nil {
		return false
	}
	return prev == nil || *prev != *next
}
