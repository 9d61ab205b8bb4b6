package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

// BoardStore is the persistence port for boards.
type BoardStore interface {
	FindAll(ctx context.Context) ([]board.Board, error)

	// FindByID returns domain.ErrBoardNotFound when no board has the id.
	FindByID(ctx context.Context, id int64) (*board.Board, error)

	FindByNameContains(ctx context.Context, name string) ([]board.Board, error)
	FindByStatus(ctx context.Context, status board.Status) ([]board.Board, error)

	// Save inserts a board with a zero ID and updates it otherwise.
	Save(ctx context.Context, b *board.Board) (*board.Board, error)

	// DeleteByID removes the board and all of its tasks.
	DeleteByID(ctx context.Context, id int64) error

	CountTasks(ctx context.Context, id int64) (int64, error)

	// FindWithOverdueTasks returns boards holding a task that is not DONE
	// and whose due date is before now.
	FindWithOverdueTasks(ctx context.Context, now time.Time) ([]board.Board, error)

	// AreAllTasksDone is true for a board with no tasks.
	AreAllTasksDone(ctx context.Context, id int64) (bool, error)

	UpdateStatus(ctx context.Context, id int64, status board.Status) error
}

// TaskStore is the persistence port for tasks.
type TaskStore interface {
	FindAll(ctx context.Context) ([]task.Task, error)

	// FindByID returns domain.ErrTaskNotFound when no task has the id.
	FindByID(ctx context.Context, id int64) (*task.Task, error)

	FindByTitleContains(ctx context.Context, title string) ([]task.Task, error)
	FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error)

	// Save inserts a task with a zero ID and updates it otherwise. The store
	// assigns CreatedAt and UpdatedAt.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	DeleteByID(ctx context.Context, id int64) error
	FindByBoard(ctx context.Context, boardID int64) ([]task.Task, error)
	FindByBoardAndStatus(ctx context.Context, boardID int64, status task.Status) ([]task.Task, error)

	// FindLastCreated returns domain.ErrTaskNotFound when the store is empty.
	FindLastCreated(ctx context.Context) (*task.Task, error)

	// FindByDueDateRange matches due dates in [start, end], inclusive.
	FindByDueDateRange(ctx context.Context, start, end time.Time) ([]task.Task, error)

	CountByUserAndStatus(ctx context.Context, userID int64, status task.Status) (int64, error)
}

// UserStore is the persistence port for users.
type UserStore interface {
	FindAll(ctx context.Context) ([]user.User, error)

	// FindByID returns domain.ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	FindByNameContains(ctx context.Context, name string) ([]user.User, error)
	Save(ctx context.Context, u *user.User) (*user.User, error)
	DeleteByID(ctx context.Context, id int64) error
}
