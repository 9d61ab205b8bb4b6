package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

// BoardService defines the service port for board workflow operations.
// Implemented by the application layer; called by inbound adapters.
type BoardService interface {
	// ListBoards returns every board.
	ListBoards(ctx context.Context) ([]board.Board, error)

	// GetBoard returns a board by ID.
	// Returns domain.ErrBoardNotFound if the board does not exist.
	GetBoard(ctx context.Context, id int64) (*board.Board, error)

	// FindBoardsByName returns boards whose name contains name, ignoring case.
	FindBoardsByName(ctx context.Context, name string) ([]board.Board, error)

	// FindBoardsByStatus parses status case-insensitively and returns the
	// matching boards. Returns domain.ErrInvalidStatus for unknown values.
	FindBoardsByStatus(ctx context.Context, status string) ([]board.Board, error)

	// FindOverdueBoards returns boards holding at least one overdue task.
	FindOverdueBoards(ctx context.Context) ([]board.Board, error)

	// CreateBoard persists a new board, defaulting its status to ACTIVE.
	CreateBoard(ctx context.Context, b *board.Board) (*board.Board, error)

	// UpdateBoard overwrites the name and status of an existing board.
	// Returns domain.ErrBoardNotFound if the board does not exist.
	UpdateBoard(ctx context.Context, id int64, updates *board.Board) (*board.Board, error)

	// DeleteBoard removes a board and, by cascade, its tasks.
	// Returns domain.ErrBoardNotFound if the board does not exist.
	DeleteBoard(ctx context.Context, id int64) error

	// CountTasks returns the number of tasks on a board (0 when empty).
	// Returns domain.ErrBoardNotFound if the board does not exist.
	CountTasks(ctx context.Context, id int64) (int64, error)

	// FinalizeBoard marks a board COMPLETED once all of its tasks are DONE.
	// Returns domain.ErrBoardValidation while any task is pending.
	FinalizeBoard(ctx context.Context, id int64) (*board.Board, error)
}

// TaskService defines the service port for task workflow operations.
type TaskService interface {
	ListTasks(ctx context.Context) ([]task.Task, error)

	// GetTask returns domain.ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	FindTasksByTitle(ctx context.Context, title string) ([]task.Task, error)

	// FindTasksByStatus returns domain.ErrInvalidStatus for unknown values.
	FindTasksByStatus(ctx context.Context, status string) ([]task.Task, error)

	// FindTasksByBoard returns domain.ErrBoardNotFound if the board does not exist.
	FindTasksByBoard(ctx context.Context, boardID int64) ([]task.Task, error)

	// FindTasksByBoardAndStatus checks the board first, then the status.
	FindTasksByBoardAndStatus(ctx context.Context, boardID int64, status string) ([]task.Task, error)

	// GetLastCreatedTask reports false when no task exists.
	GetLastCreatedTask(ctx context.Context) (*task.Task, bool, error)

	// FindTasksByDueDate parses date as YYYY-MM-DD and returns tasks due at
	// any time that day. Returns domain.ErrInvalidDateFormat on bad input.
	FindTasksByDueDate(ctx context.Context, date string) ([]task.Task, error)

	// CreateTask validates the proposed task, attaches it to boardID and
	// persists it. A task created with a responsible user triggers an
	// assignment notification.
	CreateTask(ctx context.Context, t *task.Task, boardID int64) (*task.Task, error)

	// UpdateTask re-validates rules and the board reference, then persists.
	// A change of responsible user triggers an assignment notification.
	UpdateTask(ctx context.Context, id int64, updates *task.Task) (*task.Task, error)

	// DeleteTask returns domain.ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// UserService defines the service port for user CRUD.
type UserService interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id int64) (*user.User, error)
	FindUsersByName(ctx context.Context, name string) ([]user.User, error)
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)
	UpdateUser(ctx context.Context, id int64, updates *user.User) (*user.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
