package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.TaskStore = (*TaskStore)(nil)

const taskColumns = "id, title, description, status, board_id, user_id, due_date, created_at, updated_at"

// TaskStore persists tasks.
type TaskStore struct {
	db  *DB
	now func() time.Time
}

// NewTaskStore creates a TaskStore.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db, now: time.Now}
}

func (s *TaskStore) FindAll(ctx context.Context) ([]task.Task, error) {
	return s.query(ctx, "listing tasks", "SELECT "+taskColumns+" FROM tasks ORDER BY id")
}

func (s *TaskStore) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	t, err := scanTask(s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
	}
	if err != nil {
		return nil, translate("finding task", err)
	}
	return t, nil
}

func (s *TaskStore) FindByTitleContains(ctx context.Context, title string) ([]task.Task, error) {
	return s.query(ctx, "searching tasks",
		`SELECT `+taskColumns+` FROM tasks WHERE LOWER(title) LIKE ? ESCAPE '\' ORDER BY id`,
		containsPattern(title))
}

func (s *TaskStore) FindByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	return s.query(ctx, "listing tasks by status",
		"SELECT "+taskColumns+" FROM tasks WHERE status = ? ORDER BY id", string(status))
}

// Save inserts or updates t and returns the row as stored. CreatedAt is set
// on insert only; UpdatedAt on every write.
func (s *TaskStore) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	stamp := s.now().UTC()

	var id int64
	err := func() error {
		ctx, cancel := s.db.withTimeout(ctx)
		defer cancel()

		if t.ID == 0 {
			res, err := s.db.ExecContext(ctx,
				`INSERT INTO tasks (title, description, status, board_id, user_id, due_date, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.Title, t.Description, string(t.Status), t.BoardID, nullInt(t.UserID), nullTime(t.DueDate), stamp, stamp)
			if err != nil {
				return translate("inserting task", err)
			}
			id, err = res.LastInsertId()
			if err != nil {
				return translate("inserting task", err)
			}
			return nil
		}

		res, err := s.db.ExecContext(ctx,
			`UPDATE tasks SET title = ?, description = ?, status = ?, board_id = ?, user_id = ?, due_date = ?, updated_at = ?
			 WHERE id = ?`,
			t.Title, t.Description, string(t.Status), t.BoardID, nullInt(t.UserID), nullTime(t.DueDate), stamp, t.ID)
		if err != nil {
			return translate("updating task", err)
		}
		if err := rowsAffected(res, domain.ErrTaskNotFound); err != nil {
			return fmt.Errorf("task %d: %w", t.ID, err)
		}
		id = t.ID
		return nil
	}()
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *TaskStore) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return translate("deleting task", err)
	}
	if err := rowsAffected(res, domain.ErrTaskNotFound); err != nil {
		return fmt.Errorf("task %d: %w", id, err)
	}
	return nil
}

func (s *TaskStore) FindByBoard(ctx context.Context, boardID int64) ([]task.Task, error) {
	return s.query(ctx, "listing board tasks",
		"SELECT "+taskColumns+" FROM tasks WHERE board_id = ? ORDER BY id", boardID)
}

func (s *TaskStore) FindByBoardAndStatus(ctx context.Context, boardID int64, status task.Status) ([]task.Task, error) {
	return s.query(ctx, "listing board tasks by status",
		"SELECT "+taskColumns+" FROM tasks WHERE board_id = ? AND status = ? ORDER BY id",
		boardID, string(status))
}

// FindLastCreated breaks created_at ties by the higher id.
func (s *TaskStore) FindLastCreated(ctx context.Context) (*task.Task, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	t, err := scanTask(s.db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks ORDER BY created_at DESC, id DESC LIMIT 1"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, translate("finding last task", err)
	}
	return t, nil
}

func (s *TaskStore) FindByDueDateRange(ctx context.Context, start, end time.Time) ([]task.Task, error) {
	return s.query(ctx, "listing tasks by due date",
		"SELECT "+taskColumns+" FROM tasks WHERE due_date >= ? AND due_date <= ? ORDER BY due_date, id",
		start.UTC(), end.UTC())
}

func (s *TaskStore) CountByUserAndStatus(ctx context.Context, userID int64, status task.Status) (int64, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE user_id = ? AND status = ?", userID, string(status),
	).Scan(&n); err != nil {
		return 0, translate("counting user tasks", err)
	}
	return n, nil
}

func (s *TaskStore) query(ctx context.Context, op, query string, args ...any) ([]task.Task, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, translate(op, err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err)
	}
	return tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t      task.Task
		userID sql.NullInt64
		due    sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.BoardID,
		&userID, &due, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if userID.Valid {
		t.UserID = &userID.Int64
	}
	if due.Valid {
		d := due.Time.UTC()
		t.DueDate = &d
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: v.UTC(), Valid: true}
}
