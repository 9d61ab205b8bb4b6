package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.BoardStore = (*BoardStore)(nil)

const boardColumns = "b.id, b.name, b.status"

// BoardStore persists boards. Board.Tasks is never populated.
type BoardStore struct {
	db *DB
}

// NewBoardStore creates a BoardStore.
func NewBoardStore(db *DB) *BoardStore {
	return &BoardStore{db: db}
}

func (s *BoardStore) FindAll(ctx context.Context) ([]board.Board, error) {
	return s.query(ctx, "listing boards",
		"SELECT "+boardColumns+" FROM boards b ORDER BY b.id")
}

func (s *BoardStore) FindByID(ctx context.Context, id int64) (*board.Board, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	var b board.Board
	err := s.db.QueryRowContext(ctx,
		"SELECT "+boardColumns+" FROM boards b WHERE b.id = ?", id,
	).Scan(&b.ID, &b.Name, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("board %d: %w", id, domain.ErrBoardNotFound)
	}
	if err != nil {
		return nil, translate("finding board", err)
	}
	return &b, nil
}

func (s *BoardStore) FindByNameContains(ctx context.Context, name string) ([]board.Board, error) {
	return s.query(ctx, "searching boards",
		`SELECT `+boardColumns+` FROM boards b WHERE LOWER(b.name) LIKE ? ESCAPE '\' ORDER BY b.id`,
		containsPattern(name))
}

func (s *BoardStore) FindByStatus(ctx context.Context, status board.Status) ([]board.Board, error) {
	return s.query(ctx, "listing boards by status",
		"SELECT "+boardColumns+" FROM boards b WHERE b.status = ? ORDER BY b.id", string(status))
}

func (s *BoardStore) Save(ctx context.Context, b *board.Board) (*board.Board, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO boards (name, status) VALUES (?, ?)", b.Name, string(b.Status))
		if err != nil {
			return nil, translate("inserting board", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, translate("inserting board", err)
		}
		saved := *b
		saved.ID = id
		return &saved, nil
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE boards SET name = ?, status = ? WHERE id = ?", b.Name, string(b.Status), b.ID)
	if err != nil {
		return nil, translate("updating board", err)
	}
	if err := rowsAffected(res, domain.ErrBoardNotFound); err != nil {
		return nil, fmt.Errorf("board %d: %w", b.ID, err)
	}
	saved := *b
	return &saved, nil
}

// DeleteByID removes the board; the schema cascades to its tasks.
func (s *BoardStore) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return translate("deleting board", err)
	}
	if err := rowsAffected(res, domain.ErrBoardNotFound); err != nil {
		return fmt.Errorf("board %d: %w", id, err)
	}
	return nil
}

func (s *BoardStore) CountTasks(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE board_id = ?", id).Scan(&n); err != nil {
		return 0, translate("counting tasks", err)
	}
	return n, nil
}

func (s *BoardStore) FindWithOverdueTasks(ctx context.Context, now time.Time) ([]board.Board, error) {
	return s.query(ctx, "listing overdue boards",
		`SELECT DISTINCT `+boardColumns+` FROM boards b
		 JOIN tasks t ON t.board_id = b.id
		 WHERE t.due_date IS NOT NULL AND t.due_date < ? AND t.status <> ?
		 ORDER BY b.id`,
		now.UTC(), string(task.StatusDone))
}

func (s *BoardStore) AreAllTasksDone(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	var pending bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM tasks WHERE board_id = ? AND status <> ?)",
		id, string(task.StatusDone),
	).Scan(&pending); err != nil {
		return false, translate("checking board tasks", err)
	}
	return !pending, nil
}

func (s *BoardStore) UpdateStatus(ctx context.Context, id int64, status board.Status) error {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, "UPDATE boards SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return translate("updating board status", err)
	}
	if err := rowsAffected(res, domain.ErrBoardNotFound); err != nil {
		return fmt.Errorf("board %d: %w", id, err)
	}
	return nil
}

func (s *BoardStore) query(ctx context.Context, op, query string, args ...any) ([]board.Board, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	boards := []board.Board{}
	for rows.Next() {
		var b board.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Status); err != nil {
			return nil, translate(op, err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err)
	}
	return boards, nil
}
