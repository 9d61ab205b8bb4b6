package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.UserStore = (*UserStore)(nil)

// UserStore persists users.
type UserStore struct {
	db *DB
}

// NewUserStore creates a UserStore.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindAll(ctx context.Context) ([]user.User, error) {
	return s.query(ctx, "listing users", "SELECT id, name, email FROM users ORDER BY id")
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	var u user.User
	err := s.db.QueryRowContext(ctx, "SELECT id, name, email FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	if err != nil {
		return nil, translate("finding user", err)
	}
	return &u, nil
}

func (s *UserStore) FindByNameContains(ctx context.Context, name string) ([]user.User, error) {
	return s.query(ctx, "searching users",
		`SELECT id, name, email FROM users WHERE LOWER(name) LIKE ? ESCAPE '\' ORDER BY id`,
		containsPattern(name))
}

func (s *UserStore) Save(ctx context.Context, u *user.User) (*user.User, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	saved := *u
	if u.ID == 0 {
		res, err := s.db.ExecContext(ctx, "INSERT INTO users (name, email) VALUES (?, ?)", u.Name, u.Email)
		if err != nil {
			return nil, translate("inserting user", err)
		}
		if saved.ID, err = res.LastInsertId(); err != nil {
			return nil, translate("inserting user", err)
		}
		return &saved, nil
	}

	res, err := s.db.ExecContext(ctx, "UPDATE users SET name = ?, email = ? WHERE id = ?", u.Name, u.Email, u.ID)
	if err != nil {
		return nil, translate("updating user", err)
	}
	if err := rowsAffected(res, domain.ErrUserNotFound); err != nil {
		return nil, fmt.Errorf("user %d: %w", u.ID, err)
	}
	return &saved, nil
}

func (s *UserStore) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return translate("deleting user", err)
	}
	if err := rowsAffected(res, domain.ErrUserNotFound); err != nil {
		return fmt.Errorf("user %d: %w", id, err)
	}
	return nil
}

func (s *UserStore) query(ctx context.Context, op, query string, args ...any) ([]user.User, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, translate(op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err)
	}
	return users, nil
}
