package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService as plain CRUD over the user store.
type UserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserStore, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{users: users, logger: logger}
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	s.logger.InfoContext(ctx, "listing users")

	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user.
func (s *UserService) GetUser(ctx context.Context, id int64) (*user.User, error) {
	s.logger.InfoContext(ctx, "fetching user", slog.Int64("id", id))

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// FindUsersByName returns users whose name contains name.
func (s *UserService) FindUsersByName(ctx context.Context, name string) ([]user.User, error) {
	s.logger.InfoContext(ctx, "searching users by name", slog.String("name", name))

	users, err := s.users.FindByNameContains(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search users",
			slog.String("operation", "FindUsersByName"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// CreateUser validates and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "creating user")

	u.ID = 0
	normalize(u)
	if err := u.Validate(); err != nil {
		return nil, err
	}

	created, err := s.users.Save(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateUser overwrites name and email of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int64, updates *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.Int64("id", id))

	normalize(updates)
	if err := updates.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	existing.Name = updates.Name
	existing.Email = updates.Email

	saved, err := s.users.Save(ctx, existing)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return saved, nil
}

// DeleteUser removes an existing user. Tasks referencing the user keep the id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting user", slog.Int64("id", id))

	if _, err := s.users.FindByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve user",
			slog.String("operation", "DeleteUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete user",
			slog.String("operation", "DeleteUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func normalize(u *user.User) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
}
