// Package user defines the User entity: a notification recipient and the
// target of a task's responsible-user reference.
package user

import (
	"strings"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

// User is referenced by tasks but carries no workflow invariants.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Validate checks the field shape of a User.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	email := strings.TrimSpace(u.Email)
	switch {
	case email == "":
		fields["email"] = domain.MsgRequired
	case !strings.Contains(email, "@"):
		fields["email"] = "must be an email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
