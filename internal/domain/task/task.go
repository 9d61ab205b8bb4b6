// Package task defines the Task entity and the calendar helpers used to query
// tasks by due date.
package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

// MaxDoingPerUser is the number of DOING tasks a single user may hold.
const MaxDoingPerUser = 5

// Field length bounds, inclusive.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000
)

// Task is a unit of work on exactly one board, optionally assigned to a user.
// BoardID and UserID are weak references: the board must exist on every
// write, the user is never checked.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	BoardID     int64
	DueDate     *time.Time
	UserID      *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasUser reports whether the task carries a responsible user.
func (t *Task) HasUser() bool {
	return t.UserID != nil
}

// Validate checks the field shape of a Task. Workflow rules (DONE needs a
// user, the DOING cap) are enforced by the application layer, not here.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	checkLen(fields, "title", t.Title, TitleMinLen, TitleMaxLen)
	checkLen(fields, "description", t.Description, DescriptionMinLen, DescriptionMaxLen)

	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.UserID != nil && *t.UserID <= 0 {
		fields["user_id"] = fmt.Sprintf("must be positive, got %d", *t.UserID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyDefaults fills in defaults for a task about to be written.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusTodo
	}
}

func checkLen(fields map[string]string, name, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n == 0:
		fields[name] = domain.MsgRequired
	case n < minLen || n > maxLen:
		fields[name] = fmt.Sprintf("must be %d-%d characters, got %d", minLen, maxLen, n)
	}
}
