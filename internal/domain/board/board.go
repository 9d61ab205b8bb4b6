// Package board defines the Board entity: a named container of tasks that is
// finalized once every task it owns is done.
package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
)

// Name length bounds, inclusive.
const (
	NameMinLen = 3
	NameMaxLen = 100
)

// Board owns its tasks: deleting a board removes them.
type Board struct {
	ID     int64
	Name   string
	Status Status
	// Tasks is a read-side back-reference; it is never persisted from here.
	Tasks []task.Task
}

// Validate checks the field shape of a Board.
// Returns a *domain.ValidationError with per-field details, or nil.
func (b *Board) Validate() error {
	return b.validate(false)
}

// ValidateUpdate is Validate for a replacement body, where an empty status
// means the stored status is kept.
func (b *Board) ValidateUpdate() error {
	return b.validate(true)
}

func (b *Board) validate(statusOptional bool) error {
	fields := make(map[string]string)

	name := strings.TrimSpace(b.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		fields["name"] = domain.MsgRequired
	case n < NameMinLen || n > NameMaxLen:
		fields["name"] = fmt.Sprintf("must be %d-%d characters, got %d", NameMinLen, NameMaxLen, n)
	}
	if !b.Status.IsValid() && (b.Status != "" || !statusOptional) {
		fields["status"] = fmt.Sprintf("invalid: %q", b.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyDefaults fills in a new board's defaults: status ACTIVE and a trimmed name.
func (b *Board) ApplyDefaults() {
	b.Name = strings.TrimSpace(b.Name)
	if b.Status == "" {
		b.Status = StatusActive
	}
}
