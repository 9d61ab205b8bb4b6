package task

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

// Status represents where a Task sits on the board.
type Status string

const (
	StatusTodo  Status = "TODO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus maps a caller-supplied string to a Status, ignoring case.
// Unknown values fail with domain.ErrInvalidStatus.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, raw)
	}
	return s, nil
}
