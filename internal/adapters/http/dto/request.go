package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

const msgRequired = domain.MsgRequired

// BoardRequest is the JSON body for creating or replacing a board. An empty
// status means ACTIVE on create and keeps the stored status on update.
type BoardRequest struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Validate checks that required fields are present and the status, when
// given, is known. Length rules are enforced by the domain.
func (r *BoardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Status != "" {
		if _, err := board.ParseStatus(r.Status); err != nil {
			fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a board. Call Validate first.
func (r *BoardRequest) ToDomain() *board.Board {
	b := &board.Board{Name: r.Name}
	if r.Status != "" {
		b.Status, _ = board.ParseStatus(r.Status)
	}
	return b
}

// TaskRequest is the JSON body for creating or replacing a task. A null or
// missing user_id leaves the task unassigned.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	BoardID     int64      `json:"board_id"`
	UserID      *int64     `json:"user_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Validate checks that required fields are present and the status, when
// given, is known.
func (r *TaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}
	if r.BoardID == 0 {
		fields["board_id"] = msgRequired
	}
	if r.Status != "" {
		if _, err := task.ParseStatus(r.Status); err != nil {
			fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a task. Call Validate first.
func (r *TaskRequest) ToDomain() *task.Task {
	t := &task.Task{
		Title:       r.Title,
		Description: r.Description,
		BoardID:     r.BoardID,
		UserID:      r.UserID,
	}
	if r.Status != "" {
		t.Status, _ = task.ParseStatus(r.Status)
	}
	if r.DueDate != nil {
		due := r.DueDate.UTC()
		t.DueDate = &due
	}
	return t
}

// UserRequest is the JSON body for creating or replacing a user.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks that required fields are present.
func (r *UserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a user.
func (r *UserRequest) ToDomain() *user.User {
	return &user.User{Name: r.Name, Email: r.Email}
}
