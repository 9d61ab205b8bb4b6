// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

// BoardResponse represents a single board in HTTP responses.
type BoardResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// BoardListResponse represents a list of boards in HTTP responses.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Count  int             `json:"count"`
}

// ToBoardResponse converts a domain Board to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	return BoardResponse{ID: b.ID, Name: b.Name, Status: b.Status.String()}
}

// ToBoardListResponse converts a slice of boards to a list response.
func ToBoardListResponse(boards []board.Board) BoardListResponse {
	items := make([]BoardResponse, len(boards))
	for i := range boards {
		items[i] = ToBoardResponse(&boards[i])
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// TaskCountResponse is returned by the board task-count endpoint.
type TaskCountResponse struct {
	BoardID int64 `json:"board_id"`
	Count   int64 `json:"count"`
}

// FinalizeResponse is returned when a board is finalized.
type FinalizeResponse struct {
	Message string        `json:"message"`
	Board   BoardResponse `json:"board"`
}

// ToFinalizeResponse builds the finalize confirmation for b.
func ToFinalizeResponse(b *board.Board) FinalizeResponse {
	return FinalizeResponse{
		Message: fmt.Sprintf("Board %d completed successfully", b.ID),
		Board:   ToBoardResponse(b),
	}
}

// TaskResponse represents a single task in HTTP responses. Timestamps are
// RFC 3339 in UTC.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	BoardID     int64   `json:"board_id"`
	UserID      *int64  `json:"user_id"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		BoardID:     t.BoardID,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.UTC().Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

// ToTaskListResponse converts a slice of tasks to a list response.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserListResponse represents a list of users in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ToUserListResponse converts a slice of users to a list response.
func ToUserListResponse(users []user.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{Users: items, Count: len(items)}
}
