package dto_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

func TestToBoardListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		boards []board.Board
		want   int
	}{
		{name: "nil slice", boards: nil, want: 0},
		{name: "two boards", boards: []board.Board{
			{ID: 1, Name: "Backlog", Status: board.StatusActive},
			{ID: 2, Name: "Release", Status: board.StatusCompleted},
		}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToBoardListResponse(tt.boards)

			if got.Count != tt.want || len(got.Boards) != tt.want {
				t.Fatalf("Count = %d, len = %d, want %d", got.Count, len(got.Boards), tt.want)
			}
			if got.Boards == nil {
				t.Error("Boards = nil, want empty slice so it encodes as []")
			}
		})
	}
}

func TestToFinalizeResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFinalizeResponse(&board.Board{ID: 7, Name: "Release", Status: board.StatusCompleted})

	if got.Message != "Board 7 completed successfully" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.Board.Status != "COMPLETED" {
		t.Errorf("Board.Status = %q, want COMPLETED", got.Board.Status)
	}
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	due := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	uid := int64(3)

	tests := []struct {
		name     string
		task     task.Task
		wantDue  *string
		wantUser *int64
	}{
		{
			name: "unassigned without due date",
			task: task.Task{ID: 1, Title: "Triage", Description: "Sort new bugs", Status: task.StatusTodo, BoardID: 2,
				CreatedAt: created, UpdatedAt: created},
		},
		{
			name: "assigned with due date",
			task: task.Task{ID: 1, Title: "Triage", Description: "Sort new bugs", Status: task.StatusDoing, BoardID: 2,
				UserID: &uid, DueDate: &due, CreatedAt: created, UpdatedAt: created},
			wantDue:  func() *string { s := "2026-02-01T12:00:00Z"; return &s }(),
			wantUser: &uid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToTaskResponse(&tt.task)

			if got.CreatedAt != "2026-01-02T03:04:05Z" {
				t.Errorf("CreatedAt = %q", got.CreatedAt)
			}
			if got.Status != tt.task.Status.String() {
				t.Errorf("Status = %q, want %q", got.Status, tt.task.Status)
			}
			switch {
			case tt.wantDue == nil && got.DueDate != nil:
				t.Errorf("DueDate = %q, want nil", *got.DueDate)
			case tt.wantDue != nil && (got.DueDate == nil || *got.DueDate != *tt.wantDue):
				t.Errorf("DueDate = %v, want %q", got.DueDate, *tt.wantDue)
			}
			if (got.UserID == nil) != (tt.wantUser == nil) {
				t.Errorf("UserID = %v, want %v", got.UserID, tt.wantUser)
			}
		})
	}
}

func TestTaskResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	resp := dto.ToTaskListResponse([]task.Task{{
		ID: 5, Title: "Deploy", Description: "Ship to production", Status: task.StatusDone, BoardID: 1,
	}})

	data, err := sonic.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := sonic.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m["count"] != float64(1) {
		t.Errorf("count = %v, want 1", m["count"])
	}

	items, ok := m["tasks"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("tasks = %v, want one item", m["tasks"])
	}
	item := items[0].(map[string]any)
	for _, key := range []string{"id", "title", "description", "status", "board_id", "user_id", "due_date", "created_at", "updated_at"} {
		if _, ok := item[key]; !ok {
			t.Errorf("task JSON missing key %q", key)
		}
	}
	if item["user_id"] != nil {
		t.Errorf("user_id = %v, want null", item["user_id"])
	}
}

func TestToUserListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToUserListResponse([]user.User{{ID: 1, Name: "Ada", Email: "ada@example.com"}})

	if got.Count != 1 || got.Users[0].Email != "ada@example.com" {
		t.Errorf("ToUserListResponse() = %+v", got)
	}
}
