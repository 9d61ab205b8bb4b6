package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withChiParams attaches URL parameters the way chi's router would.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validBoard() board.Board {
	return board.Board{ID: 1, Name: "Sprint 1", Status: board.StatusActive}
}

func validTask() task.Task {
	return task.Task{
		ID:          1,
		Title:       "Write docs",
		Description: "Document the public API",
		Status:      task.StatusTodo,
		BoardID:     1,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validUser() user.User {
	return user.User{ID: 1, Name: "Ada", Email: "ada@example.com"}
}

// jsonBody encodes v as a request body.
func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	data, err := sonic.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return bytes.NewBuffer(data)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := sonic.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

// problemLocations returns the sorted error locations of a problem body.
func problemLocations(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Fatalf("Content-Type = %q, want %q", ct, dto.ProblemContentType)
	}
	problem := decodeJSON[dto.ErrorResponse](t, rec)
	locs := make([]string, 0, len(problem.Errors))
	for _, e := range problem.Errors {
		locs = append(locs, e.Location)
	}
	return locs
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
