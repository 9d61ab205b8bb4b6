package dto_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

func TestNewErrorResponse_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &domain.ValidationError{Fields: map[string]string{"title": "is required"}}, http.StatusBadRequest},
		{"board rule", domain.NewBoardRuleViolation("Board name must be unique"), http.StatusBadRequest},
		{"board not found", domain.ErrBoardNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("verifying board: %w", domain.ErrNotFound), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"downstream unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"query deadline", fmt.Errorf("querying tasks: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"anything else", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/board/42", nil), tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if want := http.StatusText(tt.wantStatus); got.Title != want {
				t.Errorf("Title = %q, want %q", got.Title, want)
			}
			if got.Type != "about:blank" || got.Instance != "/board/42" {
				t.Errorf("Type, Instance = %q, %q", got.Type, got.Instance)
			}
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantDetail string
	}{
		{
			name:       "plain error keeps its text",
			err:        fmt.Errorf("verifying board: %w", domain.ErrBoardNotFound),
			wantDetail: fmt.Errorf("verifying board: %w", domain.ErrBoardNotFound).Error(),
		},
		{
			name:       "board rule shows bare reason",
			err:        domain.NewBoardRuleViolation("Board name must be unique"),
			wantDetail: "Board name must be unique",
		},
		{
			name:       "wrapped task rule shows bare reason",
			err:        fmt.Errorf("saving task: %w", domain.NewTaskRuleViolation("Tasks with DONE status must have a responsible user")),
			wantDetail: "Tasks with DONE status must have a responsible user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, "/task", nil), tt.err)

			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
			if got.Errors != nil {
				t.Errorf("Errors = %v, want none", got.Errors)
			}
		})
	}
}

func TestNewErrorResponse_FieldLocations(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"title":   "is required",
		"status":  `invalid: "bad"`,
		"path.id": "must be a positive integer",
		"body":    "invalid JSON",
	}}

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, "/task/x", nil), verr)

	locs := make([]string, 0, len(got.Errors))
	for _, e := range got.Errors {
		locs = append(locs, e.Location)
	}
	want := []string{"body", "body.status", "body.title", "path.id"}
	if !slices.Equal(locs, want) {
		t.Errorf("locations = %v, want %v", locs, want)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/user", nil)
	dto.WriteErrorResponse(rec, r, &domain.ValidationError{Fields: map[string]string{"email": "is required"}})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ProblemContentType)
	}

	var resp dto.ErrorResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.email" || resp.Errors[0].Message != "is required" {
		t.Errorf("Errors = %+v, want body.email is required", resp.Errors)
	}
}
