package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/mocks"
)

func newBoardHandler(t *testing.T) (*handlers.BoardHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewBoardHandler(svc), svc
}

func TestListBoards_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().ListBoards(mock.Anything).Return([]board.Board{validBoard()}, nil)

	rec := httptest.NewRecorder()
	h.ListBoards(rec, httptest.NewRequest(http.MethodGet, "/board", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BoardListResponse](t, rec)
	if resp.Count != 1 || resp.Boards[0].Name != "Sprint 1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestGetBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(*mocks.MockBoardService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(svc *mocks.MockBoardService) {
				b := validBoard()
				svc.EXPECT().GetBoard(mock.Anything, int64(1)).Return(&b, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().GetBoard(mock.Anything, int64(99)).Return(nil, domain.ErrBoardNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non numeric id", id: "abc", setup: func(*mocks.MockBoardService) {}, wantStatus: http.StatusBadRequest},
		{name: "zero id", id: "0", setup: func(*mocks.MockBoardService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBoardHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/board/"+tt.id, nil),
				map[string]string{"id": tt.id})
			h.GetBoard(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestFindBoardsByName_PassesParam(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().FindBoardsByName(mock.Anything, "sprint").Return([]board.Board{}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/board/name/sprint", nil),
		map[string]string{"name": "sprint"})
	h.FindBoardsByName(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); !bytes.Contains([]byte(body), []byte(`"boards":[]`)) {
		t.Errorf("body = %s, want empty boards array", body)
	}
}

func TestFindBoardsByStatus_InvalidStatus(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().FindBoardsByStatus(mock.Anything, "archived").Return(nil, domain.ErrInvalidStatus)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/board/status/archived", nil),
		map[string]string{"status": "archived"})
	h.FindBoardsByStatus(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestFindOverdueBoards_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().FindOverdueBoards(mock.Anything).Return([]board.Board{validBoard()}, nil)

	rec := httptest.NewRecorder()
	h.FindOverdueBoards(rec, httptest.NewRequest(http.MethodGet, "/board/overdue", nil))

	requireStatus(t, rec, http.StatusOK)
}

func TestCreateBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setup      func(*mocks.MockBoardService)
		wantStatus int
	}{
		{
			name: "created",
			body: dto.BoardRequest{Name: "Sprint 1"},
			setup: func(svc *mocks.MockBoardService) {
				b := validBoard()
				svc.EXPECT().CreateBoard(mock.Anything, mock.MatchedBy(func(in *board.Board) bool {
					return in.Name == "Sprint 1" && in.Status == ""
				})).Return(&b, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate name",
			body: dto.BoardRequest{Name: "Sprint 1"},
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().CreateBoard(mock.Anything, mock.Anything).
					Return(nil, domain.NewBoardRuleViolation("Board name must be unique"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{name: "missing name", body: dto.BoardRequest{}, setup: func(*mocks.MockBoardService) {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBoardHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			h.CreateBoard(rec, httptest.NewRequest(http.MethodPost, "/board", jsonBody(t, tt.body)))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCreateBoard_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newBoardHandler(t)

	rec := httptest.NewRecorder()
	h.CreateBoard(rec, httptest.NewRequest(http.MethodPost, "/board", bytes.NewBufferString("{")))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBoardHandler_ReportsRejectedInputLocation(t *testing.T) {
	t.Parallel()

	t.Run("path id", func(t *testing.T) {
		t.Parallel()
		h, _ := newBoardHandler(t)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodGet, "/board/task-counts/x", nil),
			map[string]string{"id": "x"})
		h.CountTasks(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
		if got := problemLocations(t, rec); len(got) != 1 || got[0] != "path.id" {
			t.Errorf("locations = %v, want [path.id]", got)
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()
		h, _ := newBoardHandler(t)

		big := `{"name":"` + strings.Repeat("a", 1<<20) + `"}`
		rec := httptest.NewRecorder()
		h.CreateBoard(rec, httptest.NewRequest(http.MethodPost, "/board", strings.NewReader(big)))

		requireStatus(t, rec, http.StatusBadRequest)
		if got := problemLocations(t, rec); len(got) != 1 || got[0] != "body" {
			t.Errorf("locations = %v, want [body]", got)
		}
	})
}

func TestUpdateBoard_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	updated := board.Board{ID: 3, Name: "Renamed", Status: board.StatusCompleted}
	svc.EXPECT().UpdateBoard(mock.Anything, int64(3), mock.MatchedBy(func(in *board.Board) bool {
		return in.Name == "Renamed" && in.Status == board.StatusCompleted
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPut, "/board/3", jsonBody(t, dto.BoardRequest{Name: "Renamed", Status: "completed"})),
		map[string]string{"id": "3"})
	h.UpdateBoard(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.BoardResponse](t, rec); resp.Status != "COMPLETED" {
		t.Errorf("Status = %q, want COMPLETED", resp.Status)
	}
}

func TestDeleteBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", err: nil, wantStatus: http.StatusNoContent},
		{name: "missing", err: domain.ErrBoardNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newBoardHandler(t)
			svc.EXPECT().DeleteBoard(mock.Anything, int64(5)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodDelete, "/board/5", nil), map[string]string{"id": "5"})
			h.DeleteBoard(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCountTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newBoardHandler(t)

	svc.EXPECT().CountTasks(mock.Anything, int64(2)).Return(int64(4), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/board/task-counts/2", nil), map[string]string{"id": "2"})
	h.CountTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskCountResponse](t, rec)
	if resp.BoardID != 2 || resp.Count != 4 {
		t.Errorf("response = %+v, want board 2 with 4 tasks", resp)
	}
}

func TestFinalizeBoard(t *testing.T) {
	t.Parallel()

	t.Run("completed", func(t *testing.T) {
		t.Parallel()
		h, svc := newBoardHandler(t)
		done := board.Board{ID: 7, Name: "Release", Status: board.StatusCompleted}
		svc.EXPECT().FinalizeBoard(mock.Anything, int64(7)).Return(&done, nil)

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodPost, "/board/7/finalize", nil), map[string]string{"id": "7"})
		h.FinalizeBoard(rec, req)

		requireStatus(t, rec, http.StatusOK)
		resp := decodeJSON[dto.FinalizeResponse](t, rec)
		if resp.Message != "Board 7 completed successfully" {
			t.Errorf("Message = %q", resp.Message)
		}
	})

	t.Run("pending tasks", func(t *testing.T) {
		t.Parallel()
		h, svc := newBoardHandler(t)
		reason := "Cannot finalize board with pending tasks"
		svc.EXPECT().FinalizeBoard(mock.Anything, int64(7)).
			Return(nil, fmt.Errorf("finalizing board: %w", domain.NewBoardRuleViolation(reason)))

		rec := httptest.NewRecorder()
		req := withChiParams(httptest.NewRequest(http.MethodPost, "/board/7/finalize", nil), map[string]string{"id": "7"})
		h.FinalizeBoard(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
		if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Detail != reason {
			t.Errorf("Detail = %q, want %q", resp.Detail, reason)
		}
	})
}
