package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// BoardHandler handles HTTP requests for boards.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /board.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.ListBoards(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(boards))
}

// GetBoard handles GET /board/{id}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(b))
}

// FindBoardsByName handles GET /board/name/{name}.
func (h *BoardHandler) FindBoardsByName(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.FindBoardsByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(boards))
}

// FindBoardsByStatus handles GET /board/status/{status}.
func (h *BoardHandler) FindBoardsByStatus(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.FindBoardsByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(boards))
}

// FindOverdueBoards handles GET /board/overdue.
func (h *BoardHandler) FindOverdueBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.FindOverdueBoards(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(boards))
}

// CreateBoard handles POST /board.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.BoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBoard(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(created))
}

// UpdateBoard handles PUT /board/{id}.
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBoard(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(updated))
}

// DeleteBoard handles DELETE /board/{id}.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteBoard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CountTasks handles GET /board/task-counts/{id}.
func (h *BoardHandler) CountTasks(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.CountTasks(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.TaskCountResponse{BoardID: id, Count: n})
}

// FinalizeBoard handles POST /board/{id}/finalize.
func (h *BoardHandler) FinalizeBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.FinalizeBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToFinalizeResponse(b))
}
