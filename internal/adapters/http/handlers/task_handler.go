package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) writeList(w http.ResponseWriter, r *http.Request, tasks []task.Task, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// ListTasks handles GET /task.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context())
	h.writeList(w, r, tasks, err)
}

// GetTask handles GET /task/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// FindTasksByTitle handles GET /task/title/{title}.
func (h *TaskHandler) FindTasksByTitle(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.FindTasksByTitle(r.Context(), chi.URLParam(r, "title"))
	h.writeList(w, r, tasks, err)
}

// FindTasksByStatus handles GET /task/status/{status}.
func (h *TaskHandler) FindTasksByStatus(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.FindTasksByStatus(r.Context(), chi.URLParam(r, "status"))
	h.writeList(w, r, tasks, err)
}

// FindTasksByBoard handles GET /task/board/{id}.
func (h *TaskHandler) FindTasksByBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.FindTasksByBoard(r.Context(), boardID)
	h.writeList(w, r, tasks, err)
}

// FindTasksByBoardAndStatus handles GET /task/board-status/{boardId}/{status}.
func (h *TaskHandler) FindTasksByBoardAndStatus(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.FindTasksByBoardAndStatus(r.Context(), boardID, chi.URLParam(r, "status"))
	h.writeList(w, r, tasks, err)
}

// GetLastCreatedTask handles GET /task/last-task. An empty store yields 204.
func (h *TaskHandler) GetLastCreatedTask(w http.ResponseWriter, r *http.Request) {
	t, ok, err := h.svc.GetLastCreatedTask(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(t))
}

// FindTasksByDueDate handles GET /task/duedate/{date}.
func (h *TaskHandler) FindTasksByDueDate(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.FindTasksByDueDate(r.Context(), chi.URLParam(r, "date"))
	h.writeList(w, r, tasks, err)
}

// CreateTask handles POST /task. The board comes from the body's board_id.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), req.ToDomain(), req.BoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(created))
}

// UpdateTask handles PUT /task/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /task/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
