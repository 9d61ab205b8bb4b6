// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Static segments take precedence over {id} in chi, so /board/overdue
	// and /task/last-task never reach the ID handlers.
	r.Route("/board", func(r chi.Router) {
		r.Get("/", boardHandler.ListBoards)
		r.Post("/", boardHandler.CreateBoard)
		r.Get("/overdue", boardHandler.FindOverdueBoards)
		r.Get("/name/{name}", boardHandler.FindBoardsByName)
		r.Get("/status/{status}", boardHandler.FindBoardsByStatus)
		r.Get("/task-counts/{id}", boardHandler.CountTasks)
		r.Get("/{id}", boardHandler.GetBoard)
		r.Put("/{id}", boardHandler.UpdateBoard)
		r.Delete("/{id}", boardHandler.DeleteBoard)
		r.Post("/{id}/finalize", boardHandler.FinalizeBoard)
	})

	r.Route("/task", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/last-task", taskHandler.GetLastCreatedTask)
		r.Get("/title/{title}", taskHandler.FindTasksByTitle)
		r.Get("/status/{status}", taskHandler.FindTasksByStatus)
		r.Get("/board/{id}", taskHandler.FindTasksByBoard)
		r.Get("/board-status/{boardId}/{status}", taskHandler.FindTasksByBoardAndStatus)
		r.Get("/duedate/{date}", taskHandler.FindTasksByDueDate)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/name/{name}", userHandler.FindUsersByName)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	return r
}
