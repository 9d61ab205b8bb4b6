// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"strconv"

	appctx "github.com/jsamuelsen11/kanban-service/internal/app/context"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

// BoardResolver loads a board or fails with domain.ErrBoardNotFound. Within a
// request carrying an appctx.RequestContext each id is read from the store at
// most once.
type BoardResolver struct {
	boards ports.BoardStore
}

// NewBoardResolver creates a BoardResolver backed by boards.
func NewBoardResolver(boards ports.BoardStore) *BoardResolver {
	return &BoardResolver{boards: boards}
}

// Resolve returns the board with the given id. Any id is passed to the store
// as-is; zero and negative ids resolve to not found.
func (r *BoardResolver) Resolve(ctx context.Context, id int64) (*board.Board, error) {
	return appctx.GetOrFetch(appctx.From(ctx), boardKey(id), func(_ context.Context) (*board.Board, error) {
		return r.boards.FindByID(ctx, id)
	})
}

func boardKey(id int64) string { return "board:" + strconv.FormatInt(id, 10) }

func taskKey(id int64) string { return "task:" + strconv.FormatInt(id, 10) }

// persistedTask returns the stored state of task id, memoized per request so
// the rule validator and the update path share one read.
func persistedTask(ctx context.Context, tasks ports.TaskStore, id int64) (*task.Task, error) {
	return appctx.GetOrFetch(appctx.From(ctx), taskKey(id), func(_ context.Context) (*task.Task, error) {
		return tasks.FindByID(ctx, id)
	})
}
