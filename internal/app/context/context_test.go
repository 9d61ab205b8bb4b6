package appctx

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
)

// journal records the order in which staged writes run and unwind.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
}

// save returns an action that journals its execution and rollback. doErr
// fails Execute; undoErr fails Rollback after journaling it.
func (j *journal) save(desc string, doErr, undoErr error) ActionFunc {
	return ActionFunc{
		Desc: desc,
		Do: func(context.Context) error {
			if doErr != nil {
				return doErr
			}
			j.add("save " + desc)
			return nil
		},
		Undo: func(context.Context) error {
			j.add("undo " + desc)
			return undoErr
		},
	}
}

func fetchBoardCounting(calls *int, b board.Board, err error) func(context.Context) (board.Board, error) {
	return func(context.Context) (board.Board, error) {
		*calls++
		return b, err
	}
}

func TestGetOrFetch_FetchesOncePerKey(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("board 9 not found")

	tests := []struct {
		name    string
		board   board.Board
		err     error
		lookups int
	}{
		{name: "found board is memoized", board: board.Board{ID: 7, Name: "Sprint 7"}, lookups: 3},
		{name: "missing board is memoized", err: errMissing, lookups: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := New(context.Background())
			calls := 0
			fetch := fetchBoardCounting(&calls, tt.board, tt.err)

			for range tt.lookups {
				got, err := GetOrFetch(rc, "board:7", fetch)
				if !errors.Is(err, tt.err) {
					t.Fatalf("GetOrFetch() error = %v, want %v", err, tt.err)
				}
				if got.Name != tt.board.Name {
					t.Fatalf("GetOrFetch() = %+v, want %+v", got, tt.board)
				}
			}
			if calls != 1 {
				t.Errorf("fetch called %d times, want 1", calls)
			}
		})
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "board:1", func(context.Context) (board.Board, error) {
		return board.Board{ID: 1}, nil
	})
	_, err := GetOrFetch(rc, "board:1", func(context.Context) (task.Task, error) {
		return task.Task{}, nil
	})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

func TestForget_Refetches(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetch := fetchBoardCounting(&calls, board.Board{ID: 2}, nil)

	_, _ = GetOrFetch(rc, "board:2", fetch)
	rc.Forget("board:2")
	_, _ = GetOrFetch(rc, "board:2", fetch)

	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
}

func TestDataProvider_Get(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	p := NewDataProvider("board:3:tasks", func(context.Context) (int, error) {
		calls++
		return 5, nil
	})

	for range 3 {
		if n, err := p.Get(rc); err != nil || n != 5 {
			t.Fatalf("Get() = %d, %v; want 5, nil", n, err)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("FromContext(empty) = %v, want nil", got)
	}

	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)
	if FromContext(ctx) != rc || From(ctx) != rc {
		t.Fatal("installed RequestContext not returned")
	}

	// Background jobs get a private context each time.
	if a, b := From(context.Background()), From(context.Background()); a == nil || a == b {
		t.Fatal("From() without an installed context must return a fresh RequestContext")
	}
}

func TestStage_LaterLookupsSeeStagedTask(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var j journal

	_, _ = GetOrFetch(rc, "task:4", func(context.Context) (task.Task, error) {
		return task.Task{ID: 4, Status: task.StatusTodo}, nil
	})
	staged := task.Task{ID: 4, Status: task.StatusDoing}
	if err := rc.Stage("task:4", staged, j.save("task 4", nil, nil)); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	got, err := GetOrFetch(rc, "task:4", func(context.Context) (task.Task, error) {
		t.Fatal("staged key was refetched")
		return task.Task{}, nil
	})
	if err != nil || got.Status != task.StatusDoing {
		t.Fatalf("GetOrFetch() = %+v, %v; want the staged DOING task", got, err)
	}
}

func TestAddAction_Rejections(t *testing.T) {
	t.Parallel()
	var j journal

	rc := New(context.Background())
	if err := rc.AddAction(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("AddAction(nil) error = %v, want ErrNilAction", err)
	}

	_ = rc.Commit(context.Background())
	if err := rc.AddAction(j.save("late", nil, nil)); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction() after Commit error = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Stage("task:1", task.Task{}, j.save("late", nil, nil)); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Stage() after Commit error = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("second Commit() error = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddAction_Concurrent(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var j journal

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_ = rc.AddAction(j.save("task", nil, nil))
		})
	}
	wg.Wait()

	if n := len(rc.Pending()); n != 50 {
		t.Fatalf("Pending() has %d actions, want 50", n)
	}
}

func TestCommit(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk I/O error")

	tests := []struct {
		name    string
		stage   func(*journal) []ActionFunc
		wantErr error
		want    []string
	}{
		{
			name:  "nothing staged",
			stage: func(*journal) []ActionFunc { return nil },
		},
		{
			name: "runs in staging order",
			stage: func(j *journal) []ActionFunc {
				return []ActionFunc{j.save("board 1", nil, nil), j.save("task 4", nil, nil), j.save("task 5", nil, nil)}
			},
			want: []string{"save board 1", "save task 4", "save task 5"},
		},
		{
			name: "failure unwinds completed writes in reverse",
			stage: func(j *journal) []ActionFunc {
				return []ActionFunc{
					j.save("board 1", nil, nil),
					j.save("task 4", nil, errors.New("undo failed")),
					j.save("task 5", errDisk, nil),
					j.save("task 6", nil, nil),
				}
			},
			wantErr: errDisk,
			want:    []string{"save board 1", "save task 4", "undo task 4", "undo board 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := New(context.Background())
			var j journal
			for _, a := range tt.stage(&j) {
				if err := rc.AddAction(a); err != nil {
					t.Fatalf("AddAction() error = %v", err)
				}
			}

			err := rc.Commit(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Commit() error = %v, want %v", err, tt.wantErr)
			}
			if !slices.Equal(j.entries, tt.want) {
				t.Errorf("journal = %v, want %v", j.entries, tt.want)
			}
			if rc.Pending() != nil {
				t.Errorf("Pending() after Commit = %v, want nil", rc.Pending())
			}
		})
	}
}

func TestPending_DescribesStagedWrites(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var j journal

	if got := rc.Pending(); got != nil {
		t.Fatalf("Pending() = %v, want nil", got)
	}
	_ = rc.AddAction(j.save("task 4", nil, nil))
	_ = rc.AddAction(j.save("board 1", nil, nil))

	if got, want := rc.Pending(), []string{"task 4", "board 1"}; !slices.Equal(got, want) {
		t.Errorf("Pending() = %v, want %v", got, want)
	}
}

func TestActionFunc_NilUndo(t *testing.T) {
	t.Parallel()

	a := ActionFunc{Desc: "noop", Do: func(context.Context) error { return nil }}
	if err := a.Rollback(context.Background()); err != nil {
		t.Fatalf("Rollback() with nil Undo = %v, want nil", err)
	}
	if a.Description() != "noop" {
		t.Errorf("Description() = %q, want noop", a.Description())
	}
}
