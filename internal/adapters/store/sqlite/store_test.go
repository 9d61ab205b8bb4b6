package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
	"github.com/jsamuelsen11/kanban-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/domain/user"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{
		Path:        filepath.Join(t.TempDir(), "kanban.db"),
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func mustBoard(t *testing.T, s *BoardStore, name string) *board.Board {
	t.Helper()
	b, err := s.Save(context.Background(), &board.Board{Name: name, Status: board.StatusActive})
	if err != nil {
		t.Fatalf("Save(board %q) error = %v", name, err)
	}
	return b
}

func mustTask(t *testing.T, s *TaskStore, tk task.Task) *task.Task {
	t.Helper()
	if tk.Description == "" {
		tk.Description = "a sufficiently long description"
	}
	if tk.Status == "" {
		tk.Status = task.StatusTodo
	}
	saved, err := s.Save(context.Background(), &tk)
	if err != nil {
		t.Fatalf("Save(task %q) error = %v", tk.Title, err)
	}
	return saved
}

func ptr[T any](v T) *T { return &v }

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "foreign keys only", opts: Options{Path: "kanban.db"}, want: "kanban.db?_foreign_keys=on"},
		{name: "with busy timeout", opts: Options{Path: "kanban.db", BusyTimeout: 5 * time.Second}, want: "kanban.db?_busy_timeout=5000&_foreign_keys=on"},
		{name: "existing query", opts: Options{Path: "file::memory:?cache=shared"}, want: "file::memory:?cache=shared&_foreign_keys=on"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dsn(tt.opts); got != tt.want {
				t.Errorf("dsn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()
	if _, err := Open(Options{}); err == nil {
		t.Fatal("Open() error = nil, want error for empty path")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if db.Name() != "sqlite" {
		t.Errorf("Name() = %q, want sqlite", db.Name())
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestBoardStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBoardStore(newTestDB(t))

	b := mustBoard(t, s, "Release 1.0")
	if b.ID == 0 {
		t.Fatal("Save() did not assign an ID")
	}

	b.Name = "Release 1.1"
	b.Status = board.StatusCompleted
	if _, err := s.Save(ctx, b); err != nil {
		t.Fatalf("Save(update) error = %v", err)
	}

	got, err := s.FindByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Name != "Release 1.1" || got.Status != board.StatusCompleted {
		t.Errorf("FindByID() = %+v, want updated name and status", got)
	}

	if err := s.DeleteByID(ctx, b.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if _, err := s.FindByID(ctx, b.ID); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrBoardNotFound", err)
	}
	if err := s.DeleteByID(ctx, b.ID); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("DeleteByID() twice error = %v, want ErrBoardNotFound", err)
	}
	if _, err := s.Save(ctx, &board.Board{ID: 999, Name: "ghost", Status: board.StatusActive}); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("Save(missing id) error = %v, want ErrBoardNotFound", err)
	}
}

func TestBoardStore_FindByNameContains(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBoardStore(newTestDB(t))

	mustBoard(t, s, "Sprint Alpha")
	mustBoard(t, s, "sprint beta")
	mustBoard(t, s, "100% done")
	mustBoard(t, s, "Backlog")

	tests := []struct {
		query string
		want  int
	}{
		{query: "SPRINT", want: 2},
		{query: "alpha", want: 1},
		{query: "%", want: 1},
		{query: "_", want: 0},
		{query: "missing", want: 0},
	}
	for _, tt := range tests {
		got, err := s.FindByNameContains(ctx, tt.query)
		if err != nil {
			t.Fatalf("FindByNameContains(%q) error = %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("FindByNameContains(%q) returned %d boards, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestBoardStore_StatusQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewBoardStore(newTestDB(t))

	a := mustBoard(t, s, "Board A")
	mustBoard(t, s, "Board B")

	if err := s.UpdateStatus(ctx, a.ID, board.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := s.UpdateStatus(ctx, 404, board.StatusCompleted); !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("UpdateStatus(missing) error = %v, want ErrBoardNotFound", err)
	}

	completed, err := s.FindByStatus(ctx, board.StatusCompleted)
	if err != nil {
		t.Fatalf("FindByStatus() error = %v", err)
	}
	if len(completed) != 1 || completed[0].ID != a.ID {
		t.Errorf("FindByStatus(COMPLETED) = %+v, want only board %d", completed, a.ID)
	}

	all, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("FindAll() returned %d boards, want 2", len(all))
	}
}

func TestBoardStore_TaskAggregates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	boards, tasks := NewBoardStore(db), NewTaskStore(db)

	b := mustBoard(t, boards, "Aggregates")

	done, err := boards.AreAllTasksDone(ctx, b.ID)
	if err != nil || !done {
		t.Fatalf("AreAllTasksDone(empty) = %v, %v; want true, nil", done, err)
	}
	if n, err := boards.CountTasks(ctx, b.ID); err != nil || n != 0 {
		t.Fatalf("CountTasks(empty) = %d, %v; want 0, nil", n, err)
	}

	first := mustTask(t, tasks, task.Task{Title: "First", BoardID: b.ID, Status: task.StatusDone, UserID: ptr(int64(1))})
	mustTask(t, tasks, task.Task{Title: "Second", BoardID: b.ID, Status: task.StatusDoing})

	if done, _ := boards.AreAllTasksDone(ctx, b.ID); done {
		t.Error("AreAllTasksDone() = true with a DOING task")
	}
	if n, _ := boards.CountTasks(ctx, b.ID); n != 2 {
		t.Errorf("CountTasks() = %d, want 2", n)
	}

	if err := boards.DeleteByID(ctx, b.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if _, err := tasks.FindByID(ctx, first.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("task survived board delete: FindByID() error = %v", err)
	}
}

func TestBoardStore_FindWithOverdueTasks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	boards, tasks := NewBoardStore(db), NewTaskStore(db)

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	late := mustBoard(t, boards, "Late")
	finished := mustBoard(t, boards, "Finished")
	future := mustBoard(t, boards, "Future")
	undated := mustBoard(t, boards, "Undated")

	mustTask(t, tasks, task.Task{Title: "Late one", BoardID: late.ID, DueDate: &yesterday})
	mustTask(t, tasks, task.Task{Title: "Late two", BoardID: late.ID, DueDate: &yesterday, Status: task.StatusDoing})
	mustTask(t, tasks, task.Task{Title: "Shipped", BoardID: finished.ID, DueDate: &yesterday, Status: task.StatusDone, UserID: ptr(int64(2))})
	mustTask(t, tasks, task.Task{Title: "Upcoming", BoardID: future.ID, DueDate: &tomorrow})
	mustTask(t, tasks, task.Task{Title: "Someday", BoardID: undated.ID})

	got, err := boards.FindWithOverdueTasks(ctx, now)
	if err != nil {
		t.Fatalf("FindWithOverdueTasks() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != late.ID {
		t.Errorf("FindWithOverdueTasks() = %+v, want only board %d once", got, late.ID)
	}
}

func TestTaskStore_SaveTimestamps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	b := mustBoard(t, NewBoardStore(db), "Stamps")

	s := NewTaskStore(db)
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	saved := mustTask(t, s, task.Task{Title: "Stamped", BoardID: b.ID, UserID: ptr(int64(4))})
	if !saved.CreatedAt.Equal(created) || !saved.UpdatedAt.Equal(created) {
		t.Errorf("timestamps = %v/%v, want %v", saved.CreatedAt, saved.UpdatedAt, created)
	}
	if saved.UserID == nil || *saved.UserID != 4 {
		t.Errorf("UserID = %v, want 4", saved.UserID)
	}
	if saved.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", saved.DueDate)
	}

	updated := created.Add(time.Hour)
	s.now = func() time.Time { return updated }
	saved.Title = "Stamped again"
	saved.UserID = nil
	again, err := s.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save(update) error = %v", err)
	}
	if !again.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want unchanged %v", again.CreatedAt, created)
	}
	if !again.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", again.UpdatedAt, updated)
	}
	if again.UserID != nil {
		t.Errorf("UserID = %v, want cleared", *again.UserID)
	}
}

func TestTaskStore_SaveMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	b := mustBoard(t, NewBoardStore(db), "Missing")
	s := NewTaskStore(db)

	_, err := s.Save(ctx, &task.Task{Title: "Orphan", Description: "no such board here", Status: task.StatusTodo, BoardID: 999})
	if !errors.Is(err, domain.ErrBoardNotFound) {
		t.Errorf("Save(unknown board) error = %v, want ErrBoardNotFound", err)
	}

	_, err = s.Save(ctx, &task.Task{ID: 77, Title: "Ghost", Description: "never inserted here", Status: task.StatusTodo, BoardID: b.ID})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Save(unknown id) error = %v, want ErrTaskNotFound", err)
	}
	if err := s.DeleteByID(ctx, 77); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("DeleteByID(unknown) error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskStore_FindLastCreated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	b := mustBoard(t, NewBoardStore(db), "Latest")
	s := NewTaskStore(db)

	if _, err := s.FindLastCreated(ctx); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("FindLastCreated(empty) error = %v, want ErrTaskNotFound", err)
	}

	same := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return same }
	mustTask(t, s, task.Task{Title: "Tie one", BoardID: b.ID})
	second := mustTask(t, s, task.Task{Title: "Tie two", BoardID: b.ID})

	s.now = func() time.Time { return same.Add(-time.Hour) }
	mustTask(t, s, task.Task{Title: "Older", BoardID: b.ID})

	got, err := s.FindLastCreated(ctx)
	if err != nil {
		t.Fatalf("FindLastCreated() error = %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("FindLastCreated() = task %d, want %d", got.ID, second.ID)
	}
}

func TestTaskStore_FindByDueDateRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	b := mustBoard(t, NewBoardStore(db), "Due")
	s := NewTaskStore(db)

	day, err := task.ParseDay("2026-11-20", nil)
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	before := day.Start.Add(-time.Second)
	after := day.End.Add(time.Second)
	midday := day.Start.Add(12 * time.Hour)

	mustTask(t, s, task.Task{Title: "At start", BoardID: b.ID, DueDate: &day.Start})
	mustTask(t, s, task.Task{Title: "At midday", BoardID: b.ID, DueDate: &midday})
	mustTask(t, s, task.Task{Title: "At end", BoardID: b.ID, DueDate: &day.End})
	mustTask(t, s, task.Task{Title: "Day before", BoardID: b.ID, DueDate: &before})
	mustTask(t, s, task.Task{Title: "Day after", BoardID: b.ID, DueDate: &after})
	mustTask(t, s, task.Task{Title: "No date", BoardID: b.ID})

	got, err := s.FindByDueDateRange(ctx, day.Start, day.End)
	if err != nil {
		t.Fatalf("FindByDueDateRange() error = %v", err)
	}
	want := []string{"At start", "At midday", "At end"}
	if len(got) != len(want) {
		t.Fatalf("FindByDueDateRange() returned %d tasks, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("task[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestTaskStore_Queries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	boards := NewBoardStore(db)
	a, b := mustBoard(t, boards, "Board A"), mustBoard(t, boards, "Board B")
	s := NewTaskStore(db)

	alice := int64(1)
	mustTask(t, s, task.Task{Title: "Write docs", BoardID: a.ID, Status: task.StatusDoing, UserID: &alice})
	mustTask(t, s, task.Task{Title: "Review docs", BoardID: a.ID, Status: task.StatusDoing, UserID: &alice})
	mustTask(t, s, task.Task{Title: "Ship it", BoardID: a.ID, Status: task.StatusDone, UserID: &alice})
	mustTask(t, s, task.Task{Title: "Plan", BoardID: b.ID, Status: task.StatusDoing})

	if n, err := s.CountByUserAndStatus(ctx, alice, task.StatusDoing); err != nil || n != 2 {
		t.Errorf("CountByUserAndStatus(DOING) = %d, %v; want 2, nil", n, err)
	}
	if n, _ := s.CountByUserAndStatus(ctx, 99, task.StatusDoing); n != 0 {
		t.Errorf("CountByUserAndStatus(unknown user) = %d, want 0", n)
	}

	tests := []struct {
		name string
		find func() ([]task.Task, error)
		want int
	}{
		{name: "all", find: func() ([]task.Task, error) { return s.FindAll(ctx) }, want: 4},
		{name: "title contains DOCS", find: func() ([]task.Task, error) { return s.FindByTitleContains(ctx, "DOCS") }, want: 2},
		{name: "status DOING", find: func() ([]task.Task, error) { return s.FindByStatus(ctx, task.StatusDoing) }, want: 3},
		{name: "board A", find: func() ([]task.Task, error) { return s.FindByBoard(ctx, a.ID) }, want: 3},
		{name: "board A DOING", find: func() ([]task.Task, error) { return s.FindByBoardAndStatus(ctx, a.ID, task.StatusDoing) }, want: 2},
		{name: "board B DONE", find: func() ([]task.Task, error) { return s.FindByBoardAndStatus(ctx, b.ID, task.StatusDone) }, want: 0},
	}
	for _, tt := range tests {
		got, err := tt.find()
		if err != nil {
			t.Fatalf("%s: error = %v", tt.name, err)
		}
		if got == nil {
			t.Errorf("%s: got nil slice, want empty or populated", tt.name)
		}
		if len(got) != tt.want {
			t.Errorf("%s: got %d tasks, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestUserStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewUserStore(newTestDB(t))

	u, err := s.Save(ctx, &user.User{Name: "Ada Lovelace", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := s.Save(ctx, &user.User{Name: "Grace Hopper", Email: "grace@example.com"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	u.Email = "ada@analytical.engine"
	if _, err := s.Save(ctx, u); err != nil {
		t.Fatalf("Save(update) error = %v", err)
	}
	got, err := s.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Email != "ada@analytical.engine" {
		t.Errorf("Email = %q, want updated", got.Email)
	}

	found, err := s.FindByNameContains(ctx, "hopper")
	if err != nil || len(found) != 1 || found[0].Name != "Grace Hopper" {
		t.Errorf("FindByNameContains(hopper) = %+v, %v; want Grace Hopper", found, err)
	}

	if err := s.DeleteByID(ctx, u.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if _, err := s.FindByID(ctx, u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrUserNotFound", err)
	}
	all, _ := s.FindAll(ctx)
	if len(all) != 1 {
		t.Errorf("FindAll() returned %d users, want 1", len(all))
	}
}
