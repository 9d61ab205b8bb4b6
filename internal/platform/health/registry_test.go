package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-service/internal/platform/health"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
	"github.com/jsamuelsen11/kanban-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	locked := errors.New("database is locked")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []ports.HealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []ports.HealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "sqlite", nil), checker(t, "redis", nil)}
			},
			want: map[string]error{"sqlite": nil, "redis": nil},
		},
		{
			name: "one failing",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "sqlite", locked), checker(t, "webhook", nil)}
			},
			want: map[string]error{"sqlite": locked, "webhook": nil},
		},
		{
			name: "duplicate name keeps the last registered",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "sqlite", nil), checker(t, "sqlite", locked)}
			},
			want: map[string]error{"sqlite": locked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() returned nil map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				if !errors.Is(got[name], want) {
					t.Errorf("%s = %v, want %v", name, got[name], want)
				}
			}
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("webhook")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	if got := r.CheckAll(ctx)["webhook"]; !errors.Is(got, context.Canceled) {
		t.Errorf("webhook = %v, want context.Canceled", got)
	}
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("redis")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "sqlite", nil))

	results := r.CheckAll(context.Background())

	if !errors.Is(results["redis"], context.DeadlineExceeded) {
		t.Errorf("redis = %v, want context.DeadlineExceeded", results["redis"])
	}
	if results["sqlite"] != nil {
		t.Errorf("sqlite = %v, want nil", results["sqlite"])
	}
}

func TestCheckAll_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("webhook").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}

func TestOptional(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	opt := health.Optional(checker(t, "redis", refused))

	if opt.Name() != "redis" {
		t.Errorf("Name() = %q, want %q", opt.Name(), "redis")
	}
	err := opt.HealthCheck(context.Background())
	if !errors.Is(err, ports.ErrDegraded) {
		t.Errorf("HealthCheck() = %v, want ports.ErrDegraded", err)
	}
	if !errors.Is(err, refused) {
		t.Errorf("HealthCheck() = %v, want the underlying error kept", err)
	}

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil).Once()
	if err := health.Optional(healthy).HealthCheck(context.Background()); err != nil {
		t.Errorf("healthy optional checker returned %v", err)
	}
}
