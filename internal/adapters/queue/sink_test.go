package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/queue"
	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
)

type fakeQueue struct {
	mu       sync.Mutex
	messages []string
	err      error
	propsErr error
}

func (f *fakeQueue) EnqueueMessage(_ context.Context, content string, _ *azqueue.EnqueueMessageOptions) (azqueue.EnqueueMessagesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return azqueue.EnqueueMessagesResponse{}, f.err
	}
	f.messages = append(f.messages, content)
	return azqueue.EnqueueMessagesResponse{}, nil
}

func (f *fakeQueue) GetProperties(_ context.Context, _ *azqueue.GetQueuePropertiesOptions) (azqueue.GetQueuePropertiesResponse, error) {
	return azqueue.GetQueuePropertiesResponse{}, f.propsErr
}

func TestSink_Deliver(t *testing.T) {
	t.Parallel()

	fq := &fakeQueue{}
	s := queue.NewWithClient(fq, "task-assignments")

	a := task.Assignment{
		ID: "n-9", TaskID: 3, BoardID: 1, UserID: 5, Title: "Triage",
		Status: task.StatusTodo, AssignedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.Deliver(context.Background(), a); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	if len(fq.messages) != 1 {
		t.Fatalf("enqueued %d messages, want 1", len(fq.messages))
	}
	var got queue.Message
	if err := sonic.UnmarshalString(fq.messages[0], &got); err != nil {
		t.Fatalf("decoding message: %v", err)
	}
	if got.Version != 1 || got.Type != "task-assigned" {
		t.Errorf("envelope = v%d %q, want v1 task-assigned", got.Version, got.Type)
	}
	if got.ID != "n-9" || got.TaskID != 3 || got.UserID != 5 || got.Status != "TODO" {
		t.Errorf("message = %+v, want assignment n-9 of task 3 to user 5", got)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
}

func TestSink_DeliverError(t *testing.T) {
	t.Parallel()

	throttled := errors.New("throttled")
	s := queue.NewWithClient(&fakeQueue{err: throttled}, "task-assignments")

	err := s.Deliver(context.Background(), task.Assignment{ID: "n-1", TaskID: 1, UserID: 1})
	if !errors.Is(err, throttled) {
		t.Fatalf("Deliver() error = %v, want wrapped %v", err, throttled)
	}
}

func TestSink_HealthCheck(t *testing.T) {
	t.Parallel()

	if err := queue.NewWithClient(&fakeQueue{}, "q").HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}

	down := errors.New("no such queue")
	err := queue.NewWithClient(&fakeQueue{propsErr: down}, "q").HealthCheck(context.Background())
	if !errors.Is(err, down) {
		t.Errorf("HealthCheck() error = %v, want wrapped %v", err, down)
	}
}

func TestNew_RequiresConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts queue.Options
	}{
		{name: "missing connection string", opts: queue.Options{QueueName: "q"}},
		{name: "missing queue name", opts: queue.Options{ConnectionString: "UseDevelopmentStorage=true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := queue.New(tt.opts); !errors.Is(err, queue.ErrNotConfigured) {
				t.Errorf("New() error = %v, want ErrNotConfigured", err)
			}
		})
	}
}

func TestNew_BuildsClientFromConnectionString(t *testing.T) {
	t.Parallel()

	connStr := "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;" +
		"AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;" +
		"QueueEndpoint=http://127.0.0.1:10001/devstoreaccount1;"
	s, err := queue.New(queue.Options{ConnectionString: connStr, QueueName: "task-assignments", MaxRetries: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Name() != "queue" {
		t.Errorf("Name() = %q, want queue", s.Name())
	}
}
