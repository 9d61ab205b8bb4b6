// Package queue publishes task assignment notifications to an Azure Storage
// queue so that other services can consume them.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var (
	_ ports.AssignmentSink = (*Sink)(nil)
	_ ports.HealthChecker  = (*Sink)(nil)
)

// ErrNotConfigured is returned by New when the connection string or queue
// name is empty.
var ErrNotConfigured = errors.New("queue: connection string and queue name are required")

// Client is the subset of *azqueue.QueueClient the sink uses.
type Client interface {
	EnqueueMessage(ctx context.Context, content string, o *azqueue.EnqueueMessageOptions) (azqueue.EnqueueMessagesResponse, error)
	GetProperties(ctx context.Context, o *azqueue.GetQueuePropertiesOptions) (azqueue.GetQueuePropertiesResponse, error)
}

// Message is the queue message body. Version lets consumers reject
// envelopes they do not understand.
type Message struct {
	Version    int        `json:"version"`
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	TaskID     int64      `json:"taskId"`
	BoardID    int64      `json:"boardId"`
	UserID     int64      `json:"userId"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	AssignedAt time.Time  `json:"assignedAt"`
}

const (
	messageVersion = 1
	messageType    = "task-assigned"
)

// Options configures New.
type Options struct {
	ConnectionString string
	QueueName        string
	MaxRetries       int32
}

// Sink enqueues one message per assignment.
type Sink struct {
	client Client
	name   string
}

// New builds a Sink backed by an azqueue client created from the
// connection string.
func New(opts Options) (*Sink, error) {
	if opts.ConnectionString == "" || opts.QueueName == "" {
		return nil, ErrNotConfigured
	}

	clientOpts := azqueue.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    opts.MaxRetries,
				TryTimeout:    30 * time.Second,
				RetryDelay:    time.Second,
				MaxRetryDelay: 15 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	qc, err := azqueue.NewQueueClientFromConnectionString(opts.ConnectionString, opts.QueueName, &clientOpts)
	if err != nil {
		return nil, fmt.Errorf("queue: creating client for %s: %w", opts.QueueName, err)
	}
	return NewWithClient(qc, opts.QueueName), nil
}

// NewWithClient wraps an existing client. queueName is used in errors only.
func NewWithClient(c Client, queueName string) *Sink {
	return &Sink{client: c, name: queueName}
}

// Name returns "queue".
func (s *Sink) Name() string { return "queue" }

// Deliver enqueues a as a versioned JSON message.
func (s *Sink) Deliver(ctx context.Context, a task.Assignment) error {
	data, err := sonic.Marshal(NewMessage(a))
	if err != nil {
		return fmt.Errorf("queue: encoding notification %s: %w", a.ID, err)
	}
	if _, err := s.client.EnqueueMessage(ctx, string(data), nil); err != nil {
		return fmt.Errorf("queue: enqueueing notification %s on %s: %w", a.ID, s.name, err)
	}
	return nil
}

// HealthCheck reads the queue properties.
func (s *Sink) HealthCheck(ctx context.Context) error {
	if _, err := s.client.GetProperties(ctx, nil); err != nil {
		return fmt.Errorf("queue %s: %w", s.name, err)
	}
	return nil
}

// NewMessage converts an assignment into its queue envelope.
func NewMessage(a task.Assignment) Message {
	return Message{
		Version:    messageVersion,
		ID:         a.ID,
		Type:       messageType,
		TaskID:     a.TaskID,
		BoardID:    a.BoardID,
		UserID:     a.UserID,
		Title:      a.Title,
		Status:     a.Status.String(),
		DueDate:    a.DueDate,
		AssignedAt: a.AssignedAt,
	}
}
