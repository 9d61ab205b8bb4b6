// Package webhook delivers task assignment notifications to an HTTP endpoint.
//
// Each notification is POSTed as JSON through the instrumented
// [httpclient.Client], so delivery gets circuit breaking, retries, rate
// limiting and tracing. Non-2xx responses are mapped to domain errors.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jsamuelsen11/kanban-service/internal/domain/task"
	"github.com/jsamuelsen11/kanban-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var (
	_ ports.AssignmentSink = (*Sink)(nil)
	_ ports.HealthChecker  = (*Sink)(nil)
)

// Payload is the JSON body sent to the receiver.
type Payload struct {
	ID         string     `json:"id"`
	Event      string     `json:"event"`
	TaskID     int64      `json:"task_id"`
	BoardID    int64      `json:"board_id"`
	UserID     int64      `json:"user_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	AssignedAt time.Time  `json:"assigned_at"`
}

// EventTaskAssigned is the Payload.Event value for assignment notifications.
const EventTaskAssigned = "task.assigned"

// Sink posts assignments to path on the client's base URL.
type Sink struct {
	client *httpclient.Client
	path   string
	logger *slog.Logger
}

// NewSink creates a Sink. The client's service name doubles as the sink and
// health check name.
func NewSink(client *httpclient.Client, path string, logger *slog.Logger) *Sink {
	return &Sink{client: client, path: path, logger: logger}
}

// Name returns the underlying client's service name.
func (s *Sink) Name() string { return s.client.Name() }

// HealthCheck reports the client's circuit breaker state.
func (s *Sink) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// Deliver posts a to the receiver. Any 2xx status is success.
func (s *Sink) Deliver(ctx context.Context, a task.Assignment) error {
	body, err := sonic.Marshal(NewPayload(a))
	if err != nil {
		return fmt.Errorf("webhook: encoding notification %s: %w", a.ID, err)
	}

	// Retries resend the same key so receivers can drop duplicates.
	header := http.Header{
		"Idempotency-Key": {a.ID},
		"X-Kanban-Event":  {EventTaskAssigned},
	}
	resp, err := s.client.PostJSON(ctx, s.path, body, header)
	if resp != nil {
		defer s.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still carry the response.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return TranslateHTTPError(resp)
		}
		return fmt.Errorf("webhook: posting notification %s: %w", a.ID, err)
	}
	if !isSuccess(resp.StatusCode) {
		return TranslateHTTPError(resp)
	}
	return nil
}

// NewPayload converts an assignment into its wire form.
func NewPayload(a task.Assignment) Payload {
	return Payload{
		ID:         a.ID,
		Event:      EventTaskAssigned,
		TaskID:     a.TaskID,
		BoardID:    a.BoardID,
		UserID:     a.UserID,
		Title:      a.Title,
		Status:     a.Status.String(),
		DueDate:    a.DueDate,
		AssignedAt: a.AssignedAt,
	}
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func (s *Sink) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
