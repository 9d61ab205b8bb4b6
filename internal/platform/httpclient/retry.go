package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by up to ±25%.
const jitterFraction = 0.25

// attemptOutcome is the result of one round trip that doWithRetry keeps.
type attemptOutcome struct {
	resp       *http.Response
	err        error
	retryAfter time.Duration
}

// doWithRetry sends req up to maxAttempts times. Transport failures other
// than context errors and retryable statuses are retried after backoff, or
// after the receiver's Retry-After on 429 and 503. The final response is
// written to resp with its body open, even when err reports the status.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	replay, err := replayableBody(req)
	if err != nil {
		return err
	}

	var last attemptOutcome
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if last.resp != nil {
				discard(last.resp)
			}
			if err := c.waitForRetry(ctx, req, attempt, last); err != nil {
				return err
			}
		}
		replay(req)

		last = c.attempt(req)
		if last.resp == nil && !isRetryable(last.err) {
			return last.err
		}
		if last.err == nil {
			*resp = last.resp
			return nil
		}
	}

	*resp = last.resp
	return last.err
}

// attempt performs one round trip. A response with a retryable status is
// returned together with an error describing it.
func (c *Client) attempt(req *http.Request) attemptOutcome {
	r, err := c.httpClient.Do(req)
	if err != nil {
		return attemptOutcome{err: err}
	}
	if !isRetryableStatus(r.StatusCode) {
		return attemptOutcome{resp: r}
	}

	out := attemptOutcome{resp: r, err: fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)}
	if r.StatusCode == http.StatusTooManyRequests || r.StatusCode == http.StatusServiceUnavailable {
		out.retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
	}
	return out
}

// replayableBody buffers req's body and returns a func that rewinds it
// before each attempt.
func replayableBody(req *http.Request) (func(*http.Request), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func(*http.Request) {}, nil
	}

	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return func(r *http.Request) {
		r.Body = io.NopCloser(bytes.NewReader(buf))
		r.ContentLength = int64(len(buf))
	}, nil
}

// discard drains and closes a response body so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the upcoming attempt at WARN and sleeps until it is due
// or ctx ends.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, last attemptOutcome) error {
	delay := c.retryCfg.delay(attempt, last.retryAfter)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", last.err),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// delay is the wait before the given retry (1 for the first retry). A
// positive hint from Retry-After wins over backoff but is capped at
// maxInterval.
func (p retryConfig) delay(attempt int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.maxInterval)
	}
	return backoff(attempt, p)
}

// backoff is initialInterval * multiplier^(attempt-1), capped at maxInterval,
// then jittered by ±jitterFraction.
func backoff(attempt int, p retryConfig) time.Duration {
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// parseRetryAfter reads a Retry-After value given either as delta seconds or
// as an HTTP date relative to now. Invalid or past values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Only the caller's own cancellation or deadline is final.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a webhook or upstream answer is worth
// another attempt: 429 and every 5xx except 501, which will not change.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented:
		return false
	}
	return statusCode >= http.StatusInternalServerError
}
