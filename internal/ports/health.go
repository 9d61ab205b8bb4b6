package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a failing dependency the service can run without, such
// as the Redis board cache or a notification sink. Readiness stays green
// when every failure wraps it.
var ErrDegraded = errors.New("degraded")

// HealthChecker is a dependency that can be probed: the SQLite store, the
// Redis cache or a remote notification sink.
type HealthChecker interface {
	// Name identifies the component in readiness output ("sqlite", "redis",
	// "webhook").
	Name() string

	// HealthCheck returns nil when the component is usable. It must honor
	// ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers behind GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns their errors by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
