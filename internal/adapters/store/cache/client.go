package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

var _ ports.HealthChecker = (*Health)(nil)

// Options configures NewClient.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client. Addr may also be a redis:// URL.
func NewClient(opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, errors.New("cache: redis address is required")
	}
	ro, err := redis.ParseURL(opts.Addr)
	if err != nil {
		ro = &redis.Options{Addr: opts.Addr}
	}
	if opts.Password != "" {
		ro.Password = opts.Password
	}
	if opts.DB != 0 {
		ro.DB = opts.DB
	}
	return redis.NewClient(ro), nil
}

// Health reports Redis reachability to the readiness endpoint.
type Health struct {
	client *redis.Client
}

// NewHealth creates a Health check for client.
func NewHealth(client *redis.Client) *Health {
	return &Health{client: client}
}

// Name returns "redis".
func (h *Health) Name() string { return "redis" }

// HealthCheck pings Redis.
func (h *Health) HealthCheck(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
