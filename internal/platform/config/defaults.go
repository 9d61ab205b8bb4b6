package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	defaultNotifyQueueSize = 256
	defaultNotifyWorkers   = 4
	defaultQueueMaxRetries = 3
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "kanban-service",

		"database.path":          "kanban.db",
		"database.busy_timeout":  "5s",
		"database.query_timeout": "5s",

		"cache.enabled": false,
		"cache.addr":    "localhost:6379",
		"cache.db":      0,
		"cache.ttl":     "5m",

		"notify.queue_size":       defaultNotifyQueueSize,
		"notify.workers":          defaultNotifyWorkers,
		"notify.delivery_timeout": "10s",
		"notify.sinks":            []string{SinkLog},

		"notify.webhook.path": "/notifications",

		"notify.webhook.client.base_url":               "http://localhost:8081",
		"notify.webhook.client.timeout":                "30s",
		"notify.webhook.client.retry.max_attempts":     defaultRetryMaxAttempts,
		"notify.webhook.client.retry.initial_interval": "100ms",
		"notify.webhook.client.retry.max_interval":     "10s",
		"notify.webhook.client.retry.multiplier":       defaultRetryMultiplier,

		"notify.webhook.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notify.webhook.client.circuit_breaker.timeout":         "30s",
		"notify.webhook.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notify.webhook.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"notify.webhook.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"notify.queue.name":        "task-assignments",
		"notify.queue.max_retries": defaultQueueMaxRetries,

		"scheduler.enabled":       false,
		"scheduler.overdue_sweep": "0 */15 * * * *",
	}
}
