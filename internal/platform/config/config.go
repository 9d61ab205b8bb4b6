// Package config provides configuration loading and validation for the service.
// Configuration is loaded from built-in defaults, YAML files and environment
// variable overrides: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"slices"
	"time"
)

// Notification sink names accepted in notify.sinks.
const (
	SinkLog     = "log"
	SinkWebhook = "webhook"
	SinkQueue   = "queue"
)

// Config holds all configuration for the service.
type Config struct {
	// Profile is the name Load was called with.
	Profile string `koanf:"-"`

	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Notify    NotifyConfig    `koanf:"notify"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path         string        `koanf:"path"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CacheConfig holds the Redis board cache settings. A disabled cache reads
// boards straight from the database.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

// NotifyConfig holds assignment notification settings.
type NotifyConfig struct {
	QueueSize       int           `koanf:"queue_size"`
	Workers         int           `koanf:"workers"`
	DeliveryTimeout time.Duration `koanf:"delivery_timeout"`
	Sinks           []string      `koanf:"sinks"`
	Webhook         WebhookConfig `koanf:"webhook"`
	Queue           QueueConfig   `koanf:"queue"`
}

// HasSink reports whether name is listed in Sinks.
func (n *NotifyConfig) HasSink(name string) bool {
	return slices.Contains(n.Sinks, name)
}

// WebhookConfig holds the outbound webhook sink settings.
type WebhookConfig struct {
	Path   string       `koanf:"path"`
	Client ClientConfig `koanf:"client"`
}

// QueueConfig holds the Azure Storage queue sink settings.
type QueueConfig struct {
	ConnectionString string `koanf:"connection_string"`
	Name             string `koanf:"name"`
	MaxRetries       int32  `koanf:"max_retries"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side token bucket settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// SchedulerConfig holds background job settings. OverdueSweep is a cron
// spec with a leading seconds field.
type SchedulerConfig struct {
	Enabled      bool   `koanf:"enabled"`
	OverdueSweep string `koanf:"overdue_sweep"`
}
