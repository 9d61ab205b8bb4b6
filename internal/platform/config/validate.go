package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	rcron "github.com/robfig/cron/v3"
)

// cronSpecFields matches the parser the overdue sweep scheduler is built with.
const cronSpecFields = rcron.SecondOptional | rcron.Minute | rcron.Hour | rcron.Dom | rcron.Month | rcron.Dow | rcron.Descriptor

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
	sinkNames  = []string{SinkLog, SinkWebhook, SinkQueue}
)

// problems collects every violation in a section so Validate can report
// them all at once.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, strings.ToLower(got)),
		"%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error { return errors.Join(p...) }

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Cache.validate(),
		c.Notify.validate(),
		c.Scheduler.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.IdleTimeout >= 0, "server.idle_timeout must not be negative")
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	return p.err()
}

func (d *DatabaseConfig) validate() error {
	var p problems
	p.check(d.Path != "", "database.path must not be empty")
	p.check(d.BusyTimeout >= 0, "database.busy_timeout must not be negative")
	p.check(d.QueryTimeout > 0, "database.query_timeout must be positive")
	return p.err()
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	var p problems
	p.check(c.Addr != "", "cache.addr must not be empty when the cache is enabled")
	p.check(c.TTL > 0, "cache.ttl must be positive")
	p.check(c.DB >= 0, "cache.db must not be negative, got %d", c.DB)
	return p.err()
}

func (n *NotifyConfig) validate() error {
	var p problems
	p.check(n.QueueSize >= 1, "notify.queue_size must be >= 1, got %d", n.QueueSize)
	p.check(n.Workers >= 1, "notify.workers must be >= 1, got %d", n.Workers)
	p.check(n.DeliveryTimeout > 0, "notify.delivery_timeout must be positive")
	for _, s := range n.Sinks {
		p.check(slices.Contains(sinkNames, s),
			"notify.sinks entries must be one of: %s; got %q", strings.Join(sinkNames, ", "), s)
	}

	if n.HasSink(SinkWebhook) {
		if err := n.Webhook.Client.validate("notify.webhook.client"); err != nil {
			p = append(p, err)
		}
	}
	if n.HasSink(SinkQueue) {
		p.check(n.Queue.ConnectionString != "", "notify.queue.connection_string must not be empty when the queue sink is enabled")
		p.check(n.Queue.Name != "", "notify.queue.name must not be empty when the queue sink is enabled")
	}
	return p.err()
}

func (cl *ClientConfig) validate(prefix string) error {
	var p problems
	p.check(cl.BaseURL != "", "%s.base_url must not be empty", prefix)
	p.check(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.check(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1, "%s.circuit_breaker.max_failures must be >= 1, got %d",
		prefix, cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", prefix)
	return p.err()
}

func (s *SchedulerConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	if _, err := rcron.NewParser(cronSpecFields).Parse(s.OverdueSweep); err != nil {
		return fmt.Errorf("scheduler.overdue_sweep is not a valid cron spec: %w", err)
	}
	return nil
}
