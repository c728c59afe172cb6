package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// problems collects validation failures for one Validate call.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.check(slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level),
		"log.level must be one of: debug, info, warn, error; got %q", c.Log.Level)
	p.check(slices.Contains([]string{"json", "text"}, c.Log.Format),
		"log.format must be one of: json, text; got %q", c.Log.Format)

	cl := c.Client
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.InitialInterval <= cl.Retry.MaxInterval,
		"client.retry.initial_interval must not exceed client.retry.max_interval")
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must be >= 0, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when limiting, got %d", cl.RateLimit.BurstSize)

	if t := c.Telemetry; t.Enabled {
		p.check(t.Exporter == "stdout" || t.Exporter == "otlp",
			"telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
		p.check(t.Exporter != "otlp" || t.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	s := c.Store
	p.check(s.QueueSize >= 1, "store.queue_size must be >= 1, got %d", s.QueueSize)
	p.check(s.EffectTimeout >= 0, "store.effect_timeout must not be negative")
	p.check(s.ShutdownTimeout >= 0, "store.shutdown_timeout must not be negative")
	p.check(s.FanoutWorkers >= 1, "store.fanout_workers must be >= 1, got %d", s.FanoutWorkers)
	p.check(s.HistorySize >= 1, "store.history_size must be >= 1, got %d", s.HistorySize)
	for i, name := range s.DefaultTaskLists {
		p.check(strings.TrimSpace(name) != "", "store.default_task_lists[%d] must not be blank", i)
	}

	return errors.Join(p...)
}
