package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// ServiceName identifies the taskboard backend in traces, metrics and
// health reports.
const ServiceName = "taskboard-api"

const defaultFanoutWorkers = 4

// Compile-time interface checks.
var (
	_ ports.AuthClient     = (*AuthClient)(nil)
	_ ports.ProjectClient  = (*ProjectClient)(nil)
	_ ports.TaskListClient = (*TaskListClient)(nil)
	_ ports.TaskClient     = (*TaskClient)(nil)
	_ ports.UserClient     = (*UserClient)(nil)
	_ ports.HealthChecker  = (*Backend)(nil)
)

// Backend groups the ACL clients of the taskboard backend. All of them share
// one [Requester] and therefore one circuit breaker, rate limiter and
// connection pool.
//
// HTTP errors are mapped to domain errors (ErrNotFound, ErrValidation, ...)
// by [TranslateHTTPError]; transport failures become domain.ErrUnavailable.
type Backend struct {
	Auth      *AuthClient
	Projects  *ProjectClient
	TaskLists *TaskListClient
	Tasks     *TaskClient
	Users     *UserClient

	req *Requester
}

// BackendOption configures a Backend.
type BackendOption func(*backendOptions)

type backendOptions struct {
	fanoutWorkers int
}

// WithFanoutWorkers bounds the concurrent requests a single client call may
// issue (tasks of several lists, moving a whole list).
func WithFanoutWorkers(n int) BackendOption {
	return func(o *backendOptions) {
		if n > 0 {
			o.fanoutWorkers = n
		}
	}
}

// NewBackend creates the backend clients on top of client, whose BaseURL
// should point at the backend root (e.g. "http://localhost:3000").
func NewBackend(client *httpclient.Client, logger *slog.Logger, opts ...BackendOption) *Backend {
	o := backendOptions{fanoutWorkers: defaultFanoutWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	req := NewRequester(client, logger)
	return &Backend{
		Auth:      &AuthClient{req: req},
		Projects:  &ProjectClient{req: req},
		TaskLists: &TaskListClient{req: req, workers: o.fanoutWorkers},
		Tasks:     &TaskClient{req: req, workers: o.fanoutWorkers},
		Users:     &UserClient{req: req, workers: o.fanoutWorkers},
		req:       req,
	}
}

// Name returns the identifier used when the backend is registered with a
// [ports.HealthRegistry].
func (b *Backend) Name() string {
	return ServiceName
}

// HealthCheck reports the backend's availability based on the circuit
// breaker state. No network call is made.
//
// State mapping:
//   - "closed"    -- backend is operating normally; returns nil.
//   - "half-open" -- circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      -- backend is unavailable and the breaker is rejecting
//     requests; returns a descriptive error indicating failure.
func (b *Backend) HealthCheck(_ context.Context) error {
	switch state := b.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", ServiceName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", ServiceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", ServiceName, state)
	}
}
