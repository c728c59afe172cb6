package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about: the store's
// dispatch loop and the taskboard backend.
type HealthChecker interface {
	// Name keys the checker's result in the readiness response.
	Name() string

	// HealthCheck returns nil when the component can serve requests. It
	// must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns their errors by name; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
