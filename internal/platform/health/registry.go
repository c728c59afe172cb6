// Package health tracks the health of the components the taskboard process
// depends on: the store's dispatch loop and the backend API client. The
// readiness endpoint reports the aggregated result.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Func{}
)

// Func adapts a plain function to [ports.HealthChecker].
type Func struct {
	CheckName string
	Check     func(ctx context.Context) error
}

// NewFunc returns a checker named name that runs check.
func NewFunc(name string, check func(ctx context.Context) error) Func {
	return Func{CheckName: name, Check: check}
}

// Name returns the checker name.
func (f Func) Name() string { return f.CheckName }

// HealthCheck runs the wrapped function. A nil function is healthy.
func (f Func) HealthCheck(ctx context.Context) error {
	if f.Check == nil {
		return nil
	}
	return f.Check(ctx)
}

// Registry implements [ports.HealthRegistry]; it is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker to every later CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results
// keyed by checker name. Nil values indicate healthy components. When two
// checkers share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { errs[i] = c.HealthCheck(ctx) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// Healthy reports whether every result is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
