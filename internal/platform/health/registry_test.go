package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard/internal/platform/health"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/mocks"
)

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errOpen := errors.New("circuit breaker is open")

	tests := []struct {
		name        string
		checks      map[string]error
		wantHealthy bool
	}{
		{"nothing registered", map[string]error{}, true},
		{"all healthy", map[string]error{"store": nil, "taskboard-api": nil}, true},
		{"backend down", map[string]error{"store": nil, "taskboard-api": errOpen}, false},
		{"store stopped", map[string]error{"store": store.ErrNotRunning}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.checks {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return(name)
				c.EXPECT().HealthCheck(mock.Anything).Return(err)
				r.Register(c)
			}

			results := r.CheckAll(context.Background())

			if results == nil || len(results) != len(tt.checks) {
				t.Fatalf("results = %v, want %d entries", results, len(tt.checks))
			}
			for name, want := range tt.checks {
				if !errors.Is(results[name], want) || (want == nil && results[name] != nil) {
					t.Errorf("results[%s] = %v, want %v", name, results[name], want)
				}
			}
			if got := health.Healthy(results); got != tt.wantHealthy {
				t.Errorf("Healthy = %v, want %v", got, tt.wantHealthy)
			}
		})
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "probe")

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("store")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(got context.Context) bool {
		return got.Value(key{}) == "probe"
	})).Return(nil)

	r := health.New()
	r.Register(c)
	r.CheckAll(ctx)
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var arrived sync.WaitGroup
	arrived.Add(n)
	release := make(chan struct{})

	r := health.New()
	for i := range n {
		r.Register(health.NewFunc(string(rune('a'+i)), func(context.Context) error {
			arrived.Done()
			<-release
			return nil
		}))
	}

	done := make(chan map[string]error)
	go func() { done <- r.CheckAll(context.Background()) }()

	// Every check must be in flight at once before any returns.
	waited := make(chan struct{})
	go func() { arrived.Wait(); close(waited) }()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("checks ran sequentially")
	}
	close(release)

	if results := <-done; len(results) != n {
		t.Errorf("results = %v", results)
	}
}

func TestCheckAll_LastRegisteredNameWins(t *testing.T) {
	t.Parallel()

	errSecond := errors.New("second")
	r := health.New()
	r.Register(health.NewFunc("store", func(context.Context) error { return nil }))
	r.Register(health.NewFunc("store", func(context.Context) error { return errSecond }))

	if got := r.CheckAll(context.Background())["store"]; !errors.Is(got, errSecond) {
		t.Errorf("store = %v, want the later checker's result", got)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			r.Register(health.NewFunc("store", nil))
			r.CheckAll(context.Background())
		})
	}
	wg.Wait()

	if got := r.CheckAll(context.Background()); len(got) != 1 || got["store"] != nil {
		t.Errorf("results = %v", got)
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")
	f := health.NewFunc("store", func(context.Context) error { return errDown })

	if f.Name() != "store" {
		t.Errorf("Name = %q", f.Name())
	}
	if err := f.HealthCheck(context.Background()); !errors.Is(err, errDown) {
		t.Errorf("HealthCheck = %v", err)
	}
	if err := health.NewFunc("noop", nil).HealthCheck(context.Background()); err != nil {
		t.Errorf("nil check = %v, want nil", err)
	}
}
