package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/router"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, WriteTimeout: time.Second},
		Log:    config.LogConfig{Level: "error", Format: "json"},
		Client: config.ClientConfig{
			BaseURL:        "http://127.0.0.1:1",
			Timeout:        time.Second,
			Retry:          config.RetryConfig{MaxAttempts: 1},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
		},
		Store: config.StoreConfig{
			QueueSize:        8,
			EffectTimeout:    time.Second,
			FanoutWorkers:    2,
			DefaultTaskLists: []string{"To do", "Done"},
			ShutdownTimeout:  time.Second,
		},
	}
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestContainer_ResolvesRouter(t *testing.T) {
	t.Parallel()

	i := newContainer(testConfig(), discardLogger(), nil)
	h, err := do.Invoke[http.Handler](i)
	if err != nil {
		t.Fatalf("resolving router: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/live = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("middleware chain not applied: no X-Request-ID")
	}
}

func TestService_ShutdownStopsStoreBeforeExtraHooks(t *testing.T) {
	t.Parallel()

	svc, err := do.Invoke[*service](newContainer(testConfig(), discardLogger(), nil))
	if err != nil {
		t.Fatalf("resolving service: %v", err)
	}

	var loopErr error
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.serve(ctx, adapthttp.ShutdownHook{Name: "probe", Run: func(ctx context.Context) error {
			loopErr = svc.board.HealthCheck(ctx)
			return nil
		}})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	if !errors.Is(loopErr, store.ErrNotRunning) {
		t.Errorf("store health in later hook = %v, want ErrNotRunning", loopErr)
	}
	if got := len(svc.registry.CheckAll(context.Background())); got != 2 {
		t.Errorf("registered checks = %d, want store and backend", got)
	}
}

func TestSettle_ReportsPendingOnTimeout(t *testing.T) {
	t.Parallel()

	board := store.New(app.State{}, app.NewReducer(0))
	if err := board.Dispatch(context.Background(), router.Go{Path: router.PathProjects}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	stopped := false
	done := make(chan error, 1)
	done <- nil

	err := settle(context.Background(), board, 10*time.Millisecond, func() { stopped = true }, done)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("settle() = %v, want DeadlineExceeded", err)
	}
	if !stopped {
		t.Error("loop was not stopped after the settle timeout")
	}
}

func TestStartTelemetry_Disabled(t *testing.T) {
	t.Parallel()

	p, err := startTelemetry(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("startTelemetry() error = %v", err)
	}
	if p.tracer != nil || p.meter != nil || p.metrics != nil {
		t.Error("disabled telemetry installed providers")
	}
	if err := p.shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() = %v, want nil", err)
	}
}

func TestStartTelemetry_Stdout(t *testing.T) {
	p, err := startTelemetry(context.Background(), config.TelemetryConfig{
		Enabled: true, Exporter: "stdout", ServiceName: "taskboard-test",
	})
	if err != nil {
		t.Fatalf("startTelemetry() error = %v", err)
	}
	if p.metrics == nil {
		t.Error("metrics not built")
	}
	if err := p.shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() = %v", err)
	}
}
