package acl

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

// newTestClient sends to baseURL with a single attempt and a breaker that
// stays closed for the handful of calls one test makes.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	return httpclient.New(&config.ClientConfig{
		BaseURL:        baseURL,
		Timeout:        5 * time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1},
	}, ServiceName+"-test", nil, slog.New(slog.DiscardHandler))
}

// newTestBackend serves handler as the backend for the lifetime of the test.
func newTestBackend(t *testing.T, handler http.Handler) *Backend {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewBackend(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler), WithFanoutWorkers(2))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding stub reply: %v", err)
	}
}

// readJSON decodes a request body the client sent as a JSON object.
func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		t.Errorf("request body is not a JSON object: %v", err)
	}
	return m
}
