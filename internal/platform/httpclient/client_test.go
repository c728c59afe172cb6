package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(t *testing.T, cfg *config.ClientConfig) *httpclient.Client {
	t.Helper()
	return httpclient.New(cfg, "taskboard-api", nil, slog.New(slog.DiscardHandler))
}

// backend counts hits and answers with the statuses in order, repeating the
// last one.
func backend(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(hits.Add(1)) - 1
		w.WriteHeader(statuses[min(n, len(statuses)-1)])
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func send(t *testing.T, c *httpclient.Client, ctx context.Context, method, url, body string) (*http.Response, error) {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_ReturnsBackendResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" || r.URL.Query().Get("members_like") != "u1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"p1"}]`))
	}))
	t.Cleanup(srv.Close)

	resp, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), http.MethodGet, srv.URL+"/projects?members_like=u1", "")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != `[{"id":"p1"}]` {
		t.Errorf("got %d %q", resp.StatusCode, body)
	}
}

func TestDo_RetriesIdempotentRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		statuses []int
		wantHits int32
	}{
		{name: "list after two 503s", method: http.MethodGet, statuses: []int{503, 503, 200}, wantHits: 3},
		{name: "update after a 429", method: http.MethodPut, statuses: []int{429, 200}, wantHits: 2},
		{name: "delete after a 500", method: http.MethodDelete, statuses: []int{500, 204}, wantHits: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, hits := backend(t, tt.statuses...)
			resp, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), tt.method, srv.URL+"/tasks/t1", "")
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if want := tt.statuses[len(tt.statuses)-1]; resp.StatusCode != want {
				t.Errorf("status = %d, want %d", resp.StatusCode, want)
			}
			if got := hits.Load(); got != tt.wantHits {
				t.Errorf("hits = %d, want %d", got, tt.wantHits)
			}
		})
	}
}

func TestDo_NeverReplaysWrites(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			srv, hits := backend(t, http.StatusInternalServerError)
			resp, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), method, srv.URL+"/projects", `{"name":"Board"}`)
			if err == nil {
				t.Fatal("Do() error = nil, want retryable status error")
			}
			if resp == nil || resp.StatusCode != http.StatusInternalServerError {
				t.Fatalf("resp = %v, want the 500 response", resp)
			}
			if got := hits.Load(); got != 1 {
				t.Errorf("hits = %d, want 1", got)
			}
		})
	}
}

func TestDo_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	srv, hits := backend(t, http.StatusNotFound)
	resp, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), http.MethodGet, srv.URL+"/projects/missing", "")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}

func TestDo_ExhaustedRetriesKeepLastResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"title":"maintenance"}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), http.MethodGet, srv.URL+"/users", "")
	if err == nil || !strings.Contains(err.Error(), "HTTP 503 from taskboard-api") {
		t.Fatalf("Do() error = %v, want HTTP 503 error", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"title":"maintenance"}` {
		t.Errorf("body = %q, want the last response body", body)
	}
}

func TestDo_ReplaysBodyOnRetry(t *testing.T) {
	t.Parallel()

	bodies := make(chan string, 2)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies <- string(b)
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	const payload = `{"id":"l1","order":2}`
	if _, err := send(t, newClient(t, testConfig(srv.URL)), t.Context(), http.MethodPut, srv.URL+"/taskLists/l1", payload); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	for i := range 2 {
		if got := <-bodies; got != payload {
			t.Errorf("attempt %d body = %q, want %q", i+1, got, payload)
		}
	}
}

func TestDo_HonoursRetryAfter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.InitialInterval = time.Hour
	cfg.Retry.MaxInterval = time.Hour

	// The exponential schedule would outlast this deadline.
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	resp, err := send(t, newClient(t, cfg), ctx, http.MethodGet, srv.URL+"/tasks", "")
	if err == nil || !strings.Contains(err.Error(), "HTTP 429") {
		t.Fatalf("Do() error = %v, want HTTP 429 after retries", err)
	}
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("resp = %v, want the final 429", resp)
	}
}

func TestDo_PropagatesContextHeaders(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx := httpclient.WithRequestID(t.Context(), "req-1")
	ctx = httpclient.WithCorrelationID(ctx, "corr-1")
	ctx = httpclient.WithHeader(ctx, "Authorization", "Bearer stale")
	ctx = httpclient.WithHeader(ctx, "Authorization", "Bearer tok")

	if _, err := send(t, newClient(t, testConfig(srv.URL)), ctx, http.MethodGet, srv.URL+"/projects", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	h := <-got
	for name, want := range map[string]string{
		httpclient.HeaderRequestID:     "req-1",
		httpclient.HeaderCorrelationID: "corr-1",
		"Authorization":                 "Bearer tok",
	} {
		if v := h.Get(name); v != want {
			t.Errorf("%s = %q, want %q", name, v, want)
		}
	}
}

func TestWithHeader_LeavesParentUntouched(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, testConfig(srv.URL))
	parent := httpclient.WithRequestID(t.Context(), "req-parent")
	_ = httpclient.WithHeader(parent, "Authorization", "Bearer child")

	if _, err := send(t, c, parent, http.MethodGet, srv.URL+"/users", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if _, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/users", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	first, second := <-got, <-got
	if first.Get("Authorization") != "" {
		t.Errorf("parent request carried child header %q", first.Get("Authorization"))
	}
	if second.Get(httpclient.HeaderRequestID) != "" {
		t.Errorf("plain context carried request id %q", second.Get(httpclient.HeaderRequestID))
	}
}

func TestDo_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	srv, hits := backend(t, http.StatusInternalServerError)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	c := newClient(t, cfg)

	_, _ = send(t, c, t.Context(), http.MethodGet, srv.URL+"/projects", "")
	before := hits.Load()

	resp, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/projects", "")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want ErrOpenState", err)
	}
	if resp != nil {
		t.Errorf("resp = %v, want nil while open", resp)
	}
	if hits.Load() != before {
		t.Error("backend was hit while the breaker was open")
	}
	if got := c.CircuitBreakerState(); got != "open" {
		t.Errorf("CircuitBreakerState() = %q, want open", got)
	}
}

func TestDo_CanceledCallsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv, _ := backend(t, http.StatusOK)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	c := newClient(t, cfg)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := send(t, c, ctx, http.MethodGet, srv.URL+"/tasks", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}

	if _, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/tasks", ""); err != nil {
		t.Fatalf("Do() after cancellation error = %v, want nil", err)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
}

func TestDo_BreakerRecoversThroughHalfOpen(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 50 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	c := newClient(t, cfg)

	_, _ = send(t, c, t.Context(), http.MethodGet, srv.URL+"/projects", "")
	if got := c.CircuitBreakerState(); got != "open" {
		t.Fatalf("CircuitBreakerState() = %q, want open", got)
	}

	time.Sleep(80 * time.Millisecond)
	if got := c.CircuitBreakerState(); got != "half-open" {
		t.Fatalf("CircuitBreakerState() = %q, want half-open", got)
	}

	failing.Store(false)
	resp, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/projects", "")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("probe = (%v, %v), want 200", resp, err)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
}

func TestDo_RateLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	srv, hits := backend(t, http.StatusOK)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	c := newClient(t, cfg)

	if _, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/users", ""); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err := send(t, c, ctx, http.MethodGet, srv.URL+"/users", "")
	if err == nil || !strings.Contains(err.Error(), "rate limiter") {
		t.Fatalf("second Do() error = %v, want rate limiter error", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig("http://backend:3000"))
	if got := c.BaseURL(); got != "http://backend:3000" {
		t.Errorf("BaseURL() = %q", got)
	}
	if got := c.Peer(); got != "taskboard-api" {
		t.Errorf("Peer() = %q", got)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	srv, _ := backend(t, http.StatusOK)
	c := httpclient.New(testConfig(srv.URL), "taskboard-api", nil, nil)
	if _, err := send(t, c, t.Context(), http.MethodGet, srv.URL+"/projects", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}
