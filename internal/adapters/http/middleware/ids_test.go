package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// ids runs RequestID then CorrelationID and reports what the handler saw.
func ids(t *testing.T, header http.Header) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions", http.NoBody)
	for name, vals := range header {
		req.Header[name] = vals
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     http.Header
		wantReq    string // "" means generated
		wantCorrIs string // "request" means equal to the request id
	}{
		{name: "both minted", wantCorrIs: "request"},
		{
			name:       "request id reused",
			header:     http.Header{"X-Request-Id": {"req-1"}},
			wantReq:    "req-1",
			wantCorrIs: "request",
		},
		{
			name:       "correlation id reused",
			header:     http.Header{"X-Request-Id": {"req-1"}, "X-Correlation-Id": {"corr-9"}},
			wantReq:    "req-1",
			wantCorrIs: "corr-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, rec := ids(t, tt.header)

			switch {
			case tt.wantReq == "" && !uuidV4.MatchString(reqID):
				t.Errorf("request id %q is not a UUID v4", reqID)
			case tt.wantReq != "" && reqID != tt.wantReq:
				t.Errorf("request id = %q, want %q", reqID, tt.wantReq)
			}

			wantCorr := tt.wantCorrIs
			if wantCorr == "request" {
				wantCorr = reqID
			}
			if corrID != wantCorr {
				t.Errorf("correlation id = %q, want %q", corrID, wantCorr)
			}

			if got := rec.Header().Get("X-Request-ID"); got != reqID {
				t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != corrID {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, corrID)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		id, _, _ := ids(t, nil)
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.RequestIDFromContext(t.Context()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(t.Context()); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}

func TestIDs_ForwardedToBackendCalls(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(backend.Close)

	ctx := middleware.WithCorrelationID(middleware.WithRequestID(t.Context(), "req-7"), "corr-7")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, backend.URL, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := testBackendClient(backend.URL).Do(ctx, req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	h := <-got
	if h.Get("X-Request-ID") != "req-7" || h.Get("X-Correlation-ID") != "corr-7" {
		t.Errorf("backend saw request=%q correlation=%q", h.Get("X-Request-ID"), h.Get("X-Correlation-ID"))
	}
}

func testBackendClient(baseURL string) *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		BaseURL:        baseURL,
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "taskboard-api", nil, slog.New(slog.DiscardHandler))
}
