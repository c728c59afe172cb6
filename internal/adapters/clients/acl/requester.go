package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Requester turns a Call into one round trip through httpclient.Client and
// the reply into either a decoded body or a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Call describes one backend request. A zero WantStatus means 200. Body is
// sent as JSON when non-nil.
type Call struct {
	Method     string
	Path       string
	Query      url.Values
	WantStatus int
	Body       any
	Header     http.Header
}

// Do performs call and decodes the reply into out unless out is nil. The
// session token carried by ctx becomes the bearer credential when call does
// not set Authorization. Any status other than the wanted one is translated
// by TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, call Call, out any) error {
	req, err := r.build(ctx, call)
	if err != nil {
		return err
	}

	want := call.WantStatus
	if want == 0 {
		want = http.StatusOK
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.discard(ctx, resp)
	}
	switch {
	case resp != nil && resp.StatusCode != want:
		// Retries may end with both a response and an error; the status
		// classifies better than the retry error does.
		r.logger.WarnContext(ctx, "backend rejected request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "backend unreachable",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, TranslateTransportError(err))
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s reply: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// Get fetches path and decodes a 200 reply into out.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, out any) error {
	return r.Do(ctx, Call{Method: http.MethodGet, Path: path, Query: query}, out)
}

// CircuitBreakerState reports the breaker guarding the backend.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) build(ctx context.Context, call Call) (*http.Request, error) {
	if !allowedMethods[call.Method] {
		return nil, fmt.Errorf("unsupported HTTP method %q", call.Method)
	}

	u, err := url.Parse(r.client.BaseURL() + call.Path)
	if err != nil {
		return nil, fmt.Errorf("building URL for %s: %w", call.Path, err)
	}
	if len(call.Query) > 0 {
		u.RawQuery = call.Query.Encode()
	}

	var body io.Reader = http.NoBody
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", call.Method, call.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating %s %s: %w", call.Method, call.Path, err)
	}
	header := call.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	if tok := ports.SessionToken(ctx); tok != "" && header.Get("Authorization") == "" {
		header.Set("Authorization", "Bearer "+tok)
	}
	header.Set("Accept", "application/json")
	if call.Body != nil {
		header.Set("Content-Type", "application/json")
	}
	req.Header = header
	return req, nil
}

func (r *Requester) discard(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing backend response", slog.Any("error", err))
	}
}
