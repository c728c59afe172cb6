package acl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

func backendResponse(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	const problem = "application/problem+json"

	tests := []struct {
		name        string
		resp        *http.Response
		wantErr     error
		wantMessage string
	}{
		{"unknown project", backendResponse(404, "", ""), domain.ErrNotFound, "Not Found"},
		{"problem detail used", backendResponse(404, problem, `{"detail":"project p9 does not exist"}`), domain.ErrNotFound, "project p9 does not exist"},
		{"problem with charset", backendResponse(409, problem+"; charset=utf-8", `{"detail":"list already exists"}`), domain.ErrConflict, "list already exists"},
		{"plain text ignored", backendResponse(409, "text/plain", "nope"), domain.ErrConflict, "Conflict"},
		{"malformed problem", backendResponse(400, problem, `{"detail":`), domain.ErrValidation, "Bad Request"},
		{"nil body", &http.Response{StatusCode: 403, Header: http.Header{"Content-Type": {problem}}}, domain.ErrForbidden, "Forbidden"},
		{"expired session", backendResponse(401, "", ""), domain.ErrForbidden, "Unauthorized"},
		{"unprocessable", backendResponse(422, "", ""), domain.ErrValidation, "Unprocessable Entity"},
		{"throttled", backendResponse(429, "", ""), domain.ErrUnavailable, "Too Many Requests"},
		{"backend crash", backendResponse(500, "", ""), domain.ErrUnavailable, "Internal Server Error"},
		{"gateway", backendResponse(504, "", ""), domain.ErrUnavailable, "Gateway Timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(tt.resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("error = %v, want wrapping %v", got, tt.wantErr)
			}
			if !strings.Contains(got.Error(), tt.wantMessage) {
				t.Errorf("error = %q, want it to mention %q", got, tt.wantMessage)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	resp := backendResponse(http.StatusBadRequest, "application/problem+json", `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.name", "message": "is required"},
			{"location": "query.owner", "message": "unknown user"}
		]
	}`)

	got := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", got)
	}
	want := map[string]string{"name": "is required", "query.owner": "unknown user"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for k, v := range want {
		if verr.Fields[k] != v {
			t.Errorf("Fields[%q] = %q, want %q", k, verr.Fields[k], v)
		}
	}
}

func TestTranslateHTTPError_FieldErrorsOnlyForValidation(t *testing.T) {
	t.Parallel()

	resp := backendResponse(http.StatusConflict, "application/problem+json",
		`{"detail":"duplicate","errors":[{"location":"body.name","message":"taken"}]}`)

	got := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if errors.As(got, &verr) {
		t.Errorf("409 produced a ValidationError: %v", got)
	}
	if !errors.Is(got, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", got)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(backendResponse(http.StatusTeapot, "", ""))

	if kind := domain.ErrorKind(got); kind != "unknown" {
		t.Errorf("ErrorKind = %q, want unknown", kind)
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want status in message", got)
	}
}

func TestTranslateTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"open breaker", gobreaker.ErrOpenState, domain.ErrUnavailable},
		{"half-open saturation", gobreaker.ErrTooManyRequests, domain.ErrUnavailable},
		{"refused connection", errors.New("dial tcp: connection refused"), domain.ErrUnavailable},
		{"canceled", context.Canceled, context.Canceled},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateTransportError(tt.err)

			if !errors.Is(got, tt.wantErr) || !errors.Is(got, tt.err) {
				t.Errorf("TranslateTransportError(%v) = %v, want wrapping %v and the cause", tt.err, got, tt.wantErr)
			}
		})
	}
	if errors.Is(TranslateTransportError(context.Canceled), domain.ErrUnavailable) {
		t.Error("cancellation reported as unavailable")
	}
}
