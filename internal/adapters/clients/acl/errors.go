// Package acl implements the Anti-Corruption Layer between the taskboard
// backend's REST representations and domain types. DTOs and translators live
// in subpackages (acl/project, acl/task, acl/user); the clients, the shared
// requester, and error mapping live here.
package acl

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

const maxErrorBodySize = 1 << 20

// statusSentinels maps backend statuses to domain errors. 5xx is handled
// separately.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// backendProblem is the subset of an RFC 9457 body the backend sends that we
// care about.
type backendProblem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError turns a non-success backend response into a domain
// error. A problem+json body contributes its detail, and field errors on a
// validation status become a *domain.ValidationError keyed by field name.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := cmp.Or(p.Detail, http.StatusText(resp.StatusCode))

	sentinel, ok := statusSentinels[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}

	if sentinel == domain.ErrValidation && len(p.Errors) > 0 {
		verr := &domain.ValidationError{Fields: make(map[string]string, len(p.Errors))}
		for _, e := range p.Errors {
			verr.Fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return verr
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// readProblem decodes the response body when it is problem+json. Anything
// else, including a malformed body, yields the zero value.
func readProblem(resp *http.Response) backendProblem {
	var p backendProblem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return backendProblem{}
	}
	return p
}

// TranslateTransportError maps failures that never produced a response
// (open breaker, refused connection, exhausted retries) to
// domain.ErrUnavailable. Cancellation and deadlines pass through unchanged
// so callers can tell them apart.
func TranslateTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
