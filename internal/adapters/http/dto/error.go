package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// ErrorResponse is an RFC 9457 problem details body. Kind is an extension
// member carrying the same error kind as Fail action payloads, so a client
// handles a rejected dispatch and a failed effect alike.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Kind     string        `json:"kind"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation problem.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemClasses maps an error to its response status and kind. Checked in
// order; the first match wins.
var problemClasses = []struct {
	match  func(error) bool
	status int
	kind   string
}{
	{isStoreBusy, http.StatusServiceUnavailable, "unavailable"},
	{is(domain.ErrValidation), http.StatusBadRequest, ""},
	{is(domain.ErrNotFound), http.StatusNotFound, ""},
	{is(domain.ErrForbidden), http.StatusForbidden, ""},
	{is(domain.ErrConflict), http.StatusConflict, ""},
	{is(domain.ErrUnavailable), http.StatusBadGateway, ""},
}

// isStoreBusy reports errors of the dispatch path itself: the store is not
// running or the action could not be queued in time.
func isStoreBusy(err error) bool {
	return errors.Is(err, store.ErrNotRunning) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func classify(err error) (status int, kind string) {
	for _, c := range problemClasses {
		if c.match(err) {
			return c.status, cmp.Or(c.kind, domain.ErrorKind(err))
		}
	}
	return http.StatusInternalServerError, domain.ErrorKind(err)
}

// NewErrorResponse builds the problem for err, with the request URI as
// instance.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, kind := classify(err)
	return newProblem(r, status, kind, err)
}

// WriteErrorResponse writes the problem for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem with a fixed status, for failures that are
// decided by the transport rather than by the error (timeouts, panics).
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, err error) {
	_, kind := classify(err)
	writeProblem(w, r, newProblem(r, status, kind, err))
}

func newProblem(r *http.Request, status int, kind string, err error) ErrorResponse {
	p := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Kind:     kind,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = make([]ErrorDetail, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			p.Errors = append(p.Errors, ErrorDetail{Location: "body." + field, Message: msg})
		}
		slices.SortFunc(p.Errors, func(a, b ErrorDetail) int {
			return cmp.Compare(a.Location, b.Location)
		})
	}
	return p
}

func writeProblem(w http.ResponseWriter, r *http.Request, p ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response",
			slog.Int("status", p.Status),
			slog.Any("error", err),
		)
	}
}
