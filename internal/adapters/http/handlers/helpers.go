// Package handlers exposes the board over HTTP: intents go in through the
// action endpoint, and state comes out through memoized view endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Board is the part of the application store the handlers use.
type Board interface {
	Dispatch(ctx context.Context, a store.Action) error
	State() app.State
}

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// readRequest decodes a JSON body into dst and validates it. On failure the
// problem response is already written and false is returned.
func readRequest[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		msg := "invalid JSON"
		if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
			msg = "exceeds 1 MiB"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
