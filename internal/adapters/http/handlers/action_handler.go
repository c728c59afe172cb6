package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

const statusAccepted = "accepted"

// defaultDispatchTimeout bounds how long a request waits for room in the
// dispatch queue.
const defaultDispatchTimeout = 5 * time.Second

// ActionHandler accepts intents from clients and queues them on the store.
// Outcomes are observed through the state and view endpoints.
type ActionHandler struct {
	board    Board
	registry *store.Registry
	timeout  time.Duration
}

// NewActionHandler creates an ActionHandler. Only intents known to registry
// are accepted. A zero timeout selects defaultDispatchTimeout.
func NewActionHandler(board Board, registry *store.Registry, timeout time.Duration) *ActionHandler {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &ActionHandler{board: board, registry: registry, timeout: timeout}
}

// Dispatch handles POST /api/v1/actions.
func (h *ActionHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dto.DispatchRequest
	if !readRequest(w, r, &req) {
		return
	}

	action, err := h.registry.Decode(store.ActionType(req.Type), req.Payload)
	if err != nil {
		field, msg := "payload", "does not match the action type"
		if errors.Is(err, store.ErrUnknownAction) {
			field, msg = "type", "is not a dispatchable action"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{field: msg}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	if err := h.board.Dispatch(ctx, action); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	logging.FromContext(r.Context()).InfoContext(r.Context(), "action dispatched",
		slog.String("action", action.Type().String()),
	)
	writeJSON(w, r, http.StatusAccepted, dto.DispatchResponse{Type: action.Type().String(), Status: statusAccepted})
}

// Types handles GET /api/v1/actions.
func (h *ActionHandler) Types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToActionTypesResponse(h.registry.Types()))
}
