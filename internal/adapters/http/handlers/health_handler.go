package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 while the dispatch loop runs and
// the backend circuit is closed, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))

	status := http.StatusOK
	if resp.Status != dto.HealthReady {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, resp)
}
