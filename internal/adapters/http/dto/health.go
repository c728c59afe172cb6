package dto

import "github.com/jsamuelsen11/taskboard/internal/platform/health"

// Health probe statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency to "ok" or its error message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse summarizes readiness results.
func ToHealthResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		resp.Checks[name] = HealthOK
		if err != nil {
			resp.Checks[name] = err.Error()
		}
	}
	if !health.Healthy(results) {
		resp.Status = HealthNotReady
	}
	return resp
}
