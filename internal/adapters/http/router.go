// Package http is the inbound HTTP adapter: route table and server lifecycle.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/domain"
)

var errMethodNotAllowed = errors.New("method not allowed")

// NewRouter mounts the probes at the root and the board API under /api/v1.
// Intents arrive on POST /actions; state and selector projections are read
// from /state and /views. Middlewares wrap every route, outermost first.
func NewRouter(
	actions *handlers.ActionHandler,
	views *handlers.ViewHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/actions", actions.Types)
		r.Post("/actions", actions.Dispatch)
		r.Get("/state", views.State)

		r.Route("/views", func(r chi.Router) {
			r.Get("/auth", views.Auth)
			r.Get("/projects", views.Projects)
			r.Get("/projects/selected", views.SelectedProject)
			r.Get("/members", views.Members)
			r.Get("/tasklists", views.TaskLists)
			r.Get("/tasks", views.Tasks)
		})
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, fmt.Errorf("route %s: %w", r.URL.Path, domain.ErrNotFound))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusMethodNotAllowed, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, errMethodNotAllowed))
}
