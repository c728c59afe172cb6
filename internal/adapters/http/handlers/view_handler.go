package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// ViewHandler serves the state snapshot and the selector outputs derived
// from it.
type ViewHandler struct {
	board     Board
	selectors *app.Selectors
}

// NewViewHandler creates a ViewHandler. selectors carries the memo caches
// shared by every request.
func NewViewHandler(board Board, selectors *app.Selectors) *ViewHandler {
	return &ViewHandler{board: board, selectors: selectors}
}

// State handles GET /api/v1/state.
func (h *ViewHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToStateResponse(h.board.State()))
}

// Projects handles GET /api/v1/views/projects.
func (h *ViewHandler) Projects(w http.ResponseWriter, r *http.Request) {
	s := h.board.State()
	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(h.selectors.Projects.All(s.Projects)))
}

// SelectedProject handles GET /api/v1/views/projects/selected.
func (h *ViewHandler) SelectedProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.selectors.SelectedProject(h.board.State())
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("selected project: %w", domain.ErrNotFound))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// TaskLists handles GET /api/v1/views/tasklists.
func (h *ViewHandler) TaskLists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToTaskListListResponse(h.selectors.SelectedTaskLists(h.board.State())))
}

// Tasks handles GET /api/v1/views/tasks.
func (h *ViewHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToTasksByListResponse(h.selectors.TasksByList(h.board.State())))
}

// Members handles GET /api/v1/views/members.
func (h *ViewHandler) Members(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToUserListResponse(h.selectors.Members(h.board.State())))
}

// Auth handles GET /api/v1/views/auth.
func (h *ViewHandler) Auth(w http.ResponseWriter, r *http.Request) {
	s := h.board.State()
	writeJSON(w, r, http.StatusOK, dto.ToAuthResponse(
		h.selectors.IsAuthenticated(s), s.Auth.Loading, h.selectors.CurrentUser(s),
	))
}
