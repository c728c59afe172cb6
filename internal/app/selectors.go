package app

import (
	"github.com/jsamuelsen11/taskboard/internal/app/auth"
	"github.com/jsamuelsen11/taskboard/internal/app/project"
	"github.com/jsamuelsen11/taskboard/internal/app/task"
	"github.com/jsamuelsen11/taskboard/internal/app/tasklist"
	"github.com/jsamuelsen11/taskboard/internal/app/user"
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
)

// Selectors derives the views of the selected project from State. The
// feature selector sets are exposed for views that need a single feature.
type Selectors struct {
	Projects  project.Selectors
	TaskLists tasklist.Selectors
	Tasks     task.Selectors
	Users     user.Selectors
}

// NewSelectors creates a selector set with its own memo caches.
func NewSelectors() *Selectors {
	return &Selectors{
		Projects:  project.NewSelectors(),
		TaskLists: tasklist.NewSelectors(),
		Tasks:     task.NewSelectors(),
		Users:     user.NewSelectors(),
	}
}

// SelectedProject returns the selected project, if any.
func (sel *Selectors) SelectedProject(s State) (domainproject.Project, bool) {
	return sel.Projects.Selected(s.Projects)
}

func (sel *Selectors) selectedID(s State) string {
	p, ok := sel.SelectedProject(s)
	if !ok {
		return ""
	}
	return p.ID
}

// SelectedTaskLists returns the task lists of the selected project in
// display order. It is empty when nothing is selected.
func (sel *Selectors) SelectedTaskLists(s State) []domaintask.TaskList {
	id := sel.selectedID(s)
	if id == "" {
		return []domaintask.TaskList{}
	}
	return sel.TaskLists.ByProject(s.TaskLists, id)
}

// TasksByList groups the tasks of the selected project's lists by list id.
func (sel *Selectors) TasksByList(s State) map[string][]domaintask.Task {
	return sel.Tasks.ByList(s.Tasks, sel.SelectedTaskLists(s))
}

// Members returns the users of the selected project.
func (sel *Selectors) Members(s State) []domainuser.User {
	return sel.Users.ProjectMembers(s.Users, sel.selectedID(s))
}

// CurrentUser returns the signed-in user.
func (sel *Selectors) CurrentUser(s State) domainuser.User {
	return auth.CurrentUser(s.Auth)
}

// IsAuthenticated reports whether a session is active.
func (sel *Selectors) IsAuthenticated(s State) bool {
	return auth.IsAuthenticated(s.Auth)
}
