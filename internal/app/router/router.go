// Package router holds the navigation signal emitted by effects and the
// small store that records where the UI was sent. Consumers that drive a
// real router subscribe to the store and react to Go actions.
package router

import (
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// GoType is the action type of a navigation request.
const GoType store.ActionType = "[Router] Go"

// Navigation targets emitted by effects.
const (
	PathLogin    = "/login"
	PathProjects = "/projects"
	PathTodos    = "/todos"
)

// TaskListsPath is the task list view of a project.
func TaskListsPath(projectID string) string {
	return "/tasklists/" + projectID
}

// DefaultHistorySize bounds History when no size is configured.
const DefaultHistorySize = 20

// Go asks the router to navigate to Path.
type Go struct {
	Path string
}

// Type implements store.Action.
func (Go) Type() store.ActionType { return GoType }

// State is the current location and the most recent paths, oldest first.
type State struct {
	Path    string
	History []string
}

// Handlers returns the router reducer. History keeps at most historySize
// entries; values below 1 fall back to DefaultHistorySize.
func Handlers(historySize int) *store.Handlers[State] {
	if historySize < 1 {
		historySize = DefaultHistorySize
	}

	h := store.NewHandlers[State]()
	store.Handle(h, func(s State, a Go) State {
		history := make([]string, 0, min(len(s.History)+1, historySize))
		start := max(0, len(s.History)+1-historySize)
		history = append(history, s.History[start:]...)
		history = append(history, a.Path)
		return State{Path: a.Path, History: history}
	})
	return h
}

// CurrentPath returns the last navigated path.
func CurrentPath(s State) string { return s.Path }
