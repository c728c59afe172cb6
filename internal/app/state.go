// Package app assembles the feature stores into one state tree, wires every
// feature effect onto a single store and exposes the cross-feature views the
// UI renders.
package app

import (
	"github.com/jsamuelsen11/taskboard/internal/app/auth"
	"github.com/jsamuelsen11/taskboard/internal/app/project"
	"github.com/jsamuelsen11/taskboard/internal/app/router"
	"github.com/jsamuelsen11/taskboard/internal/app/task"
	"github.com/jsamuelsen11/taskboard/internal/app/tasklist"
	"github.com/jsamuelsen11/taskboard/internal/app/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the whole client state. Each field is owned by one feature
// reducer.
type State struct {
	Auth      auth.State
	Projects  project.State
	TaskLists tasklist.State
	Tasks     task.State
	Users     user.State
	Router    router.State
}

// NewReducer returns the root reducer. Every action is offered to every
// feature, which is how one feature's outcome cascades into another's
// state.
func NewReducer(historySize int) store.Reducer[State] {
	var (
		authH     = auth.Handlers()
		projectH  = project.Handlers()
		taskListH = tasklist.Handlers()
		taskH     = task.Handlers()
		userH     = user.Handlers()
		routerH   = router.Handlers(historySize)
	)
	return func(s State, a store.Action) State {
		return State{
			Auth:      authH.Reduce(s.Auth, a),
			Projects:  projectH.Reduce(s.Projects, a),
			TaskLists: taskListH.Reduce(s.TaskLists, a),
			Tasks:     taskH.Reduce(s.Tasks, a),
			Users:     userH.Reduce(s.Users, a),
			Router:    routerH.Reduce(s.Router, a),
		}
	}
}

// NewRegistry returns a registry that decodes every intent a client may
// dispatch from outside the process.
func NewRegistry() *store.Registry {
	r := store.NewRegistry()
	auth.RegisterIntents(r)
	project.RegisterIntents(r)
	tasklist.RegisterIntents(r)
	task.RegisterIntents(r)
	user.RegisterIntents(r)
	store.Register[router.Go](r)
	return r
}
