package user

import (
	"github.com/jsamuelsen11/taskboard/internal/app/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the normalized collection of users seen so far. Loading covers
// the user feature's own requests; member loads belong to the project
// store.
type State struct {
	Entities store.Entities[domainuser.User]
	Loading  bool
}

// Handlers returns the user reducer. Besides its own outcomes it merges the
// members loaded by the project feature and forgets deleted projects.
func Handlers() *store.Handlers[State] {
	h := store.NewHandlers[State]()

	store.Handle(h, func(s State, _ Search) State { return loading(s) })
	store.Handle(h, func(s State, _ AddProjectRef) State { return loading(s) })
	store.Handle(h, func(s State, _ RemoveProjectRef) State { return loading(s) })
	store.Handle(h, func(s State, _ BatchUpdateProjectRef) State { return loading(s) })

	store.Handle(h, func(s State, _ SearchFail) State { return idle(s) })
	store.Handle(h, func(s State, _ AddProjectRefFail) State { return idle(s) })
	store.Handle(h, func(s State, _ RemoveProjectRefFail) State { return idle(s) })
	store.Handle(h, func(s State, _ BatchUpdateProjectRefFail) State { return idle(s) })

	store.Handle(h, func(s State, a SearchSuccess) State {
		return State{Entities: s.Entities.Merge(a.Users)}
	})
	store.Handle(h, func(s State, a project.LoadUsersSuccess) State {
		s.Entities = s.Entities.Merge(a.Users)
		return s
	})
	store.Handle(h, func(s State, a AddProjectRefSuccess) State {
		return State{Entities: s.Entities.Upsert(a.User)}
	})
	store.Handle(h, func(s State, a RemoveProjectRefSuccess) State {
		return State{Entities: s.Entities.Upsert(a.User)}
	})
	store.Handle(h, func(s State, a BatchUpdateProjectRefSuccess) State {
		e := s.Entities
		for _, u := range a.Users {
			e = e.Upsert(u)
		}
		return State{Entities: e}
	})
	store.Handle(h, func(s State, a project.DeleteSuccess) State {
		s.Entities = s.Entities.Map(func(u domainuser.User) (domainuser.User, bool) {
			if !u.InProject(a.Project.ID) {
				return u, false
			}
			return u.WithoutProject(a.Project.ID), true
		})
		return s
	})

	return h
}

func loading(s State) State {
	s.Loading = true
	return s
}

func idle(s State) State {
	s.Loading = false
	return s
}
