package project

import (
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the normalized project collection. SelectedID is empty or the id
// of a project in Entities.
type State struct {
	Entities   store.Entities[domainproject.Project]
	SelectedID string
	Loading    bool
}

// Handlers returns the project reducer.
func Handlers() *store.Handlers[State] {
	h := store.NewHandlers[State]()

	store.Handle(h, func(s State, _ Load) State { return loading(s) })
	store.Handle(h, func(s State, _ Add) State { return loading(s) })
	store.Handle(h, func(s State, _ Update) State { return loading(s) })
	store.Handle(h, func(s State, _ Delete) State { return loading(s) })
	store.Handle(h, func(s State, _ Invite) State { return loading(s) })
	store.Handle(h, func(s State, _ UpdateLists) State { return loading(s) })

	store.Handle(h, func(s State, a AddSuccess) State {
		s.Entities = s.Entities.Add(a.Project)
		s.Loading = false
		return s
	})
	store.Handle(h, deleteSuccess)
	store.Handle(h, func(s State, a UpdateSuccess) State { return replace(s, a.Project) })
	store.Handle(h, func(s State, a InviteSuccess) State { return replace(s, a.Project) })
	store.Handle(h, func(s State, a UpdateListsSuccess) State { return replace(s, a.Project) })
	store.Handle(h, loadSuccess)
	store.Handle(h, func(s State, a Select) State {
		if !s.Entities.Has(a.Project.ID) {
			return s
		}
		s.SelectedID = a.Project.ID
		return s
	})

	store.Handle(h, func(s State, _ LoadFail) State { return idle(s) })
	store.Handle(h, func(s State, _ AddFail) State { return idle(s) })
	store.Handle(h, func(s State, _ UpdateFail) State { return idle(s) })
	store.Handle(h, func(s State, _ DeleteFail) State { return idle(s) })
	store.Handle(h, func(s State, _ InviteFail) State { return idle(s) })
	store.Handle(h, func(s State, _ UpdateListsFail) State { return idle(s) })

	return h
}

// deleteSuccess removes the project. When it was the last one the
// collection and selection are kept as they were.
func deleteSuccess(s State, a DeleteSuccess) State {
	s.Loading = false
	remaining := s.Entities.Remove(a.Project.ID)
	if remaining.Len() == 0 {
		return s
	}
	s.Entities = remaining
	if s.SelectedID == a.Project.ID {
		s.SelectedID = ""
	}
	return s
}

// loadSuccess merges projects not yet known. Fetching anything new clears
// the selection.
func loadSuccess(s State, a LoadSuccess) State {
	s.Loading = false
	merged := s.Entities.Merge(a.Projects)
	if merged == s.Entities {
		return s
	}
	s.Entities = merged
	s.SelectedID = ""
	return s
}

func replace(s State, p domainproject.Project) State {
	s.Entities = s.Entities.Put(p)
	s.Loading = false
	return s
}

func loading(s State) State {
	s.Loading = true
	return s
}

func idle(s State) State {
	s.Loading = false
	return s
}
