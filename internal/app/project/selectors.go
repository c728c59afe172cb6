package project

import (
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Selectors derives read views from State. Each set carries its own memo
// cache.
type Selectors struct {
	// All returns every project in id order.
	All func(State) []domainproject.Project
	// Selected returns the selected project and whether one is selected.
	Selected func(State) (domainproject.Project, bool)
}

type selection struct {
	entities store.Entities[domainproject.Project]
	id       string
}

type selected struct {
	project domainproject.Project
	ok      bool
}

// NewSelectors creates memoized project selectors.
func NewSelectors() Selectors {
	all := store.Memo(
		func(s State) store.Entities[domainproject.Project] { return s.Entities },
		func(s State) []domainproject.Project { return s.Entities.All() },
	)
	sel := store.Memo(
		func(s State) selection { return selection{entities: s.Entities, id: s.SelectedID} },
		func(s State) selected {
			p, ok := s.Entities.Get(s.SelectedID)
			return selected{project: p, ok: ok}
		},
	)
	return Selectors{
		All: all,
		Selected: func(s State) (domainproject.Project, bool) {
			r := sel(s)
			return r.project, r.ok
		},
	}
}
