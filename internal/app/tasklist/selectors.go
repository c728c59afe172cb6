package tasklist

import (
	"cmp"
	"slices"

	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Selectors derives read views from State.
type Selectors struct {
	// All returns every task list in id order.
	All func(State) []domaintask.TaskList
	// ByProject returns the lists of one project sorted by display order.
	ByProject func(State, string) []domaintask.TaskList
}

type byProjectKey struct {
	entities  store.Entities[domaintask.TaskList]
	projectID string
}

// NewSelectors creates memoized task list selectors.
func NewSelectors() Selectors {
	all := store.Memo(
		func(s State) store.Entities[domaintask.TaskList] { return s.Entities },
		func(s State) []domaintask.TaskList { return s.Entities.All() },
	)
	byProject := store.Memo(
		func(k byProjectKey) byProjectKey { return k },
		func(k byProjectKey) []domaintask.TaskList {
			lists := make([]domaintask.TaskList, 0)
			for _, l := range k.entities.All() {
				if l.ProjectID == k.projectID {
					lists = append(lists, l)
				}
			}
			slices.SortStableFunc(lists, func(a, b domaintask.TaskList) int {
				return cmp.Compare(a.Order, b.Order)
			})
			return lists
		},
	)
	return Selectors{
		All: all,
		ByProject: func(s State, projectID string) []domaintask.TaskList {
			return byProject(byProjectKey{entities: s.Entities, projectID: projectID})
		},
	}
}
