package task

import (
	"strings"

	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Selectors derives read views from State.
type Selectors struct {
	// All returns every task in id order.
	All func(State) []domaintask.Task
	// ByList groups the tasks of the given lists by list id. Every given
	// list has an entry, possibly empty.
	ByList func(State, []domaintask.TaskList) map[string][]domaintask.Task
}

// byListKey identifies a list selection by count and NUL-joined ids, so
// one list with an empty id differs from no lists at all.
type byListKey struct {
	entities store.Entities[domaintask.Task]
	count    int
	lists    string
}

// NewSelectors creates memoized task selectors.
func NewSelectors() Selectors {
	all := store.Memo(
		func(s State) store.Entities[domaintask.Task] { return s.Entities },
		func(s State) []domaintask.Task { return s.Entities.All() },
	)
	byList := store.Memo(
		func(k byListKey) byListKey { return k },
		func(k byListKey) map[string][]domaintask.Task {
			grouped := make(map[string][]domaintask.Task)
			if k.count == 0 {
				return grouped
			}
			for _, id := range strings.Split(k.lists, "\x00") {
				grouped[id] = []domaintask.Task{}
			}
			for _, t := range k.entities.All() {
				if tasks, ok := grouped[t.TaskListID]; ok {
					grouped[t.TaskListID] = append(tasks, t)
				}
			}
			return grouped
		},
	)
	return Selectors{
		All: all,
		ByList: func(s State, lists []domaintask.TaskList) map[string][]domaintask.Task {
			ids := make([]string, len(lists))
			for i, l := range lists {
				ids[i] = l.ID
			}
			return byList(byListKey{entities: s.Entities, count: len(ids), lists: strings.Join(ids, "\x00")})
		},
	}
}
