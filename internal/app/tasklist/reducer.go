package tasklist

import (
	"github.com/jsamuelsen11/taskboard/internal/app/project"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the normalized task list collection.
type State struct {
	Entities store.Entities[domaintask.TaskList]
	Loading  bool
}

// Handlers returns the task list reducer. It also drops the lists of a
// deleted project.
func Handlers() *store.Handlers[State] {
	h := store.NewHandlers[State]()

	store.Handle(h, func(s State, _ Load) State { return loading(s) })
	store.Handle(h, func(s State, _ Add) State { return loading(s) })
	store.Handle(h, func(s State, _ Update) State { return loading(s) })
	store.Handle(h, func(s State, _ Delete) State { return loading(s) })
	store.Handle(h, func(s State, _ Swap) State { return loading(s) })
	store.Handle(h, func(s State, _ Init) State { return loading(s) })

	store.Handle(h, func(s State, a AddSuccess) State {
		return State{Entities: s.Entities.Add(a.TaskList)}
	})
	store.Handle(h, func(s State, a UpdateSuccess) State {
		return State{Entities: s.Entities.Put(a.TaskList)}
	})
	store.Handle(h, func(s State, a DeleteSuccess) State {
		return State{Entities: s.Entities.Remove(a.TaskList.ID)}
	})
	store.Handle(h, func(s State, a LoadSuccess) State {
		return State{Entities: s.Entities.Merge(a.TaskLists)}
	})
	store.Handle(h, func(s State, a InitSuccess) State {
		return State{Entities: s.Entities.Merge(a.TaskLists)}
	})
	store.Handle(h, func(s State, a SwapSuccess) State {
		return State{Entities: s.Entities.MergeExisting(a.TaskLists)}
	})

	store.Handle(h, func(s State, _ LoadFail) State { return idle(s) })
	store.Handle(h, func(s State, _ AddFail) State { return idle(s) })
	store.Handle(h, func(s State, _ UpdateFail) State { return idle(s) })
	store.Handle(h, func(s State, _ DeleteFail) State { return idle(s) })
	store.Handle(h, func(s State, _ SwapFail) State { return idle(s) })
	store.Handle(h, func(s State, _ InitFail) State { return idle(s) })

	store.Handle(h, func(s State, a project.DeleteSuccess) State {
		s.Entities = s.Entities.RemoveWhere(func(l domaintask.TaskList) bool {
			return l.ProjectID == a.Project.ID
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
