package task

import (
	"slices"

	"github.com/jsamuelsen11/taskboard/internal/app/project"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the normalized task collection.
type State struct {
	Entities store.Entities[domaintask.Task]
	Loading  bool
}

// Handlers returns the task reducer. It also drops the tasks of every list
// of a deleted project.
func Handlers() *store.Handlers[State] {
	h := store.NewHandlers[State]()

	store.Handle(h, func(s State, _ Load) State { return loading(s) })
	store.Handle(h, func(s State, _ Add) State { return loading(s) })
	store.Handle(h, func(s State, _ Update) State { return loading(s) })
	store.Handle(h, func(s State, _ Delete) State { return loading(s) })
	store.Handle(h, func(s State, _ Complete) State { return loading(s) })
	store.Handle(h, func(s State, _ Move) State { return loading(s) })
	store.Handle(h, func(s State, _ MoveAll) State { return loading(s) })

	store.Handle(h, func(s State, a AddSuccess) State {
		return State{Entities: s.Entities.Add(a.Task)}
	})
	store.Handle(h, func(s State, a DeleteSuccess) State {
		return State{Entities: s.Entities.Remove(a.Task.ID)}
	})
	store.Handle(h, func(s State, a UpdateSuccess) State {
		return State{Entities: s.Entities.Put(a.Task)}
	})
	store.Handle(h, func(s State, a CompleteSuccess) State {
		return State{Entities: s.Entities.Put(a.Task)}
	})
	store.Handle(h, func(s State, a MoveSuccess) State {
		return State{Entities: s.Entities.Put(a.Task)}
	})
	store.Handle(h, func(s State, a LoadSuccess) State {
		return State{Entities: s.Entities.Merge(a.Tasks)}
	})
	store.Handle(h, func(s State, a MoveAllSuccess) State {
		return State{Entities: s.Entities.MergeExisting(a.Tasks)}
	})

	store.Handle(h, func(s State, _ LoadFail) State { return idle(s) })
	store.Handle(h, func(s State, _ AddFail) State { return idle(s) })
	store.Handle(h, func(s State, _ UpdateFail) State { return idle(s) })
	store.Handle(h, func(s State, _ DeleteFail) State { return idle(s) })
	store.Handle(h, func(s State, _ CompleteFail) State { return idle(s) })
	store.Handle(h, func(s State, _ MoveFail) State { return idle(s) })
	store.Handle(h, func(s State, _ MoveAllFail) State { return idle(s) })

	// The cascade also ends any task request in flight for the project.
	store.Handle(h, func(s State, a project.DeleteSuccess) State {
		lists := a.Project.TaskLists
		return State{Entities: s.Entities.RemoveWhere(func(t domaintask.Task) bool {
			return slices.Contains(lists, t.TaskListID)
		})}
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
