package tasklist

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/project"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/fanout"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// DefaultListNames are created for every new project unless configured
// otherwise.
var DefaultListNames = []string{"To do", "In progress", "Done"}

// Effects performs the backend calls of the task list feature.
type Effects struct {
	client   ports.TaskListClient
	logger   *slog.Logger
	defaults []string
	workers  int
}

// NewEffects creates the task list effects. defaults names the lists Init
// creates; an empty slice selects DefaultListNames. workers bounds the
// concurrent creations.
func NewEffects(client ports.TaskListClient, logger *slog.Logger, defaults []string, workers int) *Effects {
	if len(defaults) == 0 {
		defaults = DefaultListNames
	}
	return &Effects{client: client, logger: logger, defaults: defaults, workers: workers}
}

// Load fetches the lists of a project.
func (e *Effects) Load(ctx context.Context, a Load) []store.Action {
	lists, err := e.client.List(ctx, a.ProjectID)
	if err != nil {
		e.fail(ctx, "Load", a.ProjectID, err)
		return []store.Action{LoadFail{store.FailWith(err)}}
	}
	return []store.Action{LoadSuccess{TaskLists: lists}}
}

// Add creates a task list.
func (e *Effects) Add(ctx context.Context, a Add) []store.Action {
	created, err := e.client.Add(ctx, a.TaskList)
	if err != nil {
		e.fail(ctx, "Add", a.TaskList.ProjectID, err)
		return []store.Action{AddFail{store.FailWith(err)}}
	}
	return []store.Action{AddSuccess{TaskList: created}}
}

// Update saves a task list.
func (e *Effects) Update(ctx context.Context, a Update) []store.Action {
	updated, err := e.client.Update(ctx, a.TaskList)
	if err != nil {
		e.fail(ctx, "Update", a.TaskList.ProjectID, err)
		return []store.Action{UpdateFail{store.FailWith(err)}}
	}
	return []store.Action{UpdateSuccess{TaskList: updated}}
}

// Delete removes a task list.
func (e *Effects) Delete(ctx context.Context, a Delete) []store.Action {
	deleted, err := e.client.Delete(ctx, a.TaskList)
	if err != nil {
		e.fail(ctx, "Delete", a.TaskList.ProjectID, err)
		return []store.Action{DeleteFail{store.FailWith(err)}}
	}
	return []store.Action{DeleteSuccess{TaskList: deleted}}
}

// Swap exchanges the order of two lists.
func (e *Effects) Swap(ctx context.Context, a Swap) []store.Action {
	swapped, err := e.client.Swap(ctx, a.Src, a.Target)
	if err != nil {
		e.fail(ctx, "Swap", a.Src.ProjectID, err)
		return []store.Action{SwapFail{store.FailWith(err)}}
	}
	return []store.Action{SwapSuccess{TaskLists: swapped}}
}

// Init creates the default lists of a new project concurrently, then asks
// the project feature to record their ids on the project.
func (e *Effects) Init(ctx context.Context, a Init) []store.Action {
	type spec struct {
		name  string
		order int
	}
	specs := make([]spec, len(e.defaults))
	for i, name := range e.defaults {
		specs[i] = spec{name: name, order: i + 1}
	}

	lists, err := fanout.All(ctx, e.workers, specs, func(ctx context.Context, sp spec) (domaintask.TaskList, error) {
		return e.client.Add(ctx, domaintask.TaskList{Name: sp.name, Order: sp.order, ProjectID: a.Project.ID})
	})
	if err != nil {
		e.fail(ctx, "Init", a.Project.ID, err)
		return []store.Action{InitFail{store.FailWith(err)}}
	}

	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}
	return []store.Action{
		InitSuccess{TaskLists: lists},
		project.UpdateLists{Project: a.Project.WithTaskLists(ids...)},
	}
}

// InitNewProject starts Init for a project that was just created.
func (e *Effects) InitNewProject(_ context.Context, a project.AddSuccess) []store.Action {
	return []store.Action{Init{Project: a.Project}}
}

func (e *Effects) fail(ctx context.Context, op, projectID string, err error) {
	e.logger.ErrorContext(ctx, "task list request failed",
		slog.String("operation", op),
		slog.String("project_id", projectID),
		slog.Any("error", err),
	)
}
