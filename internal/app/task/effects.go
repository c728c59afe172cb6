package task

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/tasklist"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Effects performs the backend calls of the task feature.
type Effects struct {
	client ports.TaskClient
	logger *slog.Logger
}

// NewEffects creates the task effects.
func NewEffects(client ports.TaskClient, logger *slog.Logger) *Effects {
	return &Effects{client: client, logger: logger}
}

// Load fetches the tasks of the requested lists.
func (e *Effects) Load(ctx context.Context, a Load) []store.Action {
	tasks, err := e.client.ListByLists(ctx, a.TaskLists)
	if err != nil {
		e.fail(ctx, "Load", "", err)
		return []store.Action{LoadFail{store.FailWith(err)}}
	}
	return []store.Action{LoadSuccess{Tasks: tasks}}
}

// Add creates a task.
func (e *Effects) Add(ctx context.Context, a Add) []store.Action {
	created, err := e.client.Add(ctx, a.Task)
	if err != nil {
		e.fail(ctx, "Add", a.Task.ID, err)
		return []store.Action{AddFail{store.FailWith(err)}}
	}
	return []store.Action{AddSuccess{Task: created}}
}

// Update saves a task.
func (e *Effects) Update(ctx context.Context, a Update) []store.Action {
	updated, err := e.client.Update(ctx, a.Task)
	if err != nil {
		e.fail(ctx, "Update", a.Task.ID, err)
		return []store.Action{UpdateFail{store.FailWith(err)}}
	}
	return []store.Action{UpdateSuccess{Task: updated}}
}

// Delete removes a task.
func (e *Effects) Delete(ctx context.Context, a Delete) []store.Action {
	deleted, err := e.client.Delete(ctx, a.Task)
	if err != nil {
		e.fail(ctx, "Delete", a.Task.ID, err)
		return []store.Action{DeleteFail{store.FailWith(err)}}
	}
	return []store.Action{DeleteSuccess{Task: deleted}}
}

// Complete toggles a task's completion.
func (e *Effects) Complete(ctx context.Context, a Complete) []store.Action {
	toggled, err := e.client.Complete(ctx, a.Task)
	if err != nil {
		e.fail(ctx, "Complete", a.Task.ID, err)
		return []store.Action{CompleteFail{store.FailWith(err)}}
	}
	return []store.Action{CompleteSuccess{Task: toggled}}
}

// Move places a task in another list.
func (e *Effects) Move(ctx context.Context, a Move) []store.Action {
	moved, err := e.client.Move(ctx, a.TaskID, a.TaskListID)
	if err != nil {
		e.fail(ctx, "Move", a.TaskID, err)
		return []store.Action{MoveFail{store.FailWith(err)}}
	}
	return []store.Action{MoveSuccess{Task: moved}}
}

// MoveAll moves every task of one list to another.
func (e *Effects) MoveAll(ctx context.Context, a MoveAll) []store.Action {
	moved, err := e.client.MoveAll(ctx, a.SrcListID, a.TargetListID)
	if err != nil {
		e.logger.ErrorContext(ctx, "task request failed",
			slog.String("operation", "MoveAll"),
			slog.String("src_list_id", a.SrcListID),
			slog.String("target_list_id", a.TargetListID),
			slog.Any("error", err),
		)
		return []store.Action{MoveAllFail{store.FailWith(err)}}
	}
	return []store.Action{MoveAllSuccess{Tasks: moved}}
}

// LoadForLists requests the tasks of freshly loaded task lists.
func (e *Effects) LoadForLists(_ context.Context, a tasklist.LoadSuccess) []store.Action {
	if len(a.TaskLists) == 0 {
		return nil
	}
	return []store.Action{Load{TaskLists: a.TaskLists}}
}

func (e *Effects) fail(ctx context.Context, op, taskID string, err error) {
	e.logger.ErrorContext(ctx, "task request failed",
		slog.String("operation", op),
		slog.String("task_id", taskID),
		slog.Any("error", err),
	)
}
