package acl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/task"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/fanout"
)

// TaskClient implements [ports.TaskClient] against /tasks.
type TaskClient struct {
	req     *Requester
	workers int
}

// ListByLists fetches GET /tasks?taskListId={id} for every list
// concurrently and concatenates the results in list order.
func (c *TaskClient) ListByLists(ctx context.Context, lists []domaintask.TaskList) ([]domaintask.Task, error) {
	return fanout.Concat(ctx, c.workers, lists, func(ctx context.Context, l domaintask.TaskList) ([]domaintask.Task, error) {
		return c.listByList(ctx, l.ID)
	})
}

// Add sends POST /tasks and returns the created task.
func (c *TaskClient) Add(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	if err := t.Validate(); err != nil {
		return domaintask.Task{}, err
	}

	body := task.ToTaskDTO(t)
	body.ID = ""

	var dto task.TaskDTO
	err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       "/tasks",
		WantStatus: http.StatusCreated,
		Body:       body,
	}, &dto)
	if err != nil {
		return domaintask.Task{}, err
	}
	return task.ToDomainTask(dto), nil
}

// Update sends PUT /tasks/{id}.
func (c *TaskClient) Update(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	if err := t.Validate(); err != nil {
		return domaintask.Task{}, err
	}

	var dto task.TaskDTO
	err := c.req.Do(ctx, Call{Method: http.MethodPut, Path: taskPath(t.ID), Body: task.ToTaskDTO(t)}, &dto)
	if err != nil {
		return domaintask.Task{}, err
	}
	return task.ToDomainTask(dto), nil
}

// Delete sends DELETE /tasks/{id}; the confirmed entity is t.
func (c *TaskClient) Delete(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	err := c.req.Do(ctx, Call{
		Method:     http.MethodDelete,
		Path:       taskPath(t.ID),
		WantStatus: http.StatusNoContent,
	}, nil)
	if err != nil {
		return domaintask.Task{}, err
	}
	return t, nil
}

// Complete sends PATCH /tasks/{id} {completed} with the flag flipped.
func (c *TaskClient) Complete(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
	return c.patch(ctx, t.ID, task.CompletedPatchDTO{Completed: !t.Completed})
}

// Move sends PATCH /tasks/{id} {taskListId}.
func (c *TaskClient) Move(ctx context.Context, taskID, taskListID string) (domaintask.Task, error) {
	return c.patch(ctx, taskID, task.MovePatchDTO{TaskListID: taskListID})
}

// MoveAll lists the tasks of srcListID and moves each of them to
// targetListID concurrently. The first failure aborts the result; moves that
// already happened are not rolled back.
func (c *TaskClient) MoveAll(ctx context.Context, srcListID, targetListID string) ([]domaintask.Task, error) {
	tasks, err := c.listByList(ctx, srcListID)
	if err != nil {
		return nil, err
	}

	return fanout.All(ctx, c.workers, tasks, func(ctx context.Context, t domaintask.Task) (domaintask.Task, error) {
		return c.Move(ctx, t.ID, targetListID)
	})
}

func (c *TaskClient) listByList(ctx context.Context, listID string) ([]domaintask.Task, error) {
	var dtos []task.TaskDTO
	if err := c.req.Get(ctx, "/tasks", url.Values{"taskListId": {listID}}, &dtos); err != nil {
		return nil, err
	}
	return task.ToDomainTasks(dtos), nil
}

func (c *TaskClient) patch(ctx context.Context, id string, body any) (domaintask.Task, error) {
	var dto task.TaskDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodPatch, Path: taskPath(id), Body: body}, &dto); err != nil {
		return domaintask.Task{}, err
	}
	return task.ToDomainTask(dto), nil
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}
