package acl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/task"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/fanout"
)

// TaskListClient implements [ports.TaskListClient] against /taskLists.
type TaskListClient struct {
	req     *Requester
	workers int
}

// List fetches GET /taskLists?projectId={projectID}.
func (c *TaskListClient) List(ctx context.Context, projectID string) ([]domaintask.TaskList, error) {
	var dtos []task.TaskListDTO
	if err := c.req.Get(ctx, "/taskLists", url.Values{"projectId": {projectID}}, &dtos); err != nil {
		return nil, err
	}
	return task.ToDomainTaskLists(dtos), nil
}

// Add sends POST /taskLists and returns the created list.
func (c *TaskListClient) Add(ctx context.Context, l domaintask.TaskList) (domaintask.TaskList, error) {
	if err := l.Validate(); err != nil {
		return domaintask.TaskList{}, err
	}

	body := task.ToTaskListDTO(l)
	body.ID = ""

	var dto task.TaskListDTO
	err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       "/taskLists",
		WantStatus: http.StatusCreated,
		Body:       body,
	}, &dto)
	if err != nil {
		return domaintask.TaskList{}, err
	}
	return task.ToDomainTaskList(dto), nil
}

// Update sends PUT /taskLists/{id}.
func (c *TaskListClient) Update(ctx context.Context, l domaintask.TaskList) (domaintask.TaskList, error) {
	if err := l.Validate(); err != nil {
		return domaintask.TaskList{}, err
	}

	var dto task.TaskListDTO
	err := c.req.Do(ctx, Call{Method: http.MethodPut, Path: taskListPath(l.ID), Body: task.ToTaskListDTO(l)}, &dto)
	if err != nil {
		return domaintask.TaskList{}, err
	}
	return task.ToDomainTaskList(dto), nil
}

// Delete sends DELETE /taskLists/{id}; the confirmed entity is l.
func (c *TaskListClient) Delete(ctx context.Context, l domaintask.TaskList) (domaintask.TaskList, error) {
	err := c.req.Do(ctx, Call{
		Method:     http.MethodDelete,
		Path:       taskListPath(l.ID),
		WantStatus: http.StatusNoContent,
	}, nil)
	if err != nil {
		return domaintask.TaskList{}, err
	}
	return l, nil
}

// Swap exchanges the order of src and target with two concurrent
// PATCH /taskLists/{id} {order} calls and returns [src, target] as updated
// by the backend.
func (c *TaskListClient) Swap(ctx context.Context, src, target domaintask.TaskList) ([]domaintask.TaskList, error) {
	type move struct {
		id    string
		order int
	}
	moves := []move{
		{id: src.ID, order: target.Order},
		{id: target.ID, order: src.Order},
	}

	return fanout.All(ctx, c.workers, moves, func(ctx context.Context, m move) (domaintask.TaskList, error) {
		var dto task.TaskListDTO
		err := c.req.Do(ctx, Call{
			Method: http.MethodPatch,
			Path:   taskListPath(m.id),
			Body:   task.OrderPatchDTO{Order: m.order},
		}, &dto)
		if err != nil {
			return domaintask.TaskList{}, err
		}
		return task.ToDomainTaskList(dto), nil
	})
}

func taskListPath(id string) string {
	return "/taskLists/" + url.PathEscape(id)
}
