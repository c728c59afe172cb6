package acl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/user"
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
)

// ProjectClient implements [ports.ProjectClient] against /projects.
type ProjectClient struct {
	req *Requester
}

// List fetches GET /projects?members_like={userID}.
func (c *ProjectClient) List(ctx context.Context, userID string) ([]domainproject.Project, error) {
	var dtos []project.ProjectDTO
	if err := c.req.Get(ctx, "/projects", url.Values{"members_like": {userID}}, &dtos); err != nil {
		return nil, err
	}
	return project.ToDomainProjectList(dtos), nil
}

// Add sends POST /projects and returns the created project.
func (c *ProjectClient) Add(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	if err := p.Validate(); err != nil {
		return domainproject.Project{}, err
	}

	body := project.ToProjectDTO(p)
	body.ID = ""

	var dto project.ProjectDTO
	err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       "/projects",
		WantStatus: http.StatusCreated,
		Body:       body,
	}, &dto)
	if err != nil {
		return domainproject.Project{}, err
	}
	return project.ToDomainProject(dto), nil
}

// Update sends PUT /projects/{id} with the editable fields.
func (c *ProjectClient) Update(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	if err := p.Validate(); err != nil {
		return domainproject.Project{}, err
	}

	var dto project.ProjectDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPut,
		Path:   projectPath(p.ID),
		Body:   project.ToUpdateDTO(p),
	}, &dto)
	if err != nil {
		return domainproject.Project{}, err
	}
	return project.ToDomainProject(dto), nil
}

// Delete sends DELETE /projects/{id}. The backend answers 204, so the
// confirmed entity is p itself.
func (c *ProjectClient) Delete(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	err := c.req.Do(ctx, Call{
		Method:     http.MethodDelete,
		Path:       projectPath(p.ID),
		WantStatus: http.StatusNoContent,
	}, nil)
	if err != nil {
		return domainproject.Project{}, err
	}
	return p, nil
}

// Invite reads the project's current members and PATCHes the union with
// the invited users.
func (c *ProjectClient) Invite(ctx context.Context, projectID string, users []domainuser.User) (domainproject.Project, error) {
	var current project.ProjectDTO
	if err := c.req.Get(ctx, projectPath(projectID), nil, &current); err != nil {
		return domainproject.Project{}, err
	}

	invitees := make([]string, 0, len(users))
	for _, u := range users {
		invitees = append(invitees, u.ID)
	}

	return c.patch(ctx, projectID, project.MembersPatchDTO{
		Members: project.MergeMembers(current.Members, invitees),
	})
}

// UpdateTaskLists sends PATCH /projects/{id} {taskLists}.
func (c *ProjectClient) UpdateTaskLists(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	body := project.TaskListsPatchDTO{TaskLists: project.ToProjectDTO(p).TaskLists}
	return c.patch(ctx, p.ID, body)
}

// UsersByProject fetches GET /users?projectIds_like={projectID}.
func (c *ProjectClient) UsersByProject(ctx context.Context, projectID string) ([]domainuser.User, error) {
	var dtos []user.UserDTO
	if err := c.req.Get(ctx, "/users", url.Values{"projectIds_like": {projectID}}, &dtos); err != nil {
		return nil, err
	}
	return user.ToDomainUsers(dtos), nil
}

func (c *ProjectClient) patch(ctx context.Context, id string, body any) (domainproject.Project, error) {
	var dto project.ProjectDTO
	err := c.req.Do(ctx, Call{Method: http.MethodPatch, Path: projectPath(id), Body: body}, &dto)
	if err != nil {
		return domainproject.Project{}, err
	}
	return project.ToDomainProject(dto), nil
}

func projectPath(id string) string {
	return "/projects/" + url.PathEscape(id)
}
