package acl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/user"
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/fanout"
)

// UserClient implements [ports.UserClient] against /users.
type UserClient struct {
	req     *Requester
	workers int
}

// Search fetches GET /users?email_like={filter}.
func (c *UserClient) Search(ctx context.Context, filter string) ([]domainuser.User, error) {
	var dtos []user.UserDTO
	if err := c.req.Get(ctx, "/users", url.Values{"email_like": {filter}}, &dtos); err != nil {
		return nil, err
	}
	return user.ToDomainUsers(dtos), nil
}

// AddProjectRef sends PATCH /users/{id} {projectIds} with projectID added.
func (c *UserClient) AddProjectRef(ctx context.Context, u domainuser.User, projectID string) (domainuser.User, error) {
	return c.patchProjectIDs(ctx, u.WithProject(projectID))
}

// RemoveProjectRef sends PATCH /users/{id} {projectIds} with projectID removed.
func (c *UserClient) RemoveProjectRef(ctx context.Context, u domainuser.User, projectID string) (domainuser.User, error) {
	return c.patchProjectIDs(ctx, u.WithoutProject(projectID))
}

// BatchUpdateProjectRef fetches every member of p and adds p.ID to the ones
// that do not reference it yet. Members already referencing the project are
// returned without a PATCH.
func (c *UserClient) BatchUpdateProjectRef(ctx context.Context, p domainproject.Project) ([]domainuser.User, error) {
	return fanout.All(ctx, c.workers, p.Members, func(ctx context.Context, id string) (domainuser.User, error) {
		var dto user.UserDTO
		if err := c.req.Get(ctx, userPath(id), nil, &dto); err != nil {
			return domainuser.User{}, err
		}
		u := user.ToDomainUser(dto)
		if u.InProject(p.ID) {
			return u, nil
		}
		return c.patchProjectIDs(ctx, u.WithProject(p.ID))
	})
}

func (c *UserClient) patchProjectIDs(ctx context.Context, u domainuser.User) (domainuser.User, error) {
	var dto user.UserDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPatch,
		Path:   userPath(u.ID),
		Body:   user.ProjectIDsPatchDTO{ProjectIDs: user.ToUserDTO(u).ProjectIDs},
	}, &dto)
	if err != nil {
		return domainuser.User{}, err
	}
	return user.ToDomainUser(dto), nil
}

func userPath(id string) string {
	return "/users/" + url.PathEscape(id)
}
