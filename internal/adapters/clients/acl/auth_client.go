package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/user"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
)

// AuthClient implements [ports.AuthClient] against /auth.
type AuthClient struct {
	req *Requester
}

// Login sends POST /auth/login and returns the backend session.
func (c *AuthClient) Login(ctx context.Context, username, password string) (domainuser.Auth, error) {
	var dto user.AuthDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   user.LoginRequestDTO{Username: username, Password: password},
	}, &dto)
	if err != nil {
		return domainuser.Auth{}, err
	}
	return user.ToDomainAuth(dto), nil
}

// Register sends POST /auth/register and returns the new session. The user
// is validated locally first so obviously bad input never reaches the
// backend.
func (c *AuthClient) Register(ctx context.Context, u domainuser.User, password string) (domainuser.Auth, error) {
	if err := u.Validate(); err != nil {
		return domainuser.Auth{}, err
	}

	var dto user.AuthDTO
	err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       "/auth/register",
		WantStatus: http.StatusCreated,
		Body:       user.RegisterRequestDTO{User: user.ToUserDTO(u), Password: password},
	}, &dto)
	if err != nil {
		return domainuser.Auth{}, err
	}
	return user.ToDomainAuth(dto), nil
}

// Logout sends POST /auth/logout with the session's bearer token.
func (c *AuthClient) Logout(ctx context.Context, token string) error {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       "/auth/logout",
		WantStatus: http.StatusNoContent,
		Header:     header,
	}, nil)
}
