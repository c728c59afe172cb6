package auth

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/router"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Effects performs the backend calls of the auth feature.
type Effects struct {
	client ports.AuthClient
	logger *slog.Logger
}

// NewEffects creates the auth effects.
func NewEffects(client ports.AuthClient, logger *slog.Logger) *Effects {
	return &Effects{client: client, logger: logger}
}

// Login calls the backend and reports the session or the failure.
func (e *Effects) Login(ctx context.Context, a Login) []store.Action {
	session, err := e.client.Login(ctx, a.Username, a.Password)
	if err != nil {
		e.logger.WarnContext(ctx, "login failed",
			slog.String("operation", "Login"),
			slog.String("username", a.Username),
			slog.Any("error", err),
		)
		return []store.Action{LoginFail{store.FailWith(err)}}
	}
	return []store.Action{LoginSuccess{Auth: session}}
}

// Register creates the account and reports the session or the failure.
func (e *Effects) Register(ctx context.Context, a Register) []store.Action {
	session, err := e.client.Register(ctx, a.User, a.Password)
	if err != nil {
		e.logger.WarnContext(ctx, "registration failed",
			slog.String("operation", "Register"),
			slog.String("email", a.User.Email),
			slog.Any("error", err),
		)
		return []store.Action{RegisterFail{store.FailWith(err)}}
	}
	return []store.Action{RegisterSuccess{Auth: session}}
}

// NavigateHome sends a freshly signed-in user to the project list.
func (e *Effects) NavigateHome(context.Context, LoginSuccess) []store.Action {
	return []store.Action{router.Go{Path: router.PathProjects}}
}

// NavigateTodos sends a newly registered user to the todo view.
func (e *Effects) NavigateTodos(context.Context, RegisterSuccess) []store.Action {
	return []store.Action{router.Go{Path: router.PathTodos}}
}

// Logout closes the backend session identified by token. Either outcome
// drops the local session.
func (e *Effects) Logout(ctx context.Context, _ Logout, token string) []store.Action {
	if err := e.client.Logout(ctx, token); err != nil {
		e.logger.ErrorContext(ctx, "logout failed",
			slog.String("operation", "Logout"),
			slog.Any("error", err),
		)
		return []store.Action{LogoutFail{store.FailWith(err)}}
	}
	return []store.Action{LogoutSuccess{}}
}

// NavigateLogin sends the user to the login view once the session is gone,
// whether or not the backend confirmed the logout.
func (e *Effects) NavigateLogin(context.Context, store.Action) []store.Action {
	return []store.Action{router.Go{Path: router.PathLogin}}
}
