package user

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Effects performs the backend calls of the user feature.
type Effects struct {
	client ports.UserClient
	logger *slog.Logger
}

// NewEffects creates the user effects.
func NewEffects(client ports.UserClient, logger *slog.Logger) *Effects {
	return &Effects{client: client, logger: logger}
}

// Search looks users up by email.
func (e *Effects) Search(ctx context.Context, a Search) []store.Action {
	users, err := e.client.Search(ctx, a.Filter)
	if err != nil {
		e.fail(ctx, "Search", "", err)
		return []store.Action{SearchFail{store.FailWith(err)}}
	}
	return []store.Action{SearchSuccess{Users: users}}
}

// AddProjectRef records a project on a user.
func (e *Effects) AddProjectRef(ctx context.Context, a AddProjectRef) []store.Action {
	updated, err := e.client.AddProjectRef(ctx, a.User, a.ProjectID)
	if err != nil {
		e.fail(ctx, "AddProjectRef", a.User.ID, err)
		return []store.Action{AddProjectRefFail{store.FailWith(err)}}
	}
	return []store.Action{AddProjectRefSuccess{User: updated}}
}

// RemoveProjectRef drops a project from a user.
func (e *Effects) RemoveProjectRef(ctx context.Context, a RemoveProjectRef) []store.Action {
	updated, err := e.client.RemoveProjectRef(ctx, a.User, a.ProjectID)
	if err != nil {
		e.fail(ctx, "RemoveProjectRef", a.User.ID, err)
		return []store.Action{RemoveProjectRefFail{store.FailWith(err)}}
	}
	return []store.Action{RemoveProjectRefSuccess{User: updated}}
}

// BatchUpdateProjectRef records a project on all of its members.
func (e *Effects) BatchUpdateProjectRef(ctx context.Context, a BatchUpdateProjectRef) []store.Action {
	users, err := e.client.BatchUpdateProjectRef(ctx, a.Project)
	if err != nil {
		e.fail(ctx, "BatchUpdateProjectRef", "", err)
		return []store.Action{BatchUpdateProjectRefFail{store.FailWith(err)}}
	}
	return []store.Action{BatchUpdateProjectRefSuccess{Users: users}}
}

// LinkCreator records a newly created project on the user who created it.
// Without a signed-in user there is nobody to link and nothing is emitted.
func (e *Effects) LinkCreator(ctx context.Context, a project.AddSuccess, current domainuser.User) []store.Action {
	if current.ID == "" {
		e.logger.WarnContext(ctx, "project created without a signed-in user",
			slog.String("project_id", a.Project.ID),
		)
		return nil
	}
	return []store.Action{AddProjectRef{User: current, ProjectID: a.Project.ID}}
}

func (e *Effects) fail(ctx context.Context, op, userID string, err error) {
	e.logger.ErrorContext(ctx, "user request failed",
		slog.String("operation", op),
		slog.String("user_id", userID),
		slog.Any("error", err),
	)
}
