package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/router"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// errNotSignedIn is reported when an effect needs the current user and no
// session is held.
var errNotSignedIn = fmt.Errorf("no signed-in user: %w", domain.ErrForbidden)

// Effects performs the backend calls of the project feature.
type Effects struct {
	client ports.ProjectClient
	logger *slog.Logger
}

// NewEffects creates the project effects.
func NewEffects(client ports.ProjectClient, logger *slog.Logger) *Effects {
	return &Effects{client: client, logger: logger}
}

// Load fetches the projects userID belongs to.
func (e *Effects) Load(ctx context.Context, _ Load, userID string) []store.Action {
	if userID == "" {
		return []store.Action{LoadFail{store.FailWith(errNotSignedIn)}}
	}

	projects, err := e.client.List(ctx, userID)
	if err != nil {
		e.fail(ctx, "Load", "", err)
		return []store.Action{LoadFail{store.FailWith(err)}}
	}
	return []store.Action{LoadSuccess{Projects: projects}}
}

// Add creates the project with userID as its only member, whatever members
// the caller supplied.
func (e *Effects) Add(ctx context.Context, a Add, userID string) []store.Action {
	if userID == "" {
		return []store.Action{AddFail{store.FailWith(errNotSignedIn)}}
	}

	created, err := e.client.Add(ctx, a.Project.WithMembers(userID))
	if err != nil {
		e.fail(ctx, "Add", "", err)
		return []store.Action{AddFail{store.FailWith(err)}}
	}
	return []store.Action{AddSuccess{Project: created}}
}

// Update saves the project's editable fields.
func (e *Effects) Update(ctx context.Context, a Update) []store.Action {
	updated, err := e.client.Update(ctx, a.Project)
	if err != nil {
		e.fail(ctx, "Update", a.Project.ID, err)
		return []store.Action{UpdateFail{store.FailWith(err)}}
	}
	return []store.Action{UpdateSuccess{Project: updated}}
}

// Delete removes the project.
func (e *Effects) Delete(ctx context.Context, a Delete) []store.Action {
	deleted, err := e.client.Delete(ctx, a.Project)
	if err != nil {
		e.fail(ctx, "Delete", a.Project.ID, err)
		return []store.Action{DeleteFail{store.FailWith(err)}}
	}
	return []store.Action{DeleteSuccess{Project: deleted}}
}

// Invite adds users to the project's members.
func (e *Effects) Invite(ctx context.Context, a Invite) []store.Action {
	updated, err := e.client.Invite(ctx, a.ProjectID, a.Users)
	if err != nil {
		e.fail(ctx, "Invite", a.ProjectID, err)
		return []store.Action{InviteFail{store.FailWith(err)}}
	}
	return []store.Action{InviteSuccess{Project: updated}}
}

// UpdateLists stores the project's task list ids.
func (e *Effects) UpdateLists(ctx context.Context, a UpdateLists) []store.Action {
	updated, err := e.client.UpdateTaskLists(ctx, a.Project)
	if err != nil {
		e.fail(ctx, "UpdateLists", a.Project.ID, err)
		return []store.Action{UpdateListsFail{store.FailWith(err)}}
	}
	return []store.Action{UpdateListsSuccess{Project: updated}}
}

// LoadUsers fetches the members of a project.
func (e *Effects) LoadUsers(ctx context.Context, a LoadUsers) []store.Action {
	users, err := e.client.UsersByProject(ctx, a.ProjectID)
	if err != nil {
		e.fail(ctx, "LoadUsers", a.ProjectID, err)
		return []store.Action{LoadUsersFail{store.FailWith(err)}}
	}
	return []store.Action{LoadUsersSuccess{Users: users}}
}

// NavigateToLists opens the task list view of the selected project. s is
// the project store after the selection was reduced; a project it does not
// hold was not selected, so nothing is emitted.
func (e *Effects) NavigateToLists(_ context.Context, a Select, s State) []store.Action {
	if !s.Entities.Has(a.Project.ID) {
		return nil
	}
	return []store.Action{router.Go{Path: router.TaskListsPath(a.Project.ID)}}
}

// LoadMembers requests the members of every loaded project.
func (e *Effects) LoadMembers(_ context.Context, a LoadSuccess) []store.Action {
	out := make([]store.Action, 0, len(a.Projects))
	for _, p := range a.Projects {
		out = append(out, LoadUsers{ProjectID: p.ID})
	}
	return out
}

func (e *Effects) fail(ctx context.Context, op, projectID string, err error) {
	e.logger.ErrorContext(ctx, "project request failed",
		slog.String("operation", op),
		slog.String("project_id", projectID),
		slog.Any("error", err),
	)
}
