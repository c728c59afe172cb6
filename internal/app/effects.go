package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard/internal/app/auth"
	"github.com/jsamuelsen11/taskboard/internal/app/project"
	"github.com/jsamuelsen11/taskboard/internal/app/task"
	"github.com/jsamuelsen11/taskboard/internal/app/tasklist"
	"github.com/jsamuelsen11/taskboard/internal/app/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Deps are the collaborators the effects need.
type Deps struct {
	Auth      ports.AuthClient
	Projects  ports.ProjectClient
	TaskLists ports.TaskListClient
	Tasks     ports.TaskClient
	Users     ports.UserClient
	Logger    *slog.Logger

	// DefaultTaskLists names the lists created for every new project.
	DefaultTaskLists []string
	// FanoutWorkers bounds concurrent backend calls inside one effect.
	FanoutWorkers int
	// HistorySize bounds the router history.
	HistorySize int
}

// NewStore creates the application store with every feature effect
// registered. The dispatch loop starts when the caller runs Store.Run.
func NewStore(d Deps, opts ...store.Option) *store.Store[State] {
	st := store.New(State{}, NewReducer(d.HistorySize), opts...)
	RegisterEffects(st, d)
	return st
}

// RegisterEffects attaches the effects of every feature to st.
func RegisterEffects(st *store.Store[State], d Deps) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ae := auth.NewEffects(d.Auth, logger)
	on(st, "auth.login", stateless(ae.Login))
	on(st, "auth.register", stateless(ae.Register))
	on(st, "auth.navigate_home", stateless(ae.NavigateHome))
	on(st, "auth.navigate_todos", stateless(ae.NavigateTodos))
	on(st, "auth.logout", func(ctx context.Context, a auth.Logout, s State) []store.Action {
		return ae.Logout(ctx, a, s.Auth.Auth.Token)
	})
	st.Effect("auth.navigate_login", func(ctx context.Context, a store.Action, _ State) []store.Action {
		return ae.NavigateLogin(ctx, a)
	}, auth.LogoutSuccessType, auth.LogoutFailType)

	pe := project.NewEffects(d.Projects, logger)
	on(st, "project.load", func(ctx context.Context, a project.Load, s State) []store.Action {
		return pe.Load(ctx, a, auth.CurrentUser(s.Auth).ID)
	})
	on(st, "project.add", func(ctx context.Context, a project.Add, s State) []store.Action {
		return pe.Add(ctx, a, auth.CurrentUser(s.Auth).ID)
	})
	on(st, "project.update", stateless(pe.Update))
	on(st, "project.delete", stateless(pe.Delete))
	on(st, "project.invite", stateless(pe.Invite))
	on(st, "project.update_lists", stateless(pe.UpdateLists))
	on(st, "project.load_users", stateless(pe.LoadUsers))
	on(st, "project.navigate_lists", func(ctx context.Context, a project.Select, s State) []store.Action {
		return pe.NavigateToLists(ctx, a, s.Projects)
	})
	on(st, "project.load_members", stateless(pe.LoadMembers))

	le := tasklist.NewEffects(d.TaskLists, logger, d.DefaultTaskLists, d.FanoutWorkers)
	on(st, "tasklist.load", stateless(le.Load))
	on(st, "tasklist.add", stateless(le.Add))
	on(st, "tasklist.update", stateless(le.Update))
	on(st, "tasklist.delete", stateless(le.Delete))
	on(st, "tasklist.swap", stateless(le.Swap))
	on(st, "tasklist.init", stateless(le.Init))
	on(st, "tasklist.init_new_project", stateless(le.InitNewProject))

	te := task.NewEffects(d.Tasks, logger)
	on(st, "task.load", stateless(te.Load))
	on(st, "task.add", stateless(te.Add))
	on(st, "task.update", stateless(te.Update))
	on(st, "task.delete", stateless(te.Delete))
	on(st, "task.complete", stateless(te.Complete))
	on(st, "task.move", stateless(te.Move))
	on(st, "task.move_all", stateless(te.MoveAll))
	on(st, "task.load_for_lists", stateless(te.LoadForLists))

	ue := user.NewEffects(d.Users, logger)
	on(st, "user.search", stateless(ue.Search))
	on(st, "user.add_project_ref", stateless(ue.AddProjectRef))
	on(st, "user.remove_project_ref", stateless(ue.RemoveProjectRef))
	on(st, "user.batch_update_project_ref", stateless(ue.BatchUpdateProjectRef))
	on(st, "user.link_creator", func(ctx context.Context, a project.AddSuccess, s State) []store.Action {
		return ue.LinkCreator(ctx, a, auth.CurrentUser(s.Auth))
	})
}

// on registers fn for actions of type A. Backend calls made by fn carry the
// session token of the snapshot.
func on[A store.Action](st *store.Store[State], name string, fn func(context.Context, A, State) []store.Action) {
	var zero A
	st.Effect(name, func(ctx context.Context, a store.Action, s State) []store.Action {
		typed, ok := a.(A)
		if !ok {
			return nil
		}
		return fn(ports.WithSessionToken(ctx, s.Auth.Auth.Token), typed, s)
	}, zero.Type())
}

// stateless adapts an effect that does not read the snapshot.
func stateless[A store.Action](fn func(context.Context, A) []store.Action) func(context.Context, A, State) []store.Action {
	return func(ctx context.Context, a A, _ State) []store.Action {
		return fn(ctx, a)
	}
}
