package user_test

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard/internal/app/project"
	"github.com/jsamuelsen11/taskboard/internal/app/user"
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
	"github.com/jsamuelsen11/taskboard/mocks"
)

var (
	ann = domainuser.User{ID: "u1", Email: "ann@example.com", Name: "Ann", ProjectIDs: []string{"p1", "p2"}}
	bo  = domainuser.User{ID: "u2", Email: "bo@example.com", Name: "Bo", ProjectIDs: []string{"p2"}}
)

func seeded(us ...domainuser.User) user.State {
	return user.State{Entities: store.NewEntities(us...)}
}

// --- Reducer ---

func TestHandlers_MergesLoadedMembers(t *testing.T) {
	t.Parallel()

	h := user.Handlers()
	renamed := ann
	renamed.Name = "Someone else"

	got := h.Reduce(seeded(ann), project.LoadUsersSuccess{Users: []domainuser.User{renamed, bo}})

	if !slices.Equal(got.Entities.IDs(), []string{"u1", "u2"}) {
		t.Errorf("IDs = %v", got.Entities.IDs())
	}
	if u, _ := got.Entities.Get("u1"); u.Name != "Ann" {
		t.Errorf("u1 was overwritten by a bulk load: %q", u.Name)
	}

	searched := h.Reduce(user.State{}, user.SearchSuccess{Users: []domainuser.User{bo}})
	if !searched.Entities.Has("u2") {
		t.Error("SearchSuccess did not merge")
	}
}

func TestHandlers_ProjectRefUpserts(t *testing.T) {
	t.Parallel()

	h := user.Handlers()
	s := seeded(ann)

	s = h.Reduce(s, user.AddProjectRefSuccess{User: bo.WithProject("p3")})
	if u, _ := s.Entities.Get("u2"); !u.InProject("p3") {
		t.Error("AddProjectRefSuccess did not insert the unknown user")
	}

	s = h.Reduce(s, user.RemoveProjectRefSuccess{User: ann.WithoutProject("p1")})
	if u, _ := s.Entities.Get("u1"); u.InProject("p1") {
		t.Error("RemoveProjectRefSuccess did not replace u1")
	}

	s = h.Reduce(s, user.BatchUpdateProjectRefSuccess{Users: []domainuser.User{ann.WithProject("p9"), {ID: "u3", ProjectIDs: []string{"p9"}}}})
	if !slices.Equal(s.Entities.IDs(), []string{"u1", "u2", "u3"}) {
		t.Errorf("IDs = %v", s.Entities.IDs())
	}
}

func TestHandlers_LoadingFlag(t *testing.T) {
	t.Parallel()

	h := user.Handlers()
	tests := []struct {
		request  store.Action
		outcomes []store.Action
	}{
		{user.Search{}, []store.Action{user.SearchSuccess{}, user.SearchFail{}}},
		{user.AddProjectRef{}, []store.Action{user.AddProjectRefSuccess{User: ann}, user.AddProjectRefFail{}}},
		{user.RemoveProjectRef{}, []store.Action{user.RemoveProjectRefSuccess{User: ann}, user.RemoveProjectRefFail{}}},
		{user.BatchUpdateProjectRef{}, []store.Action{user.BatchUpdateProjectRefSuccess{}, user.BatchUpdateProjectRefFail{}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.request.Type()), func(t *testing.T) {
			t.Parallel()
			busy := h.Reduce(user.State{}, tt.request)
			if !busy.Loading {
				t.Fatalf("%s should set Loading", tt.request.Type())
			}
			for _, out := range tt.outcomes {
				if h.Reduce(busy, out).Loading {
					t.Errorf("%s should clear Loading", out.Type())
				}
			}
		})
	}

	busy := user.State{Loading: true}
	if !h.Reduce(busy, project.LoadUsersSuccess{Users: []domainuser.User{bo}}).Loading {
		t.Error("member load from the project feature cleared the user Loading flag")
	}
}

func TestHandlers_ProjectDeletionForgetsReferences(t *testing.T) {
	t.Parallel()

	s := seeded(ann, bo, domainuser.User{ID: "u3", ProjectIDs: []string{"p1"}})
	got := user.Handlers().Reduce(s, project.DeleteSuccess{Project: domainproject.Project{ID: "p2"}})

	for _, id := range []string{"u1", "u2"} {
		if u, _ := got.Entities.Get(id); u.InProject("p2") {
			t.Errorf("%s still references p2", id)
		}
	}
	if u, _ := got.Entities.Get("u1"); !u.InProject("p1") {
		t.Error("u1 lost an unrelated project")
	}
	if a, _ := s.Entities.Get("u1"); !a.InProject("p2") {
		t.Error("previous snapshot was mutated")
	}
}

func TestHandlers_UnknownActionIsIdentity(t *testing.T) {
	t.Parallel()

	s := seeded(ann)
	if got := user.Handlers().Reduce(s, project.Load{}); got != s {
		t.Error("unrelated action changed the user store")
	}
}

// --- Selectors ---

func TestSelectors_ProjectMembers(t *testing.T) {
	t.Parallel()

	sel := user.NewSelectors()
	s := seeded(ann, bo)

	members := sel.ProjectMembers(s, "p2")
	if len(members) != 2 {
		t.Errorf("ProjectMembers(p2) = %d users, want 2", len(members))
	}
	if got := sel.ProjectMembers(s, "p1"); len(got) != 1 || got[0].ID != "u1" {
		t.Errorf("ProjectMembers(p1) = %+v", got)
	}
	if got := sel.ProjectMembers(s, ""); len(got) != 0 {
		t.Errorf("ProjectMembers(\"\") = %+v, want none", got)
	}
	if len(sel.All(s)) != 2 {
		t.Error("All() should return both users")
	}
}

// --- Effects ---

func newEffects(t *testing.T) (*user.Effects, *mocks.MockUserClient) {
	t.Helper()
	client := mocks.NewMockUserClient(t)
	return user.NewEffects(client, slog.New(slog.DiscardHandler)), client
}

func TestEffects(t *testing.T) {
	t.Parallel()

	e, client := newEffects(t)
	p := domainproject.Project{ID: "p1", Members: []string{"u1", "u2"}}

	client.EXPECT().Search(mock.Anything, "ann").Return([]domainuser.User{ann}, nil)
	client.EXPECT().AddProjectRef(mock.Anything, bo, "p1").Return(bo.WithProject("p1"), nil)
	client.EXPECT().RemoveProjectRef(mock.Anything, ann, "p1").Return(domainuser.User{}, errors.New("boom"))
	client.EXPECT().BatchUpdateProjectRef(mock.Anything, p).Return([]domainuser.User{ann, bo}, nil)

	ctx := context.Background()
	tests := []struct {
		name string
		out  []store.Action
		want store.ActionType
	}{
		{name: "search", out: e.Search(ctx, user.Search{Filter: "ann"}), want: user.SearchSuccessType},
		{name: "add ref", out: e.AddProjectRef(ctx, user.AddProjectRef{User: bo, ProjectID: "p1"}), want: user.AddProjectRefSuccessType},
		{name: "remove ref", out: e.RemoveProjectRef(ctx, user.RemoveProjectRef{User: ann, ProjectID: "p1"}), want: user.RemoveProjectRefFailType},
		{name: "batch", out: e.BatchUpdateProjectRef(ctx, user.BatchUpdateProjectRef{Project: p}), want: user.BatchUpdateProjectRefSuccessType},
	}
	for _, tt := range tests {
		if len(tt.out) != 1 || tt.out[0].Type() != tt.want {
			t.Errorf("%s: actions = %#v, want %s", tt.name, tt.out, tt.want)
		}
	}
}

func TestEffects_LinkCreator(t *testing.T) {
	t.Parallel()

	e, _ := newEffects(t)
	created := project.AddSuccess{Project: domainproject.Project{ID: "p7"}}

	out := e.LinkCreator(context.Background(), created, ann)
	ref, ok := out[0].(user.AddProjectRef)
	if !ok || ref.User.ID != "u1" || ref.ProjectID != "p7" {
		t.Errorf("actions = %#v", out)
	}

	if out := e.LinkCreator(context.Background(), created, domainuser.User{}); len(out) != 0 {
		t.Errorf("no signed-in user should emit nothing, got %#v", out)
	}
}
