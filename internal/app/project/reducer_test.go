package project_test

import (
	"slices"
	"testing"

	"github.com/jsamuelsen11/taskboard/internal/app/project"
	"github.com/jsamuelsen11/taskboard/internal/app/router"
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

func seeded(ps ...domainproject.Project) project.State {
	return project.State{Entities: store.NewEntities(ps...)}
}

var (
	alpha = domainproject.Project{ID: "p1", Name: "Alpha", Members: []string{"u1"}}
	beta  = domainproject.Project{ID: "p2", Name: "Beta", Members: []string{"u1"}}
)

func TestHandlers_UnknownActionIsIdentity(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	s := seeded(alpha, beta)
	s.SelectedID = "p1"

	for _, a := range []store.Action{router.Go{Path: "/x"}, project.LoadUsers{ProjectID: "p1"}, project.LoadUsersSuccess{}} {
		got := h.Reduce(s, a)
		if got != s {
			t.Errorf("Reduce(%s) changed state: %+v", a.Type(), got)
		}
	}
}

func TestHandlers_AddSuccessIsIdempotent(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	once := h.Reduce(project.State{}, project.AddSuccess{Project: alpha})
	twice := h.Reduce(once, project.AddSuccess{Project: alpha})

	if twice != once {
		t.Errorf("second AddSuccess changed state")
	}
	if !slices.Equal(twice.Entities.IDs(), []string{"p1"}) {
		t.Errorf("IDs = %v", twice.Entities.IDs())
	}
}

func TestHandlers_DeleteSuccess(t *testing.T) {
	t.Parallel()

	gamma := domainproject.Project{ID: "p3", Name: "Gamma"}

	tests := []struct {
		name         string
		selected     string
		deleted      string
		wantIDs      []string
		wantSelected string
	}{
		{name: "deleting the selected project clears selection", selected: "p2", deleted: "p2", wantIDs: []string{"p1", "p3"}, wantSelected: ""},
		{name: "deleting another project keeps selection", selected: "p1", deleted: "p3", wantIDs: []string{"p1", "p2"}, wantSelected: "p1"},
		{name: "deleting an unknown id changes nothing", selected: "p1", deleted: "p9", wantIDs: []string{"p1", "p2", "p3"}, wantSelected: "p1"},
	}

	h := project.Handlers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := seeded(alpha, beta, gamma)
			s.SelectedID = tt.selected

			got := h.Reduce(s, project.DeleteSuccess{Project: domainproject.Project{ID: tt.deleted}})

			if !slices.Equal(got.Entities.IDs(), tt.wantIDs) {
				t.Errorf("IDs = %v, want %v", got.Entities.IDs(), tt.wantIDs)
			}
			if got.SelectedID != tt.wantSelected {
				t.Errorf("SelectedID = %q, want %q", got.SelectedID, tt.wantSelected)
			}
			for _, id := range got.Entities.IDs() {
				if !got.Entities.Has(id) {
					t.Errorf("id %q has no entity", id)
				}
			}
		})
	}
}

func TestHandlers_DeleteSuccessOfLastProjectKeepsCollection(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	s := seeded(alpha)
	s.SelectedID = "p1"
	s = h.Reduce(s, project.Delete{Project: alpha})

	got := h.Reduce(s, project.DeleteSuccess{Project: alpha})

	if got.Entities != s.Entities || got.SelectedID != "p1" {
		t.Errorf("last-project delete should keep collection and selection, got %+v", got)
	}
	if got.Loading {
		t.Error("Loading should be cleared")
	}
}

func TestHandlers_LoadSuccessNeverOverwrites(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	s := seeded(alpha)
	s.SelectedID = "p1"

	renamed := alpha
	renamed.Name = "Changed remotely"
	got := h.Reduce(s, project.LoadSuccess{Projects: []domainproject.Project{renamed, beta}})

	p, _ := got.Entities.Get("p1")
	if p.Name != "Alpha" {
		t.Errorf("p1 name = %q, want Alpha", p.Name)
	}
	if !slices.Equal(got.Entities.IDs(), []string{"p1", "p2"}) {
		t.Errorf("IDs = %v", got.Entities.IDs())
	}
	if got.SelectedID != "" {
		t.Errorf("SelectedID = %q, want cleared after merging new projects", got.SelectedID)
	}
}

func TestHandlers_LoadSuccessWithNothingNew(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	s := seeded(alpha)
	s.SelectedID = "p1"

	for _, payload := range [][]domainproject.Project{nil, {}, {alpha}} {
		got := h.Reduce(s, project.LoadSuccess{Projects: payload})
		if got.Entities != s.Entities || got.SelectedID != "p1" {
			t.Errorf("LoadSuccess(%v) changed collection or selection", payload)
		}
	}
}

func TestHandlers_ReplaceVariants(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	updated := alpha.WithTaskLists("l1", "l2")
	updated.Name = "Alpha 2"

	for _, a := range []store.Action{
		project.UpdateSuccess{Project: updated},
		project.InviteSuccess{Project: updated},
		project.UpdateListsSuccess{Project: updated},
	} {
		got := h.Reduce(seeded(alpha, beta), a)
		p, _ := got.Entities.Get("p1")
		if p.Name != "Alpha 2" || !slices.Equal(p.TaskLists, []string{"l1", "l2"}) {
			t.Errorf("%s: p1 = %+v", a.Type(), p)
		}
		if !slices.Equal(got.Entities.IDs(), []string{"p1", "p2"}) {
			t.Errorf("%s: IDs = %v", a.Type(), got.Entities.IDs())
		}
	}

	unknown := h.Reduce(seeded(alpha), project.UpdateSuccess{Project: beta})
	if unknown.Entities.Has("p2") {
		t.Error("UpdateSuccess must not insert unknown projects")
	}
}

func TestHandlers_Select(t *testing.T) {
	t.Parallel()

	h := project.Handlers()
	s := seeded(alpha, beta)

	if got := h.Reduce(s, project.Select{Project: beta}); got.SelectedID != "p2" {
		t.Errorf("SelectedID = %q, want p2", got.SelectedID)
	}
	if got := h.Reduce(s, project.Select{Project: domainproject.Project{ID: "nope"}}); got.SelectedID != "" {
		t.Errorf("selecting an unknown id set SelectedID = %q", got.SelectedID)
	}
}

func TestHandlers_LoadingFlag(t *testing.T) {
	t.Parallel()

	h := project.Handlers()

	requests := []store.Action{project.Load{}, project.Add{}, project.Update{}, project.Delete{}, project.Invite{}, project.UpdateLists{}}
	outcomes := []store.Action{
		project.LoadSuccess{}, project.LoadFail{},
		project.AddSuccess{Project: alpha}, project.AddFail{},
		project.UpdateSuccess{}, project.UpdateFail{},
		project.DeleteSuccess{Project: alpha}, project.DeleteFail{},
		project.InviteSuccess{}, project.InviteFail{},
		project.UpdateListsSuccess{}, project.UpdateListsFail{},
	}

	for _, req := range requests {
		if !h.Reduce(project.State{}, req).Loading {
			t.Errorf("%s should set Loading", req.Type())
		}
	}
	for _, out := range outcomes {
		if h.Reduce(project.State{Loading: true}, out).Loading {
			t.Errorf("%s should clear Loading", out.Type())
		}
	}
}
