package user

import (
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Selectors derives read views from State.
type Selectors struct {
	// All returns every known user in id order.
	All func(State) []domainuser.User
	// ProjectMembers returns the users referencing a project.
	ProjectMembers func(State, string) []domainuser.User
}

type membersKey struct {
	entities  store.Entities[domainuser.User]
	projectID string
}

// NewSelectors creates memoized user selectors.
func NewSelectors() Selectors {
	all := store.Memo(
		func(s State) store.Entities[domainuser.User] { return s.Entities },
		func(s State) []domainuser.User { return s.Entities.All() },
	)
	members := store.Memo(
		func(k membersKey) membersKey { return k },
		func(k membersKey) []domainuser.User {
			out := make([]domainuser.User, 0)
			if k.projectID == "" {
				return out
			}
			for _, u := range k.entities.All() {
				if u.InProject(k.projectID) {
					out = append(out, u)
				}
			}
			return out
		},
	)
	return Selectors{
		All: all,
		ProjectMembers: func(s State, projectID string) []domainuser.User {
			return members(membersKey{entities: s.Entities, projectID: projectID})
		},
	}
}
