// Package user is the user feature: searching users and keeping each user's
// project references in sync with project membership.
package user

import (
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Action types.
const (
	SearchType                       store.ActionType = "[User] Search"
	SearchSuccessType                store.ActionType = "[User] Search Success"
	SearchFailType                   store.ActionType = "[User] Search Fail"
	AddProjectRefType                store.ActionType = "[User] Add Project Ref"
	AddProjectRefSuccessType         store.ActionType = "[User] Add Project Ref Success"
	AddProjectRefFailType            store.ActionType = "[User] Add Project Ref Fail"
	RemoveProjectRefType             store.ActionType = "[User] Remove Project Ref"
	RemoveProjectRefSuccessType      store.ActionType = "[User] Remove Project Ref Success"
	RemoveProjectRefFailType         store.ActionType = "[User] Remove Project Ref Fail"
	BatchUpdateProjectRefType        store.ActionType = "[User] Batch Update Project Ref"
	BatchUpdateProjectRefSuccessType store.ActionType = "[User] Batch Update Project Ref Success"
	BatchUpdateProjectRefFailType    store.ActionType = "[User] Batch Update Project Ref Fail"
)

// Search looks users up by email.
type Search struct {
	Filter string
}

// SearchSuccess carries the matching users.
type SearchSuccess struct {
	Users []domainuser.User
}

// SearchFail reports a failed search.
type SearchFail struct{ store.Failed }

// AddProjectRef records ProjectID on User.
type AddProjectRef struct {
	User      domainuser.User
	ProjectID string
}

// AddProjectRefSuccess carries the updated user.
type AddProjectRefSuccess struct {
	User domainuser.User
}

// AddProjectRefFail reports a failed update.
type AddProjectRefFail struct{ store.Failed }

// RemoveProjectRef drops ProjectID from User.
type RemoveProjectRef struct {
	User      domainuser.User
	ProjectID string
}

// RemoveProjectRefSuccess carries the updated user.
type RemoveProjectRefSuccess struct {
	User domainuser.User
}

// RemoveProjectRefFail reports a failed update.
type RemoveProjectRefFail struct{ store.Failed }

// BatchUpdateProjectRef records Project on every one of its members.
type BatchUpdateProjectRef struct {
	Project domainproject.Project
}

// BatchUpdateProjectRefSuccess carries the members after the update.
type BatchUpdateProjectRefSuccess struct {
	Users []domainuser.User
}

// BatchUpdateProjectRefFail reports a failed batch update.
type BatchUpdateProjectRefFail struct{ store.Failed }

func (Search) Type() store.ActionType                       { return SearchType }
func (SearchSuccess) Type() store.ActionType                { return SearchSuccessType }
func (SearchFail) Type() store.ActionType                   { return SearchFailType }
func (AddProjectRef) Type() store.ActionType                { return AddProjectRefType }
func (AddProjectRefSuccess) Type() store.ActionType         { return AddProjectRefSuccessType }
func (AddProjectRefFail) Type() store.ActionType            { return AddProjectRefFailType }
func (RemoveProjectRef) Type() store.ActionType             { return RemoveProjectRefType }
func (RemoveProjectRefSuccess) Type() store.ActionType      { return RemoveProjectRefSuccessType }
func (RemoveProjectRefFail) Type() store.ActionType         { return RemoveProjectRefFailType }
func (BatchUpdateProjectRef) Type() store.ActionType        { return BatchUpdateProjectRefType }
func (BatchUpdateProjectRefSuccess) Type() store.ActionType { return BatchUpdateProjectRefSuccessType }
func (BatchUpdateProjectRefFail) Type() store.ActionType    { return BatchUpdateProjectRefFailType }

// RegisterIntents makes the user request actions decodable.
func RegisterIntents(r *store.Registry) {
	store.Register[Search](r)
	store.Register[AddProjectRef](r)
	store.Register[RemoveProjectRef](r)
	store.Register[BatchUpdateProjectRef](r)
}
