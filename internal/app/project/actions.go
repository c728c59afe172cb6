// Package project is the project feature: CRUD, selection, membership and
// task list bookkeeping actions, the normalized project store, and the
// effects that talk to the backend.
package project

import (
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domainuser "github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Action types.
const (
	LoadType               store.ActionType = "[Project] Load"
	LoadSuccessType        store.ActionType = "[Project] Load Success"
	LoadFailType           store.ActionType = "[Project] Load Fail"
	AddType                store.ActionType = "[Project] Add"
	AddSuccessType         store.ActionType = "[Project] Add Success"
	AddFailType            store.ActionType = "[Project] Add Fail"
	UpdateType             store.ActionType = "[Project] Update"
	UpdateSuccessType      store.ActionType = "[Project] Update Success"
	UpdateFailType         store.ActionType = "[Project] Update Fail"
	DeleteType             store.ActionType = "[Project] Delete"
	DeleteSuccessType      store.ActionType = "[Project] Delete Success"
	DeleteFailType         store.ActionType = "[Project] Delete Fail"
	SelectType             store.ActionType = "[Project] Select"
	InviteType             store.ActionType = "[Project] Invite"
	InviteSuccessType      store.ActionType = "[Project] Invite Success"
	InviteFailType         store.ActionType = "[Project] Invite Fail"
	UpdateListsType        store.ActionType = "[Project] Update Lists"
	UpdateListsSuccessType store.ActionType = "[Project] Update Lists Success"
	UpdateListsFailType    store.ActionType = "[Project] Update Lists Fail"
	LoadUsersType          store.ActionType = "[Project] Load Users"
	LoadUsersSuccessType   store.ActionType = "[Project] Load Users Success"
	LoadUsersFailType      store.ActionType = "[Project] Load Users Fail"
)

// Load fetches the projects of the signed-in user.
type Load struct{}

// LoadSuccess carries the fetched projects.
type LoadSuccess struct {
	Projects []domainproject.Project
}

// LoadFail reports a failed load.
type LoadFail struct{ store.Failed }

// Add creates a project owned by the signed-in user.
type Add struct {
	Project domainproject.Project
}

// AddSuccess carries the created project.
type AddSuccess struct {
	Project domainproject.Project
}

// AddFail reports a failed creation.
type AddFail struct{ store.Failed }

// Update edits a project's name, description or cover.
type Update struct {
	Project domainproject.Project
}

// UpdateSuccess carries the updated project.
type UpdateSuccess struct {
	Project domainproject.Project
}

// UpdateFail reports a failed update.
type UpdateFail struct{ store.Failed }

// Delete removes a project.
type Delete struct {
	Project domainproject.Project
}

// DeleteSuccess carries the removed project. Task list, task and user
// stores react to it.
type DeleteSuccess struct {
	Project domainproject.Project
}

// DeleteFail reports a failed deletion.
type DeleteFail struct{ store.Failed }

// Select makes Project the current project.
type Select struct {
	Project domainproject.Project
}

// Invite adds Users to the members of ProjectID.
type Invite struct {
	ProjectID string
	Users     []domainuser.User
}

// InviteSuccess carries the project with its new members.
type InviteSuccess struct {
	Project domainproject.Project
}

// InviteFail reports a failed invitation.
type InviteFail struct{ store.Failed }

// UpdateLists replaces the task list ids of Project.
type UpdateLists struct {
	Project domainproject.Project
}

// UpdateListsSuccess carries the project with its new task list ids.
type UpdateListsSuccess struct {
	Project domainproject.Project
}

// UpdateListsFail reports a failed task list update.
type UpdateListsFail struct{ store.Failed }

// LoadUsers fetches the members of ProjectID.
type LoadUsers struct {
	ProjectID string
}

// LoadUsersSuccess carries the members of a project.
type LoadUsersSuccess struct {
	Users []domainuser.User
}

// LoadUsersFail reports a failed member load.
type LoadUsersFail struct{ store.Failed }

func (Load) Type() store.ActionType               { return LoadType }
func (LoadSuccess) Type() store.ActionType        { return LoadSuccessType }
func (LoadFail) Type() store.ActionType           { return LoadFailType }
func (Add) Type() store.ActionType                { return AddType }
func (AddSuccess) Type() store.ActionType         { return AddSuccessType }
func (AddFail) Type() store.ActionType            { return AddFailType }
func (Update) Type() store.ActionType             { return UpdateType }
func (UpdateSuccess) Type() store.ActionType      { return UpdateSuccessType }
func (UpdateFail) Type() store.ActionType         { return UpdateFailType }
func (Delete) Type() store.ActionType             { return DeleteType }
func (DeleteSuccess) Type() store.ActionType      { return DeleteSuccessType }
func (DeleteFail) Type() store.ActionType         { return DeleteFailType }
func (Select) Type() store.ActionType             { return SelectType }
func (Invite) Type() store.ActionType             { return InviteType }
func (InviteSuccess) Type() store.ActionType      { return InviteSuccessType }
func (InviteFail) Type() store.ActionType         { return InviteFailType }
func (UpdateLists) Type() store.ActionType        { return UpdateListsType }
func (UpdateListsSuccess) Type() store.ActionType { return UpdateListsSuccessType }
func (UpdateListsFail) Type() store.ActionType    { return UpdateListsFailType }
func (LoadUsers) Type() store.ActionType          { return LoadUsersType }
func (LoadUsersSuccess) Type() store.ActionType   { return LoadUsersSuccessType }
func (LoadUsersFail) Type() store.ActionType      { return LoadUsersFailType }

// RegisterIntents makes the project request actions decodable.
func RegisterIntents(r *store.Registry) {
	store.Register[Load](r)
	store.Register[Add](r)
	store.Register[Update](r)
	store.Register[Delete](r)
	store.Register[Select](r)
	store.Register[Invite](r)
	store.Register[UpdateLists](r)
	store.Register[LoadUsers](r)
}
