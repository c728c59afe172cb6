// Package tasklist is the task list feature: CRUD, reordering and the
// initialization of a new project's default lists.
package tasklist

import (
	domainproject "github.com/jsamuelsen11/taskboard/internal/domain/project"
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Action types.
const (
	LoadType          store.ActionType = "[TaskList] Load"
	LoadSuccessType   store.ActionType = "[TaskList] Load Success"
	LoadFailType      store.ActionType = "[TaskList] Load Fail"
	AddType           store.ActionType = "[TaskList] Add"
	AddSuccessType    store.ActionType = "[TaskList] Add Success"
	AddFailType       store.ActionType = "[TaskList] Add Fail"
	UpdateType        store.ActionType = "[TaskList] Update"
	UpdateSuccessType store.ActionType = "[TaskList] Update Success"
	UpdateFailType    store.ActionType = "[TaskList] Update Fail"
	DeleteType        store.ActionType = "[TaskList] Delete"
	DeleteSuccessType store.ActionType = "[TaskList] Delete Success"
	DeleteFailType    store.ActionType = "[TaskList] Delete Fail"
	SwapType          store.ActionType = "[TaskList] Swap"
	SwapSuccessType   store.ActionType = "[TaskList] Swap Success"
	SwapFailType      store.ActionType = "[TaskList] Swap Fail"
	InitType          store.ActionType = "[TaskList] Init"
	InitSuccessType   store.ActionType = "[TaskList] Init Success"
	InitFailType      store.ActionType = "[TaskList] Init Fail"
)

// Load fetches the task lists of ProjectID.
type Load struct {
	ProjectID string
}

// LoadSuccess carries the fetched task lists.
type LoadSuccess struct {
	TaskLists []domaintask.TaskList
}

// LoadFail reports a failed load.
type LoadFail struct{ store.Failed }

// Add creates a task list.
type Add struct {
	TaskList domaintask.TaskList
}

// AddSuccess carries the created task list.
type AddSuccess struct {
	TaskList domaintask.TaskList
}

// AddFail reports a failed creation.
type AddFail struct{ store.Failed }

// Update renames or reorders a task list.
type Update struct {
	TaskList domaintask.TaskList
}

// UpdateSuccess carries the updated task list.
type UpdateSuccess struct {
	TaskList domaintask.TaskList
}

// UpdateFail reports a failed update.
type UpdateFail struct{ store.Failed }

// Delete removes a task list.
type Delete struct {
	TaskList domaintask.TaskList
}

// DeleteSuccess carries the removed task list.
type DeleteSuccess struct {
	TaskList domaintask.TaskList
}

// DeleteFail reports a failed deletion.
type DeleteFail struct{ store.Failed }

// Swap exchanges the display order of Src and Target.
type Swap struct {
	Src    domaintask.TaskList
	Target domaintask.TaskList
}

// SwapSuccess carries both lists with their new order.
type SwapSuccess struct {
	TaskLists []domaintask.TaskList
}

// SwapFail reports a failed swap.
type SwapFail struct{ store.Failed }

// Init creates the default task lists of a freshly added project.
type Init struct {
	Project domainproject.Project
}

// InitSuccess carries the created default lists.
type InitSuccess struct {
	TaskLists []domaintask.TaskList
}

// InitFail reports a failed initialization.
type InitFail struct{ store.Failed }

func (Load) Type() store.ActionType          { return LoadType }
func (LoadSuccess) Type() store.ActionType   { return LoadSuccessType }
func (LoadFail) Type() store.ActionType      { return LoadFailType }
func (Add) Type() store.ActionType           { return AddType }
func (AddSuccess) Type() store.ActionType    { return AddSuccessType }
func (AddFail) Type() store.ActionType       { return AddFailType }
func (Update) Type() store.ActionType        { return UpdateType }
func (UpdateSuccess) Type() store.ActionType { return UpdateSuccessType }
func (UpdateFail) Type() store.ActionType    { return UpdateFailType }
func (Delete) Type() store.ActionType        { return DeleteType }
func (DeleteSuccess) Type() store.ActionType { return DeleteSuccessType }
func (DeleteFail) Type() store.ActionType    { return DeleteFailType }
func (Swap) Type() store.ActionType          { return SwapType }
func (SwapSuccess) Type() store.ActionType   { return SwapSuccessType }
func (SwapFail) Type() store.ActionType      { return SwapFailType }
func (Init) Type() store.ActionType          { return InitType }
func (InitSuccess) Type() store.ActionType   { return InitSuccessType }
func (InitFail) Type() store.ActionType      { return InitFailType }

// RegisterIntents makes the task list request actions decodable.
func RegisterIntents(r *store.Registry) {
	store.Register[Load](r)
	store.Register[Add](r)
	store.Register[Update](r)
	store.Register[Delete](r)
	store.Register[Swap](r)
	store.Register[Init](r)
}
