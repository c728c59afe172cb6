// Package task is the task feature: CRUD, completion and moving tasks
// between lists.
package task

import (
	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Action types.
const (
	LoadType            store.ActionType = "[Task] Load"
	LoadSuccessType     store.ActionType = "[Task] Load Success"
	LoadFailType        store.ActionType = "[Task] Load Fail"
	AddType             store.ActionType = "[Task] Add"
	AddSuccessType      store.ActionType = "[Task] Add Success"
	AddFailType         store.ActionType = "[Task] Add Fail"
	UpdateType          store.ActionType = "[Task] Update"
	UpdateSuccessType   store.ActionType = "[Task] Update Success"
	UpdateFailType      store.ActionType = "[Task] Update Fail"
	DeleteType          store.ActionType = "[Task] Delete"
	DeleteSuccessType   store.ActionType = "[Task] Delete Success"
	DeleteFailType      store.ActionType = "[Task] Delete Fail"
	CompleteType        store.ActionType = "[Task] Complete"
	CompleteSuccessType store.ActionType = "[Task] Complete Success"
	CompleteFailType    store.ActionType = "[Task] Complete Fail"
	MoveType            store.ActionType = "[Task] Move"
	MoveSuccessType     store.ActionType = "[Task] Move Success"
	MoveFailType        store.ActionType = "[Task] Move Fail"
	MoveAllType         store.ActionType = "[Task] Move All"
	MoveAllSuccessType  store.ActionType = "[Task] Move All Success"
	MoveAllFailType     store.ActionType = "[Task] Move All Fail"
)

// Load fetches the tasks of every list in TaskLists.
type Load struct {
	TaskLists []domaintask.TaskList
}

// LoadSuccess carries the fetched tasks.
type LoadSuccess struct {
	Tasks []domaintask.Task
}

// LoadFail reports a failed load.
type LoadFail struct{ store.Failed }

// Add creates a task.
type Add struct {
	Task domaintask.Task
}

// AddSuccess carries the created task.
type AddSuccess struct {
	Task domaintask.Task
}

// AddFail reports a failed creation.
type AddFail struct{ store.Failed }

// Update saves a task.
type Update struct {
	Task domaintask.Task
}

// UpdateSuccess carries the updated task.
type UpdateSuccess struct {
	Task domaintask.Task
}

// UpdateFail reports a failed update.
type UpdateFail struct{ store.Failed }

// Delete removes a task.
type Delete struct {
	Task domaintask.Task
}

// DeleteSuccess carries the removed task.
type DeleteSuccess struct {
	Task domaintask.Task
}

// DeleteFail reports a failed deletion.
type DeleteFail struct{ store.Failed }

// Complete toggles the completion flag of Task.
type Complete struct {
	Task domaintask.Task
}

// CompleteSuccess carries the toggled task.
type CompleteSuccess struct {
	Task domaintask.Task
}

// CompleteFail reports a failed toggle.
type CompleteFail struct{ store.Failed }

// Move places TaskID in TaskListID.
type Move struct {
	TaskID     string
	TaskListID string
}

// MoveSuccess carries the moved task.
type MoveSuccess struct {
	Task domaintask.Task
}

// MoveFail reports a failed move.
type MoveFail struct{ store.Failed }

// MoveAll moves every task of SrcListID to TargetListID.
type MoveAll struct {
	SrcListID    string
	TargetListID string
}

// MoveAllSuccess carries the moved tasks.
type MoveAllSuccess struct {
	Tasks []domaintask.Task
}

// MoveAllFail reports a failed bulk move.
type MoveAllFail struct{ store.Failed }

func (Load) Type() store.ActionType            { return LoadType }
func (LoadSuccess) Type() store.ActionType     { return LoadSuccessType }
func (LoadFail) Type() store.ActionType        { return LoadFailType }
func (Add) Type() store.ActionType             { return AddType }
func (AddSuccess) Type() store.ActionType      { return AddSuccessType }
func (AddFail) Type() store.ActionType         { return AddFailType }
func (Update) Type() store.ActionType          { return UpdateType }
func (UpdateSuccess) Type() store.ActionType   { return UpdateSuccessType }
func (UpdateFail) Type() store.ActionType      { return UpdateFailType }
func (Delete) Type() store.ActionType          { return DeleteType }
func (DeleteSuccess) Type() store.ActionType   { return DeleteSuccessType }
func (DeleteFail) Type() store.ActionType      { return DeleteFailType }
func (Complete) Type() store.ActionType        { return CompleteType }
func (CompleteSuccess) Type() store.ActionType { return CompleteSuccessType }
func (CompleteFail) Type() store.ActionType    { return CompleteFailType }
func (Move) Type() store.ActionType            { return MoveType }
func (MoveSuccess) Type() store.ActionType     { return MoveSuccessType }
func (MoveFail) Type() store.ActionType        { return MoveFailType }
func (MoveAll) Type() store.ActionType         { return MoveAllType }
func (MoveAllSuccess) Type() store.ActionType  { return MoveAllSuccessType }
func (MoveAllFail) Type() store.ActionType     { return MoveAllFailType }

// RegisterIntents makes the task request actions decodable.
func RegisterIntents(r *store.Registry) {
	store.Register[Load](r)
	store.Register[Add](r)
	store.Register[Update](r)
	store.Register[Delete](r)
	store.Register[Complete](r)
	store.Register[Move](r)
	store.Register[MoveAll](r)
}
