// Package task implements the Anti-Corruption Layer translators for the
// backend's task list and task resources.
package task

// TaskListDTO matches the backend task list schema.
type TaskListDTO struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	ProjectID string `json:"projectId"`
}

// OrderPatchDTO is the PATCH body that moves a task list.
type OrderPatchDTO struct {
	Order int `json:"order"`
}

// TaskDTO matches the backend task schema. Dates are RFC 3339 strings.
type TaskDTO struct {
	ID             string   `json:"id,omitempty"`
	TaskListID     string   `json:"taskListId"`
	Desc           string   `json:"desc"`
	Completed      bool     `json:"completed"`
	Priority       int      `json:"priority"`
	Order          int      `json:"order"`
	OwnerID        string   `json:"ownerId,omitempty"`
	ParticipantIDs []string `json:"participantIds"`
	Remark         string   `json:"remark,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	CreateDate     string   `json:"createDate,omitempty"`
}

// CompletedPatchDTO is the PATCH body that flips a task's completed flag.
type CompletedPatchDTO struct {
	Completed bool `json:"completed"`
}

// MovePatchDTO is the PATCH body that places a task in another list.
type MovePatchDTO struct {
	TaskListID string `json:"taskListId"`
}
