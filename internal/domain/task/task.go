// Package task holds the TaskList and Task entities. A task list belongs to
// exactly one project; a task belongs to exactly one task list.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// TaskList is an ordered column of tasks inside a project.
type TaskList struct {
	ID        string
	Name      string
	Order     int
	ProjectID string
}

// EntityID returns the task list's identifier.
func (l TaskList) EntityID() string { return l.ID }

// Validate checks business rules for the TaskList entity.
func (l *TaskList) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(l.ProjectID) == "" {
		fields["project_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Task is a unit of work placed in a task list.
type Task struct {
	ID             string
	TaskListID     string
	Desc           string
	Completed      bool
	Priority       Priority
	Order          int
	OwnerID        string
	ParticipantIDs []string
	Remark         string
	DueDate        *time.Time
	CreatedAt      time.Time
}

// EntityID returns the task's identifier.
func (t Task) EntityID() string { return t.ID }

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Desc) == "" {
		fields["desc"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.TaskListID) == "" {
		fields["task_list_id"] = domain.MsgRequired
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %d", t.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
