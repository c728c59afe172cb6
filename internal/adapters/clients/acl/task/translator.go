package task

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// ToDomainTaskList converts a backend TaskListDTO to a domain TaskList.
func ToDomainTaskList(dto TaskListDTO) task.TaskList {
	return task.TaskList{
		ID:        dto.ID,
		Name:      dto.Name,
		Order:     dto.Order,
		ProjectID: dto.ProjectID,
	}
}

// ToDomainTaskLists converts a slice of backend TaskListDTOs.
func ToDomainTaskLists(dtos []TaskListDTO) []task.TaskList {
	lists := make([]task.TaskList, len(dtos))
	for i := range dtos {
		lists[i] = ToDomainTaskList(dtos[i])
	}
	return lists
}

// ToTaskListDTO converts a domain TaskList into the backend write schema.
func ToTaskListDTO(l task.TaskList) TaskListDTO {
	return TaskListDTO{
		ID:        l.ID,
		Name:      l.Name,
		Order:     l.Order,
		ProjectID: l.ProjectID,
	}
}

// ToDomainTask converts a backend TaskDTO to a domain Task. Unparseable
// dates become the zero value (nil for the optional due date).
func ToDomainTask(dto TaskDTO) task.Task {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreateDate)

	var due *time.Time
	if d, err := time.Parse(time.RFC3339, dto.DueDate); err == nil {
		due = &d
	}

	participants := slices.Clone(dto.ParticipantIDs)
	if participants == nil {
		participants = []string{}
	}

	return task.Task{
		ID:             dto.ID,
		TaskListID:     dto.TaskListID,
		Desc:           dto.Desc,
		Completed:      dto.Completed,
		Priority:       task.Priority(dto.Priority),
		Order:          dto.Order,
		OwnerID:        dto.OwnerID,
		ParticipantIDs: participants,
		Remark:         dto.Remark,
		DueDate:        due,
		CreatedAt:      createdAt,
	}
}

// ToDomainTasks converts a slice of backend TaskDTOs.
func ToDomainTasks(dtos []TaskDTO) []task.Task {
	tasks := make([]task.Task, len(dtos))
	for i := range dtos {
		tasks[i] = ToDomainTask(dtos[i])
	}
	return tasks
}

// ToTaskDTO converts a domain Task into the backend write schema.
func ToTaskDTO(t task.Task) TaskDTO {
	dto := TaskDTO{
		ID:             t.ID,
		TaskListID:     t.TaskListID,
		Desc:           t.Desc,
		Completed:      t.Completed,
		Priority:       int(t.Priority),
		Order:          t.Order,
		OwnerID:        t.OwnerID,
		ParticipantIDs: slices.Clone(t.ParticipantIDs),
		Remark:         t.Remark,
	}
	if dto.ParticipantIDs == nil {
		dto.ParticipantIDs = []string{}
	}
	if t.DueDate != nil {
		dto.DueDate = t.DueDate.UTC().Format(time.RFC3339)
	}
	if !t.CreatedAt.IsZero() {
		dto.CreateDate = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
