// Package project implements the Anti-Corruption Layer translators for the
// backend's project resources.
package project

// ProjectDTO matches the backend project schema.
type ProjectDTO struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Desc      string   `json:"desc,omitempty"`
	CoverImg  string   `json:"coverImg,omitempty"`
	Members   []string `json:"members"`
	TaskLists []string `json:"taskLists"`
}

// MembersPatchDTO is the PATCH body that replaces a project's members.
type MembersPatchDTO struct {
	Members []string `json:"members"`
}

// TaskListsPatchDTO is the PATCH body that replaces a project's task list ids.
type TaskListsPatchDTO struct {
	TaskLists []string `json:"taskLists"`
}
