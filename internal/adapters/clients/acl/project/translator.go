package project

import (
	"slices"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// ToDomainProject converts a backend ProjectDTO to a domain Project. Missing
// member and task list arrays become empty slices.
func ToDomainProject(dto ProjectDTO) project.Project {
	return project.Project{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Desc,
		CoverImg:    dto.CoverImg,
		Members:     nonNil(dto.Members),
		TaskLists:   nonNil(dto.TaskLists),
	}
}

// ToDomainProjectList converts a slice of backend ProjectDTOs.
func ToDomainProjectList(dtos []ProjectDTO) []project.Project {
	projects := make([]project.Project, len(dtos))
	for i := range dtos {
		projects[i] = ToDomainProject(dtos[i])
	}
	return projects
}

// ToProjectDTO converts a domain Project into the backend write schema.
func ToProjectDTO(p project.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID,
		Name:      p.Name,
		Desc:      p.Description,
		CoverImg:  p.CoverImg,
		Members:   nonNil(p.Members),
		TaskLists: nonNil(p.TaskLists),
	}
}

// ToUpdateDTO builds the PUT body for a project. Membership and task lists
// have their own PATCH calls and are left out.
func ToUpdateDTO(p project.Project) map[string]string {
	return map[string]string{
		"name":     p.Name,
		"desc":     p.Description,
		"coverImg": p.CoverImg,
	}
}

// MergeMembers returns existing followed by the invitees not already listed.
func MergeMembers(existing, invitees []string) []string {
	out := slices.Clone(existing)
	for _, id := range invitees {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return nonNil(out)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}
