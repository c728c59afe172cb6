// Package project holds the Project aggregate: a named board owned by its
// members and split into task lists.
package project

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Project represents a board of task lists shared by its members.
// Members holds user ids; TaskLists holds task list ids in display order.
type Project struct {
	ID          string
	Name        string
	Description string
	CoverImg    string
	Members     []string
	TaskLists   []string
}

// EntityID returns the project's identifier.
func (p Project) EntityID() string { return p.ID }

// HasMember reports whether userID is listed in Members.
func (p Project) HasMember(userID string) bool {
	return slices.Contains(p.Members, userID)
}

// WithMembers returns a copy of p whose Members are exactly members.
// The receiver's slice is never aliased.
func (p Project) WithMembers(members ...string) Project {
	p.Members = slices.Clone(members)
	return p
}

// WithTaskLists returns a copy of p whose TaskLists are exactly ids.
func (p Project) WithTaskLists(ids ...string) Project {
	p.TaskLists = slices.Clone(ids)
	return p
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
