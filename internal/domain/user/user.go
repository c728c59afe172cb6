// Package user holds the User entity and the Auth session returned by the
// backend after login or registration.
package user

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// User is a person who can be a member of projects.
type User struct {
	ID         string
	Email      string
	Name       string
	Avatar     string
	ProjectIDs []string
}

// EntityID returns the user's identifier.
func (u User) EntityID() string { return u.ID }

// InProject reports whether projectID is listed in ProjectIDs.
func (u User) InProject(projectID string) bool {
	return slices.Contains(u.ProjectIDs, projectID)
}

// WithProject returns a copy of u with projectID appended to ProjectIDs,
// unless it is already present.
func (u User) WithProject(projectID string) User {
	if u.InProject(projectID) {
		return u
	}
	u.ProjectIDs = append(slices.Clone(u.ProjectIDs), projectID)
	return u
}

// WithoutProject returns a copy of u with projectID removed from ProjectIDs.
func (u User) WithoutProject(projectID string) User {
	if !u.InProject(projectID) {
		return u
	}
	u.ProjectIDs = slices.DeleteFunc(slices.Clone(u.ProjectIDs), func(id string) bool {
		return id == projectID
	})
	return u
}

// Validate checks the fields required to register a user.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Email) == "" {
		fields["email"] = domain.MsgRequired
	} else if !strings.Contains(u.Email, "@") {
		fields["email"] = "must be an email address"
	}
	if strings.TrimSpace(u.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Auth is an authenticated session: the bearer token and the signed-in user.
type Auth struct {
	Token string
	User  User
}

// IsZero reports whether a is the unauthenticated value.
func (a Auth) IsZero() bool {
	return a.Token == "" && a.User.ID == ""
}
