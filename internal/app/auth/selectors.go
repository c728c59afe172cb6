package auth

import "github.com/jsamuelsen11/taskboard/internal/domain/user"

// CurrentUser returns the signed-in user, or the zero User.
func CurrentUser(s State) user.User { return s.Auth.User }

// IsAuthenticated reports whether a session with a user is held.
func IsAuthenticated(s State) bool {
	return s.Auth.Token != "" && s.Auth.User.ID != ""
}
