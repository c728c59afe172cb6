// Package user implements the Anti-Corruption Layer translators for the
// backend's user and auth resources.
package user

// UserDTO matches the backend user schema.
type UserDTO struct {
	ID         string   `json:"id,omitempty"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Avatar     string   `json:"avatar,omitempty"`
	ProjectIDs []string `json:"projectIds"`
}

// AuthDTO matches the backend session returned by login and register.
type AuthDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// LoginRequestDTO is the body of POST /auth/login.
type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequestDTO is the body of POST /auth/register.
type RegisterRequestDTO struct {
	User     UserDTO `json:"user"`
	Password string  `json:"password"`
}

// ProjectIDsPatchDTO is the PATCH body that replaces a user's project ids.
type ProjectIDsPatchDTO struct {
	ProjectIDs []string `json:"projectIds"`
}
