// Package auth is the authentication feature: login, registration and
// logout actions, the session store, and the effects that call the backend
// and navigate afterwards.
package auth

import (
	"github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// Action types.
const (
	LoginType           store.ActionType = "[Auth] Login"
	LoginSuccessType    store.ActionType = "[Auth] Login Success"
	LoginFailType       store.ActionType = "[Auth] Login Fail"
	RegisterType        store.ActionType = "[Auth] Register"
	RegisterSuccessType store.ActionType = "[Auth] Register Success"
	RegisterFailType    store.ActionType = "[Auth] Register Fail"
	LogoutType          store.ActionType = "[Auth] Logout"
	LogoutSuccessType   store.ActionType = "[Auth] Logout Success"
	LogoutFailType      store.ActionType = "[Auth] Logout Fail"
)

// Login requests a session for the given credentials.
type Login struct {
	Username string
	Password string
}

// LoginSuccess carries the session returned by the backend.
type LoginSuccess struct {
	Auth user.Auth
}

// LoginFail reports a rejected or failed login.
type LoginFail struct {
	store.Failed
}

// Register creates an account and signs it in.
type Register struct {
	User     user.User
	Password string
}

// RegisterSuccess carries the session of the new account.
type RegisterSuccess struct {
	Auth user.Auth
}

// RegisterFail reports a failed registration.
type RegisterFail struct {
	store.Failed
}

// Logout ends the current session.
type Logout struct{}

// LogoutSuccess confirms the backend session was closed.
type LogoutSuccess struct{}

// LogoutFail reports that the backend could not close the session. The
// local session is dropped regardless.
type LogoutFail struct {
	store.Failed
}

func (Login) Type() store.ActionType           { return LoginType }
func (LoginSuccess) Type() store.ActionType    { return LoginSuccessType }
func (LoginFail) Type() store.ActionType       { return LoginFailType }
func (Register) Type() store.ActionType        { return RegisterType }
func (RegisterSuccess) Type() store.ActionType { return RegisterSuccessType }
func (RegisterFail) Type() store.ActionType    { return RegisterFailType }
func (Logout) Type() store.ActionType          { return LogoutType }
func (LogoutSuccess) Type() store.ActionType   { return LogoutSuccessType }
func (LogoutFail) Type() store.ActionType      { return LogoutFailType }

// RegisterIntents makes the auth request actions decodable.
func RegisterIntents(r *store.Registry) {
	store.Register[Login](r)
	store.Register[Register](r)
	store.Register[Logout](r)
}
