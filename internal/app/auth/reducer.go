package auth

import (
	"github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// State is the current session.
type State struct {
	Auth    user.Auth
	Loading bool
}

// Handlers returns the auth reducer.
func Handlers() *store.Handlers[State] {
	h := store.NewHandlers[State]()

	store.Handle(h, func(s State, _ Login) State {
		return State{Auth: s.Auth, Loading: true}
	})
	store.Handle(h, func(s State, _ Register) State {
		return State{Auth: s.Auth, Loading: true}
	})
	store.Handle(h, func(_ State, a LoginSuccess) State {
		return State{Auth: a.Auth}
	})
	store.Handle(h, func(_ State, a RegisterSuccess) State {
		return State{Auth: a.Auth}
	})
	store.Handle(h, func(State, LoginFail) State { return State{} })
	store.Handle(h, func(State, RegisterFail) State { return State{} })
	store.Handle(h, func(s State, _ Logout) State {
		return State{Auth: s.Auth, Loading: true}
	})
	store.Handle(h, func(State, LogoutSuccess) State { return State{} })
	store.Handle(h, func(State, LogoutFail) State { return State{} })

	return h
}
