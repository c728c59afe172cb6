package store

import "slices"

// Reducer applies one action to a state and returns the next state. Reducers
// are pure and total.
type Reducer[S any] func(S, Action) S

// Handlers is a reducer assembled from per-action-type handlers. A feature
// registers handlers for its own action types and may subscribe to another
// feature's outcome actions; that subscription is the only coupling between
// stores.
type Handlers[S any] struct {
	byType map[ActionType][]func(S, Action) S
}

// NewHandlers creates an empty handler set.
func NewHandlers[S any]() *Handlers[S] {
	return &Handlers[S]{byType: make(map[ActionType][]func(S, Action) S)}
}

// Handle subscribes fn to actions of type A. Several handlers may share a
// type; they run in registration order, each receiving the previous one's
// result.
func Handle[S any, A Action](h *Handlers[S], fn func(S, A) S) {
	var zero A
	t := zero.Type()
	h.byType[t] = append(h.byType[t], func(s S, a Action) S {
		typed, ok := a.(A)
		if !ok {
			return s
		}
		return fn(s, typed)
	})
}

// Reduce applies every handler registered for a's type. Actions with no
// handler return s unchanged.
func (h *Handlers[S]) Reduce(s S, a Action) S {
	for _, fn := range h.byType[a.Type()] {
		s = fn(s, a)
	}
	return s
}

// Handles reports whether any handler is registered for t.
func (h *Handlers[S]) Handles(t ActionType) bool {
	return len(h.byType[t]) > 0
}

// Types returns the handled action types in sorted order.
func (h *Handlers[S]) Types() []ActionType {
	types := make([]ActionType, 0, len(h.byType))
	for t := range h.byType {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
