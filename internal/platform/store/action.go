// Package store implements a unidirectional data-flow store: actions are
// dispatched into a single loop that applies a pure root reducer, publishes
// the new snapshot, and hands the action to asynchronous effects which may
// dispatch follow-up actions.
//
// Construction:
//
//	st := store.New(initial, reduce, store.WithLogger(logger))
//	st.Effect("loadProjects", loadProjects, project.LoadType)
//	go st.Run(ctx)
//
// Dispatching and reading:
//
//	_ = st.Dispatch(ctx, project.Load{})
//	snapshot := st.State()
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ActionType tags an action. By convention it reads "[Feature] Verb".
type ActionType string

// String implements fmt.Stringer.
func (t ActionType) String() string { return string(t) }

// Action is a message describing an intent or an outcome. Implementations
// are plain structs with a value-receiver Type method so the zero value can
// report its tag.
type Action interface {
	Type() ActionType
}

// FailureAction is implemented by FAIL variants. FailureMessage returns the
// serialized error carried by the action (see FailurePayload).
type FailureAction interface {
	Action
	FailureMessage() string
}

// Failed is embedded by FAIL variants to carry the serialized error and
// satisfy FailureAction.
type Failed struct {
	Err string
}

// FailureMessage returns the serialized error.
func (f Failed) FailureMessage() string { return f.Err }

// FailWith serializes err with FailurePayload for embedding in a FAIL action.
func FailWith(err error) Failed {
	return Failed{Err: FailurePayload(err)}
}

// ErrUnknownAction is returned by Registry.Decode for unregistered types.
var ErrUnknownAction = errors.New("store: unknown action type")

// Registry decodes actions arriving from outside the process (JSON type +
// payload). Only actions registered here can be decoded, which keeps
// outcome actions (SUCCESS/FAIL) internal to effects.
type Registry struct {
	mu       sync.RWMutex
	decoders map[ActionType]func([]byte) (Action, error)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[ActionType]func([]byte) (Action, error))}
}

// Register makes action type A decodable. The payload is unmarshalled into
// a fresh value of A; an empty payload yields the zero value.
func Register[A Action](r *Registry) {
	var zero A
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[zero.Type()] = func(payload []byte) (Action, error) {
		var a A
		if len(payload) == 0 || string(payload) == "null" {
			return a, nil
		}
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", zero.Type(), err)
		}
		return a, nil
	}
}

// Decode builds the action registered for t from a JSON payload.
func (r *Registry) Decode(t ActionType, payload []byte) (Action, error) {
	r.mu.RLock()
	dec, ok := r.decoders[t]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, t)
	}
	return dec(payload)
}

// Types returns the registered action types in sorted order.
func (r *Registry) Types() []ActionType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]ActionType, 0, len(r.decoders))
	for t := range r.decoders {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
