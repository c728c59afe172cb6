package store

import "sync/atomic"

// SafeRef publishes a value written by one goroutine to any number of
// readers. The store keeps its current state in one: the dispatch loop
// stores each new snapshot and Store.State loads the latest through Get
// without blocking.
// Stored values must not be mutated afterwards.
type SafeRef[T any] struct {
	p atomic.Pointer[T]
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	r := &SafeRef[T]{}
	r.Set(val)
	return r
}

// Get returns the last value set.
func (r *SafeRef[T]) Get() T {
	return *r.p.Load()
}

// Set publishes val.
func (r *SafeRef[T]) Set(val T) {
	r.p.Store(&val)
}
