package store

import "slices"

// Identifiable is implemented by every entity kept in an Entities collection.
type Identifiable interface {
	EntityID() string
}

// Entities is an immutable normalized collection: an ordered id list plus an
// id-to-entity map whose keys are exactly the ids. Every mutating method
// returns a new collection and leaves the receiver untouched; when an
// operation changes nothing the receiver itself is returned, so two values
// compare equal (==) exactly when they share the same underlying snapshot.
// That identity is what memoized selectors key on.
//
// The zero value is an empty collection.
type Entities[T Identifiable] struct {
	d *entityData[T]
}

type entityData[T Identifiable] struct {
	ids  []string
	byID map[string]T
}

// NewEntities builds a collection from items in order. Later duplicates of an
// id are ignored.
func NewEntities[T Identifiable](items ...T) Entities[T] {
	return Entities[T]{}.Merge(items)
}

// Len returns the number of entities.
func (e Entities[T]) Len() int {
	if e.d == nil {
		return 0
	}
	return len(e.d.ids)
}

// IDs returns a copy of the ordered id list.
func (e Entities[T]) IDs() []string {
	if e.d == nil {
		return []string{}
	}
	return slices.Clone(e.d.ids)
}

// Has reports whether id is present.
func (e Entities[T]) Has(id string) bool {
	if e.d == nil {
		return false
	}
	_, ok := e.d.byID[id]
	return ok
}

// Get returns the entity stored under id.
func (e Entities[T]) Get(id string) (T, bool) {
	if e.d == nil {
		var zero T
		return zero, false
	}
	v, ok := e.d.byID[id]
	return v, ok
}

// All returns the entities in id order.
func (e Entities[T]) All() []T {
	out := make([]T, 0, e.Len())
	if e.d == nil {
		return out
	}
	for _, id := range e.d.ids {
		out = append(out, e.d.byID[id])
	}
	return out
}

// Add appends item. Adding an id that is already present is a no-op.
func (e Entities[T]) Add(item T) Entities[T] {
	id := item.EntityID()
	if e.Has(id) {
		return e
	}
	next := e.clone(1)
	next.ids = append(next.ids, id)
	next.byID[id] = item
	return Entities[T]{d: next}
}

// Put replaces the entity stored under item's id. The id list is never
// altered; putting an unknown id is a no-op.
func (e Entities[T]) Put(item T) Entities[T] {
	if !e.Has(item.EntityID()) {
		return e
	}
	next := e.clone(0)
	next.byID[item.EntityID()] = item
	return Entities[T]{d: next}
}

// Merge appends the items whose ids are not yet present. Existing entities
// are never overwritten.
func (e Entities[T]) Merge(items []T) Entities[T] {
	fresh := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := seen[id]; dup || e.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, it)
	}
	if len(fresh) == 0 {
		return e
	}
	next := e.clone(len(fresh))
	for _, it := range fresh {
		next.ids = append(next.ids, it.EntityID())
		next.byID[it.EntityID()] = it
	}
	return Entities[T]{d: next}
}

// MergeExisting replaces the items whose ids are already present and ignores
// the rest.
func (e Entities[T]) MergeExisting(items []T) Entities[T] {
	var next *entityData[T]
	for _, it := range items {
		if !e.Has(it.EntityID()) {
			continue
		}
		if next == nil {
			next = e.clone(0)
		}
		next.byID[it.EntityID()] = it
	}
	if next == nil {
		return e
	}
	return Entities[T]{d: next}
}

// Upsert replaces item when its id is present and appends it otherwise.
func (e Entities[T]) Upsert(item T) Entities[T] {
	if e.Has(item.EntityID()) {
		return e.Put(item)
	}
	return e.Add(item)
}

// Remove drops id from the collection.
func (e Entities[T]) Remove(id string) Entities[T] {
	return e.RemoveWhere(func(it T) bool { return it.EntityID() == id })
}

// RemoveWhere drops every entity matching pred and rebuilds the map from the
// surviving ids.
func (e Entities[T]) RemoveWhere(pred func(T) bool) Entities[T] {
	if e.d == nil {
		return e
	}
	keep := make([]string, 0, len(e.d.ids))
	for _, id := range e.d.ids {
		if !pred(e.d.byID[id]) {
			keep = append(keep, id)
		}
	}
	if len(keep) == len(e.d.ids) {
		return e
	}
	next := &entityData[T]{ids: keep, byID: make(map[string]T, len(keep))}
	for _, id := range keep {
		next.byID[id] = e.d.byID[id]
	}
	return Entities[T]{d: next}
}

// Map applies fn to every entity; entities for which fn reports a change are
// replaced. fn must not change the entity's id.
func (e Entities[T]) Map(fn func(T) (T, bool)) Entities[T] {
	if e.d == nil {
		return e
	}
	var next *entityData[T]
	for _, id := range e.d.ids {
		updated, changed := fn(e.d.byID[id])
		if !changed {
			continue
		}
		if next == nil {
			next = e.clone(0)
		}
		next.byID[id] = updated
	}
	if next == nil {
		return e
	}
	return Entities[T]{d: next}
}

// clone copies the receiver's data, reserving extra room in the id list.
func (e Entities[T]) clone(extra int) *entityData[T] {
	if e.d == nil {
		return &entityData[T]{
			ids:  make([]string, 0, extra),
			byID: make(map[string]T, extra),
		}
	}
	ids := make([]string, len(e.d.ids), len(e.d.ids)+extra)
	copy(ids, e.d.ids)
	byID := make(map[string]T, len(e.d.byID)+extra)
	for k, v := range e.d.byID {
		byID[k] = v
	}
	return &entityData[T]{ids: ids, byID: byID}
}
