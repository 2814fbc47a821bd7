package ecs

import "iter"

// Query is a View that remembers which archetypes match. The cache is rebuilt
// only when the storage gains archetypes, so repeated per-frame iteration skips
// the matching work. Systems declare Query fields and the Scheduler calls Init.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds (or rebinds) the Query to a storage.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
}

func (q *Query[T]) archetypes() []*Archetype {
	if q.storage == nil {
		panic("Query used before Init")
	}

	if n := len(q.storage.ordered); n != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.ordered {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.lastArchetypeCount = n
	}
	return q.cachedArchetypes
}

// Iter yields one populated struct per matching entity. Do not spawn or delete
// while iterating; queue structural changes on frame.Commands instead.
func (q *Query[T]) Iter() iter.Seq[T] {
	archetypes := q.archetypes()
	return func(yield func(T) bool) {
		for _, archetype := range archetypes {
			if !q.view.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Count returns the number of live matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for _, archetype := range q.archetypes() {
		n += archetype.Len()
	}
	return n
}

// First returns the first matching entity, if any.
func (q *Query[T]) First() (T, bool) {
	for item := range q.Iter() {
		return item, true
	}
	var zero T
	return zero, false
}

// Get returns the populated struct for id, or nil.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}
