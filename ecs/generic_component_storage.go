package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to column factories. Every Storage
// owns one, so independent worlds never share registrations.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent makes T usable as a component. Spawning an unregistered
// type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &column[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const chunkSize = 64

// chunk is a fixed block of slots; pointers into a chunk stay valid while the
// column grows because chunks are never reallocated.
type chunk[T any] struct {
	values [chunkSize]T
	live   [chunkSize]bool
}

// column stores every value of one component type for one archetype.
type column[T any] struct {
	chunks []*chunk[T]
	free   []int
	next   int
	count  int
}

func (c *column[T]) slot(index int) (*chunk[T], int, bool) {
	if index < 0 || index >= c.next {
		return nil, 0, false
	}
	return c.chunks[index/chunkSize], index % chunkSize, true
}

// Append stores item (a T or *T) and returns its slot, reusing freed slots first.
func (c *column[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/chunkSize >= len(c.chunks) {
			c.chunks = append(c.chunks, &chunk[T]{})
		}
	}

	ch, off, _ := c.slot(index)
	ch.values[off] = value
	ch.live[off] = true
	c.count++
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (c *column[T]) Get(index int) any {
	ch, off, ok := c.slot(index)
	if !ok || !ch.live[off] {
		return nil
	}
	return &ch.values[off]
}

func (c *column[T]) Has(index int) bool {
	ch, off, ok := c.slot(index)
	return ok && ch.live[off]
}

// Delete empties the slot. Deleting an empty slot is a no-op.
func (c *column[T]) Delete(index int) {
	ch, off, ok := c.slot(index)
	if !ok || !ch.live[off] {
		return
	}
	var zero T
	ch.values[off] = zero
	ch.live[off] = false
	c.free = append(c.free, index)
	c.count--
}

func (c *column[T]) Len() int {
	return c.count
}

// Clear drops every value but keeps the allocated chunks for reuse.
func (c *column[T]) Clear() {
	for _, ch := range c.chunks {
		*ch = chunk[T]{}
	}
	c.free = c.free[:0]
	c.next = 0
	c.count = 0
}

// Iter yields the live slots in ascending order.
func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.next; i++ {
			if c.chunks[i/chunkSize].live[i%chunkSize] && !yield(i) {
				return
			}
		}
	}
}
