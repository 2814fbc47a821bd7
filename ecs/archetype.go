package ecs

import (
	"reflect"
	"slices"
)

// byTypeName orders component types so that the same set always hashes to the same archetype.
type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly one particular set of component types.
// All columns are appended and deleted in lockstep, so a slot index addresses the
// same entity in each of them.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
}

// NewArchetype creates an archetype for the given sorted component types.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

func (a *Archetype) column(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}
		if idx := a.column(compType); idx >= 0 {
			slot = a.storages[idx].Append(comp)
		}
	}
	if slot < 0 {
		panic("archetype spawn stored no components")
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the component, or nil.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// Delete frees the entity's slot in every column.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// Alive reports whether the slot currently holds an entity.
func (a *Archetype) Alive(entityIndex uint32) bool {
	return len(a.storages) > 0 && a.storages[0].Has(int(entityIndex))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Clear removes every entity while keeping the columns allocated.
func (a *Archetype) Clear() {
	for _, storage := range a.storages {
		storage.Clear()
	}
}

// Iter returns an iterator over all live EntityIds in this archetype
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
