package ecs

import (
	"reflect"
	"slices"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	// ordered keeps archetypes in creation order so iteration is deterministic.
	ordered    []*Archetype
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns the archetype for the given component values, if one exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

// GetArchetypeByTypes returns the archetype for the given component types, if one exists.
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := slices.Clone(types)
	sort.Sort(byTypeName(sorted))
	archetype, _ := s.archetypes.Get(hashTypesToUint32(sorted))
	return archetype
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	archetype, ok := s.archetypes.Get(id)
	if !ok {
		archetype = NewArchetype(id, types, s.registry)
		s.archetypes.Put(id, archetype)
		s.ordered = append(s.ordered, archetype)
	} else if !slices.Equal(archetype.types, types) {
		panic("archetype id collision")
	}
	return archetype
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	archetype := s.archetypeFor(extractComponentTypes(components))
	return NewEntityId(archetype.id, archetype.Spawn(components))
}

// Delete removes the entity. Unknown or already deleted ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.Delete(id.Index())
	}
}

// Alive reports whether id still refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.Alive(id.Index())
}

// Clear deletes every entity. Singletons are kept.
func (s *Storage) Clear() {
	for _, archetype := range s.ordered {
		archetype.Clear()
	}
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.ordered {
		total += archetype.Len()
	}
	return total
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// Archetypes returns the archetypes in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type. Replacing an
// existing singleton overwrites it in place, so cached pointers stay valid.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		panic("cannot add nil singleton")
	}
	if entry, ok := s.singletons[typ]; ok {
		reflect.NewAt(typ, entry.dataPtr).Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{
		typ:     typ,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton points *out (a **T) at the singleton of type T.
// It returns false when no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	entry := s.getSingletonEntry(target.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	target.Elem().Set(reflect.NewAt(entry.typ, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates an FNV-1a hash over the type descriptors of a sorted slice.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*eface)(unsafe.Pointer(&t)).data)
		h ^= uint32(ptr) ^ uint32(uint64(ptr)>>32)
		h *= prime
	}

	return h
}

// ComponentReader is anything that can look up a component by entity.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil when it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
