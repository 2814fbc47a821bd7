package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View matches entities against a struct shape. Each field of T is either a
// pointer to a component type or an embedded EntityId, which receives the id of
// the matched entity. Embedded pointer fields are required; named pointer fields
// can be marked `ecs:"optional"` and are nil when the entity lacks them.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	// idOffset is the offset of the embedded EntityId field, or -1.
	idOffset int
}

// NewView builds a view for the struct type T. Malformed shapes panic.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		storage:  storage,
		idOffset: -1,
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			if !field.Anonymous {
				panic("View EntityId field must be embedded")
			}
			v.idOffset = int(field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates *ptr for the given entity. It returns false when the entity is
// gone or misses a required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.Alive(id.Index()) || !v.matchesArchetype(archetype) {
		return false
	}
	return v.populateResult(unsafe.Pointer(ptr), archetype, int(id.Index()), v.buildStorageIndices(archetype))
}

// Get returns a populated view struct for the entity, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks that every required component is present.
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, requiredType := range v.types {
		if v.optional[i] {
			continue
		}
		if !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}

func (v *View[T]) buildStorageIndices(archetype *Archetype) []int {
	storageIndices := make([]int, len(v.types))
	for i, componentType := range v.types {
		storageIndices[i] = archetype.column(componentType)
	}
	return storageIndices
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, storageIndices []int) bool {
	if v.idOffset >= 0 {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = NewEntityId(archetype.id, uint32(entityIndex))
	}

	for i, storageIdx := range storageIndices {
		fieldPtr := unsafe.Add(resultPtr, v.fieldOffset[i])

		var component any
		if storageIdx >= 0 {
			component = archetype.storages[storageIdx].Get(entityIndex)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*eface)(unsafe.Pointer(&component)).data
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype, yield func(T) bool) bool {
	if len(archetype.storages) == 0 {
		return true
	}

	storageIndices := v.buildStorageIndices(archetype)

	var result T
	resultPtr := unsafe.Pointer(&result)

	for entityIndex := range archetype.storages[0].Iter() {
		if !v.populateResult(resultPtr, archetype, entityIndex, storageIndices) {
			continue
		}
		if !yield(result) {
			return false
		}
	}
	return true
}

// Iter yields one populated struct per matching entity. The struct is reused
// between iterations; copy it to keep it.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, archetype := range v.storage.ordered {
			if !v.matchesArchetype(archetype) {
				continue
			}
			if !v.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}

// eface mirrors the runtime layout of an empty interface value.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
