package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a join over the component containers named by the fields of a struct.
// The type T should be a struct with embedded or named pointer fields, one per component type.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag.
//
// A view hands out pointers into the containers, so it borrows every registered
// field type for writing, the same way a query built with Writes does. Release
// returns the borrows; views built from a Context are released when the system returns.
type View[T any] struct {
	queryBase
	types       []reflect.Type
	slots       []int
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required. A required field whose type is not registered
// makes NewView fail; an unregistered optional field is always nil. NewView also
// fails with a *BorrowConflictError if a field type is borrowed by a live query or view.
func NewView[T any](src Source) (*View[T], error) {
	storage := src.backing()
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		types:       make([]reflect.Type, 0, structType.NumField()),
		slots:       make([]int, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		componentType := fieldType.Elem()
		slot, ok := storage.meta.Slot(componentType)
		if !ok {
			if !isOptional {
				return nil, &UnregisteredComponentError{Type: componentType}
			}
			slot = -1
		}

		v.types = append(v.types, componentType)
		v.slots = append(v.slots, slot)
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	borrows := make([]borrow, 0, len(v.slots))
	for _, slot := range v.slots {
		if slot >= 0 {
			borrows = append(borrows, borrow{slot: slot, mode: ReadWrite})
		}
	}
	base, err := acquire(storage, borrows)
	if err != nil {
		return nil, err
	}
	v.queryBase = base
	src.track(v)

	return v, nil
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is missing any required components.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(e Entity, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, slot := range v.slots {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		var componentPtr unsafe.Pointer
		if slot >= 0 {
			componentPtr = v.storage.containers[slot].pointer(e)
		}

		if componentPtr == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components.
func (v *View[T]) Get(e Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all entities that have all the required components.
// It is driven by the smallest required container; with no required fields it walks
// every live entity.
func (v *View[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		var result T
		for e := range v.driver() {
			if !v.Fill(e, &result) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entities).
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates a new entity with components copied from the view struct.
// Nil optional fields are skipped; a nil required field panics.
func (v *View[T]) Spawn(data T) (Entity, error) {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i, componentType := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)

		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		components = append(components, reflect.NewAt(componentType, componentPtr).Elem().Interface())
	}

	return v.storage.Spawn(components...)
}

func (v *View[T]) driver() iter.Seq[Entity] {
	var best container
	for i, slot := range v.slots {
		if v.optional[i] {
			continue
		}
		c := v.storage.containers[slot]
		if best == nil || c.len() < best.len() {
			best = c
		}
	}

	if best == nil {
		return v.storage.Entities()
	}
	return best.entities()
}
