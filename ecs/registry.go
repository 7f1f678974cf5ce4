package ecs

import (
	"fmt"
	"reflect"
)

// MaxComponentTypes is the number of component types a single registry can hold.
const MaxComponentTypes = 256

// ComponentRegistry collects the component types of an ECS instance.
// Each Storage is built from one registry; once built, the registry is finalized
// and no further types can be added.
type ComponentRegistry struct {
	types     []reflect.Type
	factories []func() container
	index     map[reflect.Type]int
	finalized bool
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		index: make(map[reflect.Type]int),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before the Storage is built.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) error {
	t := reflect.TypeFor[T]()

	if r.finalized {
		return fmt.Errorf("register %v: %w", t, ErrRegistryFinalized)
	}
	if _, ok := r.index[t]; ok {
		return nil
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return fmt.Errorf("register %v: components must be value types: %w", t, ErrInvalidComponent)
	}

	if len(r.types) >= MaxComponentTypes {
		return fmt.Errorf("register %v: %w", t, ErrTooManyComponents)
	}

	r.index[t] = len(r.types)
	r.types = append(r.types, t)
	r.factories = append(r.factories, func() container {
		return NewSparseSet[T]()
	})
	return nil
}

// MustRegisterComponent is like RegisterComponent but panics on error.
func MustRegisterComponent[T any](r *ComponentRegistry) {
	if err := RegisterComponent[T](r); err != nil {
		panic(err)
	}
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.types)
}

// Finalized reports whether the registry has been used to build a Storage.
func (r *ComponentRegistry) Finalized() bool {
	return r.finalized
}

// finalize freezes the registry and creates one container per registered type,
// in registration order.
func (r *ComponentRegistry) finalize() (*MetaTable, []container) {
	r.finalized = true

	containers := make([]container, len(r.factories))
	for slot, factory := range r.factories {
		containers[slot] = factory()
	}
	return NewMetaTable(r.types), containers
}
