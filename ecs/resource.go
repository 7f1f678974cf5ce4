package ecs

import "reflect"

// Resource provides access to a single value that is not associated with any
// entity. Use this for global state such as configuration, timers or input.
type Resource[T any] struct {
	storage *Storage
	ptr     *T
}

// NewResource creates a Resource accessor for the given storage.
// If the resource does not exist yet it is created from initializer, or from the
// zero value when no initializer is given. The resource exists after the call.
func NewResource[T any](s *Storage, initializer ...T) *Resource[T] {
	ptr, ok := lookupResource[T](s)
	if !ok {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		ptr = SetResource(s, value)
	}

	return &Resource[T]{
		storage: s,
		ptr:     ptr,
	}
}

// SetResource stores value as the storage's T resource and returns a pointer to it.
// An existing resource is overwritten in place, so accessors keep seeing it.
func SetResource[T any](s *Storage, value T) *T {
	if ptr, ok := lookupResource[T](s); ok {
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	s.resources.Put(typeId(reflect.TypeFor[T]()), ptr)
	return ptr
}

// Get returns a pointer to the resource.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil {
		r.ptr, _ = lookupResource[T](r.storage)
	}
	return r.ptr
}

// Exists returns true if the resource has been added to storage
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

func lookupResource[T any](s *Storage) (*T, bool) {
	value, ok := s.resources.Get(typeId(reflect.TypeFor[T]()))
	if !ok {
		return nil, false
	}
	return value.(*T), true
}
