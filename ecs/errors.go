package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrRegistryFinalized is returned when a component is registered after the
	// registry has been used to build a Storage.
	ErrRegistryFinalized = errors.New("ecs: component registry is finalized")

	// ErrTooManyComponents is returned when more than MaxComponentTypes are registered.
	ErrTooManyComponents = fmt.Errorf("ecs: more than %d component types", MaxComponentTypes)

	// ErrInvalidComponent is returned for values that cannot be stored as components.
	ErrInvalidComponent = errors.New("ecs: invalid component")

	// ErrStaleEntity is returned when an operation targets an entity that is not alive.
	ErrStaleEntity = errors.New("ecs: entity is not alive")
)

// UnregisteredComponentError reports a component type that was not registered
// when the Storage was built.
type UnregisteredComponentError struct {
	Type reflect.Type
}

func (e *UnregisteredComponentError) Error() string {
	return fmt.Sprintf("ecs: component type %v is not registered", e.Type)
}

// BorrowConflictError reports a query that would alias a container already
// borrowed in an incompatible mode.
type BorrowConflictError struct {
	Type      reflect.Type
	Held      AccessMode
	Requested AccessMode
}

func (e *BorrowConflictError) Error() string {
	return fmt.Sprintf("ecs: cannot borrow %v for %v, already borrowed for %v", e.Type, e.Requested, e.Held)
}
