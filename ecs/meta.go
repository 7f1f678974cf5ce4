package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// MetaTable maps a component type to the slot of its container inside Storage.
// It is built once from the final set of registered types and never changes.
type MetaTable struct {
	slots *intmap.Map[int, int]
	types []reflect.Type
}

// NewMetaTable creates a table where each type's slot is its position in types.
func NewMetaTable(types []reflect.Type) *MetaTable {
	m := &MetaTable{
		slots: intmap.New[int, int](len(types)),
		types: append([]reflect.Type(nil), types...),
	}
	for slot, t := range m.types {
		m.slots.Put(typeId(t), slot)
	}
	return m
}

// Slot returns the container slot for t.
func (m *MetaTable) Slot(t reflect.Type) (int, bool) {
	if t == nil {
		return 0, false
	}
	return m.slots.Get(typeId(t))
}

// ContainerID returns the container slot for T.
func ContainerID[T any](m *MetaTable) (int, bool) {
	return m.Slot(reflect.TypeFor[T]())
}

// Type returns the component type stored at slot.
func (m *MetaTable) Type(slot int) reflect.Type {
	return m.types[slot]
}

// Len returns the number of registered component types.
func (m *MetaTable) Len() int {
	return len(m.types)
}

// ifaceHeader mirrors the runtime layout of a non-empty interface value.
type ifaceHeader struct {
	itab unsafe.Pointer
	data unsafe.Pointer
}

// typeId returns the address of the runtime type descriptor behind t, which is
// unique per type for the lifetime of the process.
func typeId(t reflect.Type) int {
	ptr := (*ifaceHeader)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
