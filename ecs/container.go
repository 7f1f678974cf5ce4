package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// container is a type-erased sparse set.
type container interface {
	componentType() reflect.Type
	insertAny(e Entity, value any) bool
	remove(e Entity) bool
	contains(e Entity) bool
	pointer(e Entity) unsafe.Pointer
	entities() iter.Seq[Entity]
	len() int
	stats() ContainerStats
	clear()
}

// ContainerStats describes the memory held by one component container.
type ContainerStats struct {
	Type   reflect.Type
	Len    int
	Cap    int
	Bytes  uintptr
	Layout Layout
	Sparse int
}
