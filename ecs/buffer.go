package ecs

import (
	"fmt"
	"unsafe"
)

// Layout describes the memory footprint of one element.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

// DenseBuffer is a growable array of fixed-layout slots addressed by index.
// Slots [0, Len) hold live elements; slots [Len, Cap) hold zero values.
// Capacity starts at 0, becomes 1 on the first push and doubles afterwards.
//
// Indices are not stable across removal: SwapRemove relocates the last element and
// reports where it came from so callers can fix their own indexes.
type DenseBuffer[T any] struct {
	layout Layout
	items  []T
	len    int
}

// NewDenseBuffer creates an empty buffer. No memory is allocated until the first push.
func NewDenseBuffer[T any]() *DenseBuffer[T] {
	return &DenseBuffer[T]{layout: LayoutOf[T]()}
}

// Len returns the number of live elements.
func (b *DenseBuffer[T]) Len() int {
	return b.len
}

// Cap returns the number of slots in the backing array.
func (b *DenseBuffer[T]) Cap() int {
	return len(b.items)
}

// Layout returns the element layout the buffer was created for.
func (b *DenseBuffer[T]) Layout() Layout {
	return b.layout
}

// Bytes returns the size of the backing array in bytes.
func (b *DenseBuffer[T]) Bytes() uintptr {
	return uintptr(len(b.items)) * b.layout.Size
}

// Push appends value, growing the backing array when it is full.
func (b *DenseBuffer[T]) Push(value T) {
	if b.len == len(b.items) {
		b.grow()
	}
	b.items[b.len] = value
	b.len++
}

// Borrow returns a pointer to the element at index, or false when index is out of range.
// The pointer stays valid until the next Push, Remove, SwapRemove or Release.
func (b *DenseBuffer[T]) Borrow(index int) (*T, bool) {
	if index < 0 || index >= b.len {
		return nil, false
	}
	return b.at(index), true
}

// at returns the slot at index without a bounds check against Len.
func (b *DenseBuffer[T]) at(index int) *T {
	return &b.items[index]
}

// Remove deletes the element at index and shifts the following elements left,
// preserving their order.
func (b *DenseBuffer[T]) Remove(index int) {
	b.mustContain(index)

	copy(b.items[index:b.len], b.items[index+1:b.len])
	b.len--

	var zero T
	b.items[b.len] = zero
}

// SwapRemove deletes the element at index by moving the last element into its slot.
// It returns the previous index of the moved element, and false when nothing moved
// because index was the last element.
func (b *DenseBuffer[T]) SwapRemove(index int) (int, bool) {
	b.mustContain(index)

	last := b.len - 1
	if index != last {
		b.items[index] = b.items[last]
	}

	var zero T
	b.items[last] = zero
	b.len--

	return last, index != last
}

// Release drops the backing array. The buffer can be reused and grows from capacity 0 again.
func (b *DenseBuffer[T]) Release() {
	if len(b.items) == 0 {
		return
	}
	b.items = nil
	b.len = 0
}

func (b *DenseBuffer[T]) grow() {
	capacity := 1
	if len(b.items) > 0 {
		capacity = len(b.items) << 1
	}

	items := make([]T, capacity)
	copy(items, b.items[:b.len])
	b.items = items
}

func (b *DenseBuffer[T]) mustContain(index int) {
	if index < 0 || index >= b.len {
		panic(fmt.Sprintf("ecs: dense index %d out of bounds (len %d)", index, b.len))
	}
}
