package ecs

// FreeList is an unbounded last-in-first-out pool of retired items.
// An item is either held by its owner or stored here, never both.
type FreeList[T any] struct {
	items []T
}

// NewFreeList creates a free list with room for capacity items.
func NewFreeList[T any](capacity int) *FreeList[T] {
	return &FreeList[T]{items: make([]T, 0, capacity)}
}

// Pop returns the most recently stored item.
func (f *FreeList[T]) Pop() (T, bool) {
	var zero T
	n := len(f.items)
	if n == 0 {
		return zero, false
	}

	item := f.items[n-1]
	f.items[n-1] = zero
	f.items = f.items[:n-1]
	return item, true
}

// Store puts an item back into the pool. No deduplication is performed.
func (f *FreeList[T]) Store(item T) {
	f.items = append(f.items, item)
}

// Len returns the number of pooled items.
func (f *FreeList[T]) Len() int {
	return len(f.items)
}
