package ecs

import "iter"

// ReadContainer is a read-only view of one component container.
// Values are returned by copy.
type ReadContainer[T any] struct {
	set *SparseSet[T]
}

// Read returns a read-only accessor for T, or false if T was never registered.
// Accessors take no borrows: a ReadContainer may observe writes made through a
// live query or view. Build a query with Reads when access must be checked.
func Read[T any](s *Storage) (*ReadContainer[T], bool) {
	set, ok := sparseSetOf[T](s)
	if !ok {
		return nil, false
	}
	return &ReadContainer[T]{set: set}, true
}

// Borrow returns the value stored for e.
func (r *ReadContainer[T]) Borrow(e Entity) (T, bool) {
	ptr, ok := r.set.Borrow(e)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// Contains reports whether e has a T.
func (r *ReadContainer[T]) Contains(e Entity) bool {
	return r.set.Contains(e)
}

// Len returns the number of entities with a T.
func (r *ReadContainer[T]) Len() int {
	return r.set.Len()
}

// Iter iterates over every entity with a T and a copy of its value.
func (r *ReadContainer[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for e, ptr := range r.set.All() {
			if !yield(e, *ptr) {
				return
			}
		}
	}
}

func (r *ReadContainer[T]) fetch(e Entity) (T, bool) { return r.Borrow(e) }
func (r *ReadContainer[T]) size() int                { return r.set.Len() }
func (r *ReadContainer[T]) keys() iter.Seq[Entity]   { return r.set.Entities() }

// WriteContainer is a mutable view of one component container.
type WriteContainer[T any] struct {
	set *SparseSet[T]
}

// Write returns a mutable accessor for T, or false if T was never registered.
// Accessors take no borrows, so the caller must not write through one while a
// query or view borrows T. Build a query with Writes when access must be checked.
func Write[T any](s *Storage) (*WriteContainer[T], bool) {
	set, ok := sparseSetOf[T](s)
	if !ok {
		return nil, false
	}
	return &WriteContainer[T]{set: set}, true
}

// Borrow returns a copy of the value stored for e.
func (w *WriteContainer[T]) Borrow(e Entity) (T, bool) {
	ptr, ok := w.set.Borrow(e)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// BorrowMut returns a pointer to the value stored for e. The pointer is valid until
// the next structural change to the container.
func (w *WriteContainer[T]) BorrowMut(e Entity) (*T, bool) {
	return w.set.Borrow(e)
}

// Contains reports whether e has a T.
func (w *WriteContainer[T]) Contains(e Entity) bool {
	return w.set.Contains(e)
}

// Len returns the number of entities with a T.
func (w *WriteContainer[T]) Len() int {
	return w.set.Len()
}

// Iter iterates over every entity with a T and a pointer to its value.
func (w *WriteContainer[T]) Iter() iter.Seq2[Entity, *T] {
	return w.set.All()
}

func (w *WriteContainer[T]) fetch(e Entity) (*T, bool) { return w.set.Borrow(e) }
func (w *WriteContainer[T]) size() int                 { return w.set.Len() }
func (w *WriteContainer[T]) keys() iter.Seq[Entity]    { return w.set.Entities() }

func sparseSetOf[T any](s *Storage) (*SparseSet[T], bool) {
	slot, ok := ContainerID[T](s.meta)
	if !ok {
		return nil, false
	}
	return s.containers[slot].(*SparseSet[T]), true
}
