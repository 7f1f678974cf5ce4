package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// SparseSet stores values of one component type keyed by entity.
// The sparse array maps an entity index to a slot in the dense buffer, and keys holds
// the entity owning each dense slot so removals can repoint the relocated entry.
type SparseSet[T any] struct {
	sparse SparseArray
	dense  DenseBuffer[T]
	keys   []Entity
	typ    reflect.Type
}

// NewSparseSet creates an empty sparse set.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{
		dense: DenseBuffer[T]{layout: LayoutOf[T]()},
		typ:   reflect.TypeFor[T](),
	}
}

// Insert stores value for e. The set is keyed by index: if any generation of
// e's index is present, its value is overwritten and e becomes the owner, so the
// previous id stops resolving. Callers that may hold retired ids must check
// liveness first, as Storage does.
func (s *SparseSet[T]) Insert(e Entity, value T) {
	if index, ok := s.sparse.IndexOf(e.Index()); ok {
		*s.dense.at(index) = value
		s.keys[index] = e
		return
	}

	s.sparse.Insert(e.Index(), s.dense.Len())
	s.dense.Push(value)
	s.keys = append(s.keys, e)
}

// Borrow returns a pointer to the value stored for e. Stale generations never resolve.
func (s *SparseSet[T]) Borrow(e Entity) (*T, bool) {
	index, ok := s.lookup(e)
	if !ok {
		return nil, false
	}
	return s.dense.at(index), true
}

// Contains reports whether a value is stored for e.
func (s *SparseSet[T]) Contains(e Entity) bool {
	_, ok := s.lookup(e)
	return ok
}

// Remove deletes the value stored for e.
func (s *SparseSet[T]) Remove(e Entity) bool {
	index, ok := s.lookup(e)
	if !ok {
		return false
	}

	s.sparse.Remove(e.Index())

	last := len(s.keys) - 1
	if from, moved := s.dense.SwapRemove(index); moved {
		relocated := s.keys[from]
		s.keys[index] = relocated
		s.sparse.Insert(relocated.Index(), index)
	}
	s.keys[last] = 0
	s.keys = s.keys[:last]

	return true
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	return s.dense.Len()
}

// Cap returns the capacity of the dense buffer.
func (s *SparseSet[T]) Cap() int {
	return s.dense.Cap()
}

// Entities iterates over the stored entities in dense order.
func (s *SparseSet[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(s.keys); i++ {
			if !yield(s.keys[i]) {
				return
			}
		}
	}
}

// All iterates over the stored entities and pointers to their values.
func (s *SparseSet[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < len(s.keys); i++ {
			if !yield(s.keys[i], s.dense.at(i)) {
				return
			}
		}
	}
}

// Clear removes every value and releases the dense buffer.
func (s *SparseSet[T]) Clear() {
	s.sparse = SparseArray{}
	s.dense.Release()
	s.keys = nil
}

func (s *SparseSet[T]) lookup(e Entity) (int, bool) {
	index, ok := s.sparse.IndexOf(e.Index())
	if !ok || s.keys[index] != e {
		return 0, false
	}
	return index, true
}

func (s *SparseSet[T]) componentType() reflect.Type {
	return s.typ
}

func (s *SparseSet[T]) insertAny(e Entity, value any) bool {
	switch v := value.(type) {
	case T:
		s.Insert(e, v)
	case *T:
		if v == nil {
			return false
		}
		s.Insert(e, *v)
	default:
		return false
	}
	return true
}

func (s *SparseSet[T]) remove(e Entity) bool {
	return s.Remove(e)
}

func (s *SparseSet[T]) contains(e Entity) bool {
	return s.Contains(e)
}

func (s *SparseSet[T]) pointer(e Entity) unsafe.Pointer {
	ptr, ok := s.Borrow(e)
	if !ok {
		return nil
	}
	return unsafe.Pointer(ptr)
}

func (s *SparseSet[T]) entities() iter.Seq[Entity] {
	return s.Entities()
}

func (s *SparseSet[T]) len() int {
	return s.Len()
}

func (s *SparseSet[T]) stats() ContainerStats {
	return ContainerStats{
		Type:   s.typ,
		Len:    s.dense.Len(),
		Cap:    s.dense.Cap(),
		Bytes:  s.dense.Bytes(),
		Layout: s.dense.Layout(),
		Sparse: s.sparse.Len(),
	}
}

func (s *SparseSet[T]) clear() {
	s.Clear()
}
