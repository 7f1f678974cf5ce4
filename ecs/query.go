package ecs

import (
	"iter"
	"reflect"

	"go.uber.org/zap"
)

//go:generate go run ../cmd/querygen -out query_generated.go -max 12

// keyed is the part of a bound query member used to drive a join.
type keyed interface {
	size() int
	keys() iter.Seq[Entity]
}

// member is a bound query term yielding items of type I.
type member[I any] interface {
	keyed
	fetch(e Entity) (I, bool)
}

// Term requests one component type for a query. Reads yields copies of the
// component, Writes yields pointers into the container.
type Term[I any] struct {
	typ  reflect.Type
	mode AccessMode
	bind func(s *Storage) member[I]
}

// Reads requests read-only access to T.
func Reads[T any]() Term[T] {
	return Term[T]{
		typ:  reflect.TypeFor[T](),
		mode: ReadOnly,
		bind: func(s *Storage) member[T] {
			r, _ := Read[T](s)
			return r
		},
	}
}

// Writes requests mutable access to T.
func Writes[T any]() Term[*T] {
	return Term[*T]{
		typ:  reflect.TypeFor[T](),
		mode: ReadWrite,
		bind: func(s *Storage) member[*T] {
			w, _ := Write[T](s)
			return w
		},
	}
}

// Type returns the requested component type.
func (t Term[I]) Type() reflect.Type {
	return t.typ
}

// Mode returns the requested access mode.
func (t Term[I]) Mode() AccessMode {
	return t.mode
}

func (t Term[I]) request() (reflect.Type, AccessMode) {
	return t.typ, t.mode
}

type term interface {
	request() (reflect.Type, AccessMode)
}

// Source is what queries are built from: a Storage, or a Context handed to a
// running system. Queries built from a Context are released when the system returns.
type Source interface {
	backing() *Storage
	track(q releaser)
}

type releaser interface {
	Release()
}

// queryBase holds the borrows of a live query.
type queryBase struct {
	storage  *Storage
	borrows  []borrow
	released bool
}

// openQuery resolves every term and acquires the borrows. Resolution is all or
// nothing: if any type is unregistered no borrow is taken.
func openQuery(src Source, terms ...term) (queryBase, error) {
	s := src.backing()

	borrows := make([]borrow, len(terms))
	for i, t := range terms {
		typ, mode := t.request()
		slot, ok := s.meta.Slot(typ)
		if !ok {
			return queryBase{}, &UnregisteredComponentError{Type: typ}
		}
		borrows[i] = borrow{slot: slot, mode: mode}
	}

	return acquire(s, borrows)
}

// acquire records borrows on s, or fails without recording any.
func acquire(s *Storage, borrows []borrow) (queryBase, error) {
	if err := s.borrows.acquire(s.meta, borrows); err != nil {
		s.logger.Debug("query rejected", zap.Error(err))
		return queryBase{}, err
	}
	return queryBase{storage: s, borrows: borrows}, nil
}

// Release returns the query's borrows to the storage. It is safe to call more than once.
// The query must not be used afterwards.
func (q *queryBase) Release() {
	if q.released {
		return
	}
	q.released = true
	q.storage.borrows.release(q.borrows)
}

// smallest returns the member with the fewest keys; it drives the join.
func smallest(members ...keyed) keyed {
	best := members[0]
	for _, m := range members[1:] {
		if m.size() < best.size() {
			best = m
		}
	}
	return best
}
