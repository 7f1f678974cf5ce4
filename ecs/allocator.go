package ecs

import "iter"

type allocatorSlot struct {
	generation uint16
	live       bool
}

// Allocator issues generational entity identifiers.
// Freed identifiers are recycled through a FreeList; the generation is bumped when the
// index is issued again, so holders of the old identifier can detect the reuse.
type Allocator struct {
	free  *FreeList[Entity]
	slots []allocatorSlot
	next  uint32
	live  int
}

// NewAllocator creates an allocator with room for capacity identifiers.
func NewAllocator(capacity int) *Allocator {
	return &Allocator{
		free:  NewFreeList[Entity](capacity),
		slots: make([]allocatorSlot, 0, capacity),
	}
}

// Alloc returns a recycled identifier with its generation incremented, or a fresh
// identifier with generation 0.
func (a *Allocator) Alloc() Entity {
	a.live++

	if retired, ok := a.free.Pop(); ok {
		generation := retired.Generation() + 1
		a.slots[retired.Index()] = allocatorSlot{generation: generation, live: true}
		return NewEntity(retired.Index(), generation)
	}

	index := a.next
	a.next++
	a.slots = append(a.slots, allocatorSlot{live: true})
	return NewEntity(index, 0)
}

// Dealloc retires an identifier. Identifiers that are stale or already freed are
// ignored and false is returned.
func (a *Allocator) Dealloc(e Entity) bool {
	if !a.Alive(e) {
		return false
	}

	a.slots[e.Index()].live = false
	a.free.Store(e)
	a.live--
	return true
}

// Alive reports whether e is the currently issued identifier for its index.
func (a *Allocator) Alive(e Entity) bool {
	index := e.Index()
	if index >= a.next {
		return false
	}
	slot := a.slots[index]
	return slot.live && slot.generation == e.Generation()
}

// Len returns the number of live identifiers.
func (a *Allocator) Len() int {
	return a.live
}

// Cap returns the number of distinct indices minted so far.
func (a *Allocator) Cap() int {
	return int(a.next)
}

// Entities iterates over the live identifiers in index order.
func (a *Allocator) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for index, slot := range a.slots {
			if !slot.live {
				continue
			}
			if !yield(NewEntity(uint32(index), slot.generation)) {
				return
			}
		}
	}
}
