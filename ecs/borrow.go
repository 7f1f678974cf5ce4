package ecs

import (
	"github.com/TheBitDrifter/mask"
)

// AccessMode is how a query borrows a component container.
type AccessMode uint8

const (
	ReadOnly AccessMode = iota + 1
	ReadWrite
)

func (m AccessMode) String() string {
	switch m {
	case ReadOnly:
		return "read"
	case ReadWrite:
		return "write"
	default:
		return "unknown"
	}
}

type borrow struct {
	slot int
	mode AccessMode
}

// borrowTracker records which container slots are borrowed by live queries.
// Any number of readers may share a slot; a writer needs the slot to itself.
type borrowTracker struct {
	readers []int
	reads   mask.Mask
	writes  mask.Mask
}

func newBorrowTracker(slots int) borrowTracker {
	return borrowTracker{readers: make([]int, slots)}
}

// acquire checks the request against itself and against the outstanding borrows,
// and records it when there is no conflict. On conflict nothing is recorded.
func (b *borrowTracker) acquire(meta *MetaTable, request []borrow) error {
	var reads, writes mask.Mask

	for _, r := range request {
		bit := slotMask(r.slot)

		var held AccessMode
		switch {
		case writes.ContainsAny(bit), b.writes.ContainsAny(bit):
			held = ReadWrite
		case r.mode == ReadWrite && (reads.ContainsAny(bit) || b.reads.ContainsAny(bit)):
			held = ReadOnly
		}
		if held != 0 {
			return &BorrowConflictError{
				Type:      meta.Type(r.slot),
				Held:      held,
				Requested: r.mode,
			}
		}

		if r.mode == ReadWrite {
			writes.Mark(uint32(r.slot))
		} else {
			reads.Mark(uint32(r.slot))
		}
	}

	for _, r := range request {
		if r.mode == ReadWrite {
			b.writes.Mark(uint32(r.slot))
			continue
		}
		b.readers[r.slot]++
		b.reads.Mark(uint32(r.slot))
	}
	return nil
}

func (b *borrowTracker) release(request []borrow) {
	for _, r := range request {
		if r.mode == ReadWrite {
			b.writes.Unmark(uint32(r.slot))
			continue
		}
		if b.readers[r.slot] == 0 {
			continue
		}
		b.readers[r.slot]--
		if b.readers[r.slot] == 0 {
			b.reads.Unmark(uint32(r.slot))
		}
	}
}

func slotMask(slot int) mask.Mask {
	var m mask.Mask
	m.Mark(uint32(slot))
	return m
}
