package ecs

// SparseArray maps a sparse key to an optional dense index.
// Entries store index+1 so that the zero value means "absent"; the array grows on
// demand and never shrinks.
type SparseArray struct {
	entries []uint32
}

// Insert records index for key, growing the array when key is beyond its end.
func (a *SparseArray) Insert(key uint32, index int) {
	if int(key) >= len(a.entries) {
		a.entries = append(a.entries, make([]uint32, int(key)+1-len(a.entries))...)
	}
	a.entries[key] = uint32(index) + 1
}

// IndexOf returns the dense index stored for key.
func (a *SparseArray) IndexOf(key uint32) (int, bool) {
	if int(key) >= len(a.entries) {
		return 0, false
	}
	entry := a.entries[key]
	if entry == 0 {
		return 0, false
	}
	return int(entry - 1), true
}

// Contains reports whether key has an index.
func (a *SparseArray) Contains(key uint32) bool {
	_, ok := a.IndexOf(key)
	return ok
}

// Remove clears key and returns the index that was stored for it.
func (a *SparseArray) Remove(key uint32) (int, bool) {
	index, ok := a.IndexOf(key)
	if ok {
		a.entries[key] = 0
	}
	return index, ok
}

// Len returns the length of the backing array, one past the highest key ever inserted.
func (a *SparseArray) Len() int {
	return len(a.entries)
}
