package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSetRoundTrip(t *testing.T) {
	set := ecs.NewSparseSet[Position]()
	e := ecs.NewEntity(42, 0)

	_, ok := set.Borrow(e)
	assert.False(t, ok)

	set.Insert(e, Position{X: 1, Y: 2})
	pos, ok := set.Borrow(e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	assert.True(t, set.Remove(e))
	_, ok = set.Borrow(e)
	assert.False(t, ok)
	assert.False(t, set.Remove(e))
	assert.Equal(t, 0, set.Len())
}

func TestSparseSetOverwriteInPlace(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	e := ecs.NewEntity(3, 0)

	set.Insert(e, 1)
	set.Insert(e, 2)

	assert.Equal(t, 1, set.Len())
	v, ok := set.Borrow(e)
	require.True(t, ok)
	assert.Equal(t, 2, *v)
}

func TestSparseSetCapacitySequence(t *testing.T) {
	set := ecs.NewSparseSet[string]()

	capacities := []int{set.Cap()}
	for i, value := range []string{"a", "b", "c"} {
		set.Insert(ecs.NewEntity(uint32(i), 0), value)
		capacities = append(capacities, set.Cap())
	}

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []int{0, 1, 2, 4}, capacities)
}

func TestSparseSetSwapRemoveRepointsRelocatedKey(t *testing.T) {
	set := ecs.NewSparseSet[string]()
	a := ecs.NewEntity(0, 0)
	b := ecs.NewEntity(1, 0)
	c := ecs.NewEntity(2, 0)

	set.Insert(a, "A")
	set.Insert(b, "B")
	set.Insert(c, "C")

	require.True(t, set.Remove(a))

	v, ok := set.Borrow(b)
	require.True(t, ok)
	assert.Equal(t, "B", *v)

	v, ok = set.Borrow(c)
	require.True(t, ok, "the relocated entry must still resolve")
	assert.Equal(t, "C", *v)

	// C now occupies A's old slot; removing it must not disturb B.
	require.True(t, set.Remove(c))
	v, ok = set.Borrow(b)
	require.True(t, ok)
	assert.Equal(t, "B", *v)
	assert.Equal(t, 1, set.Len())
}

func TestSparseSetStaleGenerationNeverResolves(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	old := ecs.NewEntity(7, 0)
	current := ecs.NewEntity(7, 1)

	set.Insert(old, 10)
	_, ok := set.Borrow(current)
	assert.False(t, ok)
	assert.False(t, set.Remove(current))

	set.Insert(current, 20)
	assert.Equal(t, 1, set.Len(), "same index replaces the stale value")
	_, ok = set.Borrow(old)
	assert.False(t, ok)

	v, ok := set.Borrow(current)
	require.True(t, ok)
	assert.Equal(t, 20, *v)
}

func TestSparseSetRandomizedAgainstMap(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	want := make(map[ecs.Entity]int)

	// Linear congruential sequence keeps the test deterministic.
	seed := uint32(12345)
	next := func() uint32 {
		seed = seed*1103515245 + 12345
		return seed >> 16
	}

	for step := 0; step < 5000; step++ {
		e := ecs.NewEntity(next()%64, 0)
		if next()%3 == 0 {
			_, present := want[e]
			assert.Equal(t, present, set.Remove(e))
			delete(want, e)
			continue
		}
		value := int(next())
		set.Insert(e, value)
		want[e] = value
	}

	assert.Equal(t, len(want), set.Len())
	for e, value := range want {
		v, ok := set.Borrow(e)
		require.True(t, ok, "entity %v", e)
		assert.Equal(t, value, *v)
	}

	seen := 0
	for e, v := range set.All() {
		assert.Equal(t, want[e], *v)
		seen++
	}
	assert.Equal(t, len(want), seen)
}

func TestSparseSetClear(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	e := ecs.NewEntity(1, 0)
	set.Insert(e, 1)

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, set.Cap())
	assert.False(t, set.Contains(e))

	set.Insert(e, 2)
	assert.True(t, set.Contains(e))
}

func TestSparseSetInsertTransfersIndexOwnership(t *testing.T) {
	set := ecs.NewSparseSet[Position]()
	live := ecs.NewEntity(3, 2)
	retired := ecs.NewEntity(3, 1)

	set.Insert(live, Position{X: 1})
	set.Insert(retired, Position{X: 2})

	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains(live), "the previous owner of the index stops resolving")
	pos, ok := set.Borrow(retired)
	require.True(t, ok)
	assert.Equal(t, float32(2), pos.X)
}

func TestStorageRejectsRetiredIdBeforeInsert(t *testing.T) {
	storage := newTestStorage()
	retired := spawn(t, storage, Position{X: 1})
	storage.RemoveEntity(retired)
	live := spawn(t, storage, Position{X: 5})
	require.Equal(t, retired.Index(), live.Index())

	assert.ErrorIs(t, ecs.Insert(storage, retired, Position{X: 9}), ecs.ErrStaleEntity)
	assert.ErrorIs(t, storage.AddComponent(retired, Position{X: 9}), ecs.ErrStaleEntity)

	pos, ok := ecs.Get[Position](storage, live)
	require.True(t, ok)
	assert.Equal(t, float32(5), pos.X)
}
