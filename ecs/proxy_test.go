package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyDefersChanges(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)

	e := proxy.NewEntity()
	assert.True(t, storage.Alive(e), "entities are allocated immediately")

	ecs.Attach(proxy, e, Position{X: 1, Y: 2})
	proxy.AttachComponent(e, &Velocity{DX: 3})
	assert.Equal(t, 2, proxy.Pending())

	_, ok := ecs.Get[Position](storage, e)
	assert.False(t, ok, "attaches wait for the flush")

	require.NoError(t, proxy.Flush())
	assert.Equal(t, 0, proxy.Pending())

	pos, ok := ecs.Get[Position](storage, e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)
	vel, ok := ecs.Get[Velocity](storage, e)
	require.True(t, ok)
	assert.Equal(t, float32(3), vel.DX)
}

func TestProxyDetach(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	e := spawn(t, storage, Position{}, Velocity{})

	ecs.Detach[Velocity](proxy, e)
	assert.True(t, storage.HasComponent(e, typeOf[Velocity]()))

	require.NoError(t, proxy.Flush())
	assert.False(t, storage.HasComponent(e, typeOf[Velocity]()))
	assert.True(t, storage.HasComponent(e, typeOf[Position]()))
}

func TestProxyFlushOrder(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	e := spawn(t, storage, Health{Current: 1})

	// queued before the detach, but attaches run after detaches
	ecs.Attach(proxy, e, Health{Current: 2})
	ecs.Detach[Health](proxy, e)

	var observed *Health
	proxy.Defer(func() {
		observed, _ = ecs.Get[Health](storage, e)
	})

	require.NoError(t, proxy.Flush())
	require.NotNil(t, observed, "deferred functions see the applied attaches")
	assert.Equal(t, 2, observed.Current)
}

func TestProxyDropsCommandsForRemovedEntities(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	doomed := spawn(t, storage, Position{})
	kept := spawn(t, storage, Position{})

	ecs.Attach(proxy, doomed, Velocity{})
	ecs.Detach[Position](proxy, doomed)
	proxy.RemoveEntity(doomed)
	ecs.Attach(proxy, kept, Velocity{DX: 1})

	require.NoError(t, proxy.Flush())

	assert.False(t, storage.Alive(doomed))
	assert.Equal(t, 1, storage.EntityCount())
	assert.True(t, storage.HasComponent(kept, typeOf[Velocity]()))

	r, _ := ecs.Read[Velocity](storage)
	assert.Equal(t, 1, r.Len())
}

func TestProxyRemoveTwice(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	e := spawn(t, storage, Position{})

	proxy.RemoveEntity(e)
	proxy.RemoveEntity(e)
	require.NoError(t, proxy.Flush())

	next := storage.NewEntity()
	other := storage.NewEntity()
	assert.NotEqual(t, next, other, "a double removal must not free the id twice")
}

func TestProxyFlushErrors(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	e := spawn(t, storage, Position{})

	proxy.AttachComponent(e, Unregistered{})
	proxy.AttachComponent(e, nil)
	ecs.Attach(proxy, e, Score(7))

	err := proxy.Flush()
	require.Error(t, err)

	var unregistered *ecs.UnregisteredComponentError
	assert.ErrorAs(t, err, &unregistered)
	assert.ErrorIs(t, err, ecs.ErrInvalidComponent)

	score, ok := ecs.Get[Score](storage, e)
	require.True(t, ok, "later attaches still apply")
	assert.Equal(t, Score(7), *score)

	assert.Equal(t, 0, proxy.Pending())
	assert.NoError(t, proxy.Flush())
}

func TestProxyAppliesCommandsQueuedByDefers(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	e := spawn(t, storage, Position{}, Velocity{})

	var steps []string
	proxy.Defer(func() {
		steps = append(steps, "first")
		ecs.Attach(proxy, e, Score(7))
		ecs.Detach[Velocity](proxy, e)
		proxy.Defer(func() {
			steps = append(steps, "second")
		})
	})

	require.NoError(t, proxy.Flush())
	assert.Equal(t, 0, proxy.Pending())
	assert.Equal(t, []string{"first", "second"}, steps)

	score, ok := ecs.Get[Score](storage, e)
	require.True(t, ok, "an attach queued by a deferred function is applied")
	assert.Equal(t, Score(7), *score)
	assert.False(t, storage.HasComponent(e, typeOf[Velocity]()))

	require.NoError(t, proxy.Flush())
	score, ok = ecs.Get[Score](storage, e)
	require.True(t, ok)
	assert.Equal(t, Score(7), *score)
}

func TestProxyDeferredCommandsRespectRemovals(t *testing.T) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)
	doomed := spawn(t, storage, Position{})

	proxy.RemoveEntity(doomed)
	proxy.Defer(func() {
		ecs.Attach(proxy, doomed, Score(1))
	})

	require.NoError(t, proxy.Flush())
	assert.False(t, storage.Alive(doomed))
	r, _ := ecs.Read[Score](storage)
	assert.Equal(t, 0, r.Len())

	// the buffers keep working across flushes
	kept := spawn(t, storage, Position{})
	ecs.Attach(proxy, kept, Score(2))
	require.NoError(t, proxy.Flush())
	assert.True(t, storage.HasComponent(kept, typeOf[Score]()))
}
