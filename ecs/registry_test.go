package ecs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterComponent(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	require.NoError(t, ecs.RegisterComponent[Position](registry))
	require.NoError(t, ecs.RegisterComponent[Velocity](registry))
	require.NoError(t, ecs.RegisterComponent[Position](registry), "duplicate registration is a no-op")
	assert.Equal(t, 2, registry.Len())
}

func TestRegisterComponentRejectsReferenceKinds(t *testing.T) {
	registry := ecs.NewComponentRegistry()

	assert.ErrorIs(t, ecs.RegisterComponent[*Position](registry), ecs.ErrInvalidComponent)
	assert.ErrorIs(t, ecs.RegisterComponent[map[string]int](registry), ecs.ErrInvalidComponent)
	assert.ErrorIs(t, ecs.RegisterComponent[func()](registry), ecs.ErrInvalidComponent)
	assert.ErrorIs(t, ecs.RegisterComponent[chan int](registry), ecs.ErrInvalidComponent)
	assert.ErrorIs(t, ecs.RegisterComponent[any](registry), ecs.ErrInvalidComponent)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryFinalizedByStorage(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)

	storage := ecs.NewStorage(registry)
	assert.True(t, registry.Finalized())

	err := ecs.RegisterComponent[Velocity](registry)
	assert.True(t, errors.Is(err, ecs.ErrRegistryFinalized))

	_, ok := ecs.Read[Velocity](storage)
	assert.False(t, ok)
	assert.Equal(t, 1, storage.Meta().Len())
}

func TestRegistryBuildsIndependentStorages(t *testing.T) {
	registry := newTestRegistry()
	first := ecs.NewStorage(registry)
	second := ecs.NewStorage(registry)

	e := spawn(t, first, Position{X: 1})
	assert.False(t, second.HasComponent(e, reflect.TypeFor[Position]()))
}

func TestMetaTable(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[Position](),
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[Score](),
	}
	meta := ecs.NewMetaTable(types)

	assert.Equal(t, 3, meta.Len())
	for want, typ := range types {
		slot, ok := meta.Slot(typ)
		assert.True(t, ok)
		assert.Equal(t, want, slot)
		assert.Equal(t, typ, meta.Type(slot))
	}

	slot, ok := ecs.ContainerID[Score](meta)
	assert.True(t, ok)
	assert.Equal(t, 2, slot)

	_, ok = ecs.ContainerID[int32](meta)
	assert.False(t, ok, "Score and its underlying type are distinct components")
	_, ok = meta.Slot(nil)
	assert.False(t, ok)
}
