package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movable struct {
	*Position
	*Velocity
}

type character struct {
	Pos    *Position
	Health *Health
	Name   *Name `ecs:"optional"`
}

func TestViewGet(t *testing.T) {
	storage := newTestStorage()
	e := spawn(t, storage, Position{X: 1}, Velocity{DX: 2})
	partial := spawn(t, storage, Position{X: 3})

	view, err := ecs.NewView[movable](storage)
	require.NoError(t, err)

	m := view.Get(e)
	require.NotNil(t, m)
	assert.Equal(t, float32(1), m.X)
	assert.Equal(t, float32(2), m.DX)

	m.X = 10
	pos, _ := ecs.Get[Position](storage, e)
	assert.Equal(t, float32(10), pos.X, "view fields point into the containers")

	assert.Nil(t, view.Get(partial))
}

func TestViewOptionalFields(t *testing.T) {
	storage := newTestStorage()
	named := spawn(t, storage, Position{}, Health{Current: 3}, Name{Value: "orc"})
	anonymous := spawn(t, storage, Position{}, Health{Current: 4})
	spawn(t, storage, Position{}, Name{Value: "ghost"})

	view, err := ecs.NewView[character](storage)
	require.NoError(t, err)

	got := map[ecs.Entity]character{}
	for e, c := range view.Iter() {
		got[e] = c
	}
	require.Len(t, got, 2)

	require.NotNil(t, got[named].Name)
	assert.Equal(t, "orc", got[named].Name.Value)
	assert.Nil(t, got[anonymous].Name)
	assert.Equal(t, 4, got[anonymous].Health.Current)

	var filled character
	require.True(t, view.Fill(anonymous, &filled))
	assert.Nil(t, filled.Name)
}

func TestViewUnregistered(t *testing.T) {
	storage := newTestStorage()

	type required struct {
		*Position
		*Unregistered
	}
	_, err := ecs.NewView[required](storage)
	var unregistered *ecs.UnregisteredComponentError
	require.ErrorAs(t, err, &unregistered)

	type optional struct {
		Pos   *Position
		Extra *Unregistered `ecs:"optional"`
	}
	view, err := ecs.NewView[optional](storage)
	require.NoError(t, err)

	e := spawn(t, storage, Position{X: 5})
	v := view.Get(e)
	require.NotNil(t, v)
	assert.Nil(t, v.Extra)
}

func TestViewAllOptional(t *testing.T) {
	storage := newTestStorage()

	type loose struct {
		Name *Name `ecs:"optional"`
	}
	spawn(t, storage, Name{Value: "a"})
	spawn(t, storage, Position{})
	storage.NewEntity()

	view, err := ecs.NewView[loose](storage)
	require.NoError(t, err)

	count, named := 0, 0
	for v := range view.Values() {
		count++
		if v.Name != nil {
			named++
		}
	}
	assert.Equal(t, 3, count, "with no required field every live entity matches")
	assert.Equal(t, 1, named)
}

func TestViewSpawn(t *testing.T) {
	storage := newTestStorage()
	view, err := ecs.NewView[character](storage)
	require.NoError(t, err)

	e, err := view.Spawn(character{
		Pos:    &Position{X: 7},
		Health: &Health{Current: 9},
	})
	require.NoError(t, err)

	assert.True(t, storage.HasComponent(e, typeOf[Position]()))
	assert.True(t, storage.HasComponent(e, typeOf[Health]()))
	assert.False(t, storage.HasComponent(e, typeOf[Name]()))

	assert.Panics(t, func() {
		view.Spawn(character{Pos: &Position{}})
	})
}

func TestViewShapeMisuse(t *testing.T) {
	storage := newTestStorage()

	assert.Panics(t, func() {
		ecs.NewView[Position](storage)
	})

	type notPointer struct {
		Pos Position
	}
	assert.Panics(t, func() {
		ecs.NewView[notPointer](storage)
	})

	type badTag struct {
		Pos *Position `ecs:"sometimes"`
	}
	assert.Panics(t, func() {
		ecs.NewView[badTag](storage)
	})
}

func TestViewBorrowsFieldTypes(t *testing.T) {
	storage := newTestStorage()

	writer, err := ecs.NewQuery1(storage, ecs.Writes[Velocity]())
	require.NoError(t, err)

	_, err = ecs.NewView[movable](storage)
	var conflict *ecs.BorrowConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, typeOf[Velocity](), conflict.Type)

	writer.Release()
	view, err := ecs.NewView[movable](storage)
	require.NoError(t, err)

	_, err = ecs.NewQuery1(storage, ecs.Reads[Position]())
	require.ErrorAs(t, err, &conflict, "a live view holds its fields for writing")
	assert.Equal(t, ecs.ReadWrite, conflict.Held)

	type loose struct {
		Name  *Name         `ecs:"optional"`
		Extra *Unregistered `ecs:"optional"`
	}
	_, err = ecs.NewView[loose](storage)
	require.NoError(t, err, "unregistered optional fields borrow nothing")

	view.Release()
	q, err := ecs.NewQuery1(storage, ecs.Writes[Position]())
	require.NoError(t, err)
	q.Release()
}

func TestViewFromContextIsReleased(t *testing.T) {
	storage := newTestStorage()
	e := spawn(t, storage, Position{X: 1}, Velocity{DX: 2})

	scheduler := ecs.NewScheduler(storage)
	step := ecs.SystemFunc(func(_ *ecs.Proxy, ctx *ecs.Context) error {
		view, err := ecs.NewView[movable](ctx)
		if err != nil {
			return err
		}
		for _, m := range view.Iter() {
			m.X += m.DX
		}
		return nil
	})
	scheduler.Register(step)
	scheduler.Register(step)

	require.NoError(t, scheduler.Once(0))
	pos, _ := ecs.Get[Position](storage, e)
	assert.Equal(t, float32(5), pos.X)
}
