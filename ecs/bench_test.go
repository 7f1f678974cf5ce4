package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/sparsecs/ecs"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

func BenchmarkSpawn(b *testing.B) {
	storage := newTestStorage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkSpawnWithMultipleComponents(b *testing.B) {
	storage := newTestStorage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Spawn(
			Position{X: 1.0, Y: 2.0},
			Velocity{DX: 0.5, DY: 0.5},
			Health{Current: 100, Max: 100},
			Name{Value: "Entity"},
		)
	}
}

func BenchmarkInsertGeneric(b *testing.B) {
	storage := newTestStorage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := storage.NewEntity()
		ecs.Insert(storage, e, Position{X: 1.0, Y: 2.0})
		ecs.Insert(storage, e, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemoveEntity(b *testing.B) {
	storage := newTestStorage()

	ids := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		ids[i], _ = storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.RemoveEntity(ids[i])
	}
}

func BenchmarkGet(b *testing.B) {
	storage := newTestStorage()
	id, _ := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Get[Position](storage, id)
	}
}

func BenchmarkGetComponentReflect(b *testing.B) {
	storage := newTestStorage()
	id, _ := storage.Spawn(Position{X: 1.0, Y: 2.0})
	posType := reflect.TypeOf(Position{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = storage.GetComponent(id, posType)
	}
}

func BenchmarkAddRemoveComponent(b *testing.B) {
	storage := newTestStorage()
	id, _ := storage.Spawn(Position{X: 1.0, Y: 2.0})
	velType := reflect.TypeOf(Velocity{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.AddComponent(id, Velocity{DX: 0.5, DY: 0.5})
		storage.RemoveComponent(id, velType)
	}
}

func populateIter(b *testing.B) *ecs.Storage {
	b.Helper()
	storage := newTestStorage()
	for i := 0; i < nPos; i++ {
		storage.Spawn(Position{})
	}
	for i := 0; i < nPosVel; i++ {
		storage.Spawn(Position{}, Velocity{DX: 1, DY: 1})
	}
	return storage
}

func BenchmarkIterQuery(b *testing.B) {
	b.StopTimer()
	storage := populateIter(b)
	q, err := ecs.NewQuery2(storage, ecs.Writes[Position](), ecs.Reads[Velocity]())
	if err != nil {
		b.Fatal(err)
	}
	defer q.Release()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, row := range q.Join() {
			row.A.X += row.B.DX
			row.A.Y += row.B.DY
		}
	}
}

func BenchmarkIterView(b *testing.B) {
	b.StopTimer()
	storage := populateIter(b)
	view, err := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)
	if err != nil {
		b.Fatal(err)
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, m := range view.Iter() {
			m.X += m.DX
			m.Y += m.DY
		}
	}
}

func BenchmarkIterSparseSet(b *testing.B) {
	b.StopTimer()
	set := ecs.NewSparseSet[Position]()
	for i := 0; i < nPos+nPosVel; i++ {
		set.Insert(ecs.NewEntity(uint32(i), 0), Position{})
	}
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, pos := range set.All() {
			pos.X++
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	b.StopTimer()
	storage := populateIter(b)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(MovementSystem{})
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		scheduler.Once(1.0 / 60)
	}
}

func BenchmarkProxyChurn(b *testing.B) {
	storage := newTestStorage()
	proxy := ecs.NewProxy(storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := proxy.NewEntity()
		ecs.Attach(proxy, e, Position{})
		proxy.RemoveEntity(e)
		proxy.Flush()
	}
}
