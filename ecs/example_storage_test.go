package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	a, _ := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 1})
	b, _ := storage.Spawn(Position{X: 5, Y: 5})

	storage.RemoveEntity(a)
	c := storage.NewEntity()

	fmt.Println(a, b, c)
	fmt.Println(storage.Alive(a), storage.Alive(c))

	pos, ok := ecs.Get[Position](storage, b)
	fmt.Println(*pos, ok)

	// Output:
	// 0@0 1@0 0@1
	// false true
	// {5 5} true
}

func ExampleSparseSet() {
	set := ecs.NewSparseSet[string]()
	a, b, c := ecs.NewEntity(0, 0), ecs.NewEntity(1, 0), ecs.NewEntity(2, 0)

	set.Insert(a, "a")
	set.Insert(b, "b")
	set.Insert(c, "c")
	set.Remove(a)

	for e, v := range set.All() {
		fmt.Println(e, *v)
	}

	// Output:
	// 2@0 c
	// 1@0 b
}

func ExampleResource() {
	type Gravity struct{ Y float32 }

	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	gravity := ecs.NewResource(storage, Gravity{Y: -9.8})

	fmt.Println(gravity.Get().Y)

	// Output:
	// -9.8
}
