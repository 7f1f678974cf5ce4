package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

func ExampleNewQuery2() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
	storage.Spawn(Position{X: 10, Y: 10})

	q, err := ecs.NewQuery2(storage, ecs.Writes[Position](), ecs.Reads[Velocity]())
	if err != nil {
		panic(err)
	}
	defer q.Release()

	for e, row := range q.Join() {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
		fmt.Println(e, *row.A)
	}

	// Output:
	// 0@0 {1 2}
}

func ExampleNewQuery1_conflict() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	storage := ecs.NewStorage(registry)

	reader, _ := ecs.NewQuery1(storage, ecs.Reads[Position]())

	_, err := ecs.NewQuery1(storage, ecs.Writes[Position]())
	fmt.Println(err)

	reader.Release()
	_, err = ecs.NewQuery1(storage, ecs.Writes[Position]())
	fmt.Println(err)

	// Output:
	// ecs: cannot borrow ecs_test.Position for write, already borrowed for read
	// <nil>
}
