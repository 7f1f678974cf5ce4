package main

import (
	"math"
	"math/rand"

	"github.com/plus3/sparsecs/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Mass struct {
	Kg float64
}

type Heat struct {
	Kelvin float64
}

type Glow struct {
	Intensity float64
}

type Lifetime struct {
	Frames int
}

type Bounds struct {
	Width, Height float64
}

// Gravity is a resource read by GravitySystem.
type Gravity struct {
	Y float64
}

var componentCount int

func registerComponents(registry *ecs.ComponentRegistry) {
	ecs.MustRegisterComponent[Position](registry)
	ecs.MustRegisterComponent[Velocity](registry)
	ecs.MustRegisterComponent[Mass](registry)
	ecs.MustRegisterComponent[Heat](registry)
	ecs.MustRegisterComponent[Glow](registry)
	ecs.MustRegisterComponent[Lifetime](registry)
	componentCount = registry.Len()
}

func registerSystems(scheduler *ecs.Scheduler, spawner *Spawner) {
	scheduler.Register(GravitySystem{})
	scheduler.Register(MovementSystem{})
	scheduler.Register(WrapSystem{})
	scheduler.Register(CoolingSystem{})
	scheduler.Register(GlowSystem{})
	scheduler.Register(&LifetimeSystem{spawner: spawner})
}

// Spawner creates entities with a random subset of the workload components.
type Spawner struct {
	rng         *rand.Rand
	maxLifetime int
}

func NewSpawner(seed int64, maxLifetime int) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(seed)),
		maxLifetime: maxLifetime,
	}
}

func (s *Spawner) components() []any {
	components := []any{
		Position{X: s.rng.Float64() * 1000, Y: s.rng.Float64() * 1000},
		Lifetime{Frames: s.rng.Intn(s.maxLifetime) + 1},
	}
	if s.rng.Intn(4) != 0 {
		components = append(components, Velocity{X: s.rng.NormFloat64(), Y: s.rng.NormFloat64()})
	}
	if s.rng.Intn(2) == 0 {
		components = append(components, Mass{Kg: 1 + s.rng.Float64()*10})
	}
	if s.rng.Intn(3) == 0 {
		components = append(components, Heat{Kelvin: 300 + s.rng.Float64()*700})
	}
	return components
}

// Spawn creates an entity directly on storage.
func (s *Spawner) Spawn(storage *ecs.Storage) (ecs.Entity, error) {
	return storage.Spawn(s.components()...)
}

// Queue creates an entity through proxy; its components appear after the flush.
func (s *Spawner) Queue(proxy *ecs.Proxy) ecs.Entity {
	e := proxy.NewEntity()
	for _, c := range s.components() {
		proxy.AttachComponent(e, c)
	}
	return e
}

type GravitySystem struct{}

func (GravitySystem) Update(_ *ecs.Proxy, ctx *ecs.Context) error {
	gravity := ecs.NewResource(ctx.Storage(), Gravity{Y: -9.81}).Get()

	q, err := ecs.NewQuery2(ctx, ecs.Writes[Velocity](), ecs.Reads[Mass]())
	if err != nil {
		return err
	}
	for _, row := range q.Join() {
		row.A.Y += gravity.Y * ctx.DeltaTime / row.B.Kg
	}
	return nil
}

type MovementSystem struct{}

func (MovementSystem) Update(_ *ecs.Proxy, ctx *ecs.Context) error {
	q, err := ecs.NewQuery2(ctx, ecs.Writes[Position](), ecs.Reads[Velocity]())
	if err != nil {
		return err
	}
	for _, row := range q.Join() {
		row.A.X += row.B.X * ctx.DeltaTime
		row.A.Y += row.B.Y * ctx.DeltaTime
	}
	return nil
}

// WrapSystem keeps every position inside the world bounds.
type WrapSystem struct{}

func (WrapSystem) Update(_ *ecs.Proxy, ctx *ecs.Context) error {
	bounds := ecs.NewResource(ctx.Storage(), Bounds{Width: 1000, Height: 1000}).Get()

	q, err := ecs.NewQuery1(ctx, ecs.Writes[Position]())
	if err != nil {
		return err
	}
	for _, row := range q.Join() {
		row.A.X = wrap(row.A.X, bounds.Width)
		row.A.Y = wrap(row.A.Y, bounds.Height)
	}
	return nil
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

type CoolingSystem struct{}

func (CoolingSystem) Update(_ *ecs.Proxy, ctx *ecs.Context) error {
	q, err := ecs.NewQuery1(ctx, ecs.Writes[Heat]())
	if err != nil {
		return err
	}
	for _, row := range q.Join() {
		row.A.Kelvin -= (row.A.Kelvin - 300) * 0.1 * ctx.DeltaTime
	}
	return nil
}

// GlowSystem attaches a Glow to hot entities and detaches it once they cool down.
type GlowSystem struct{}

type glowing struct {
	Heat *Heat
	Glow *Glow `ecs:"optional"`
}

func (GlowSystem) Update(proxy *ecs.Proxy, ctx *ecs.Context) error {
	view, err := ecs.NewView[glowing](ctx)
	if err != nil {
		return err
	}
	for e, g := range view.Iter() {
		hot := g.Heat.Kelvin > 600
		switch {
		case hot && g.Glow == nil:
			ecs.Attach(proxy, e, Glow{Intensity: (g.Heat.Kelvin - 600) / 400})
		case hot:
			g.Glow.Intensity = (g.Heat.Kelvin - 600) / 400
		case g.Glow != nil:
			ecs.Detach[Glow](proxy, e)
		}
	}
	return nil
}

// LifetimeSystem replaces expired entities with fresh ones so the population
// stays constant while the containers churn.
type LifetimeSystem struct {
	spawner *Spawner
	expired int64
}

func (s *LifetimeSystem) Update(proxy *ecs.Proxy, ctx *ecs.Context) error {
	q, err := ecs.NewQuery1(ctx, ecs.Writes[Lifetime]())
	if err != nil {
		return err
	}
	for e, row := range q.Join() {
		row.A.Frames--
		if row.A.Frames > 0 {
			continue
		}
		proxy.RemoveEntity(e)
		s.spawner.Queue(proxy)
		s.expired++
	}
	return nil
}
