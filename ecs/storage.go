package ecs

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Storage owns every component container of an ECS instance together with the
// entity allocator. The set of containers is fixed when the Storage is built.
type Storage struct {
	meta       *MetaTable
	containers []container
	entities   *Allocator
	borrows    borrowTracker
	resources  *intmap.Map[int, any]
	logger     *zap.Logger
}

type storageOptions struct {
	logger   *zap.Logger
	capacity int
}

// StorageOption configures a Storage.
type StorageOption func(*storageOptions)

// WithLogger sets the logger used by the storage and the schedulers built on it.
func WithLogger(logger *zap.Logger) StorageOption {
	return func(o *storageOptions) {
		o.logger = logger
	}
}

// WithInitialCapacity preallocates room for n entity identifiers.
func WithInitialCapacity(n int) StorageOption {
	return func(o *storageOptions) {
		o.capacity = n
	}
}

// NewStorage creates a new ECS storage from the given component registry.
// The registry is finalized: types registered afterwards are rejected.
func NewStorage(registry *ComponentRegistry, opts ...StorageOption) *Storage {
	options := storageOptions{
		logger:   zap.NewNop(),
		capacity: 64,
	}
	for _, opt := range opts {
		opt(&options)
	}

	meta, containers := registry.finalize()

	s := &Storage{
		meta:       meta,
		containers: containers,
		entities:   NewAllocator(options.capacity),
		borrows:    newBorrowTracker(len(containers)),
		resources:  intmap.New[int, any](8),
		logger:     options.logger,
	}

	s.logger.Debug("storage built", zap.Int("components", len(containers)))
	return s
}

// Meta returns the storage's type to container table.
func (s *Storage) Meta() *MetaTable {
	return s.meta
}

// Logger returns the storage's logger.
func (s *Storage) Logger() *zap.Logger {
	return s.logger
}

// NewEntity allocates a new entity with no components.
func (s *Storage) NewEntity() Entity {
	return s.entities.Alloc()
}

// Spawn allocates a new entity and attaches the given components to it.
// On error the entity is removed again.
func (s *Storage) Spawn(components ...any) (Entity, error) {
	e := s.NewEntity()
	for _, component := range components {
		if err := s.AddComponent(e, component); err != nil {
			s.RemoveEntity(e)
			return 0, err
		}
	}
	return e, nil
}

// RemoveEntity removes all components of e and retires its identifier.
// It returns false if e is not alive.
func (s *Storage) RemoveEntity(e Entity) bool {
	if !s.entities.Alive(e) {
		return false
	}
	for _, c := range s.containers {
		c.remove(e)
	}
	return s.entities.Dealloc(e)
}

// Alive reports whether e is a live entity.
func (s *Storage) Alive(e Entity) bool {
	return s.entities.Alive(e)
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.entities.Len()
}

// Entities iterates over the live entities in index order.
func (s *Storage) Entities() iter.Seq[Entity] {
	return s.entities.Entities()
}

// AddComponent stores component for e. The component may be a value or a pointer
// to a value of a registered type; an existing component of that type is overwritten.
func (s *Storage) AddComponent(e Entity, component any) error {
	if component == nil {
		return fmt.Errorf("add component to %v: %w", e, ErrInvalidComponent)
	}

	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	slot, ok := s.meta.Slot(compType)
	if !ok {
		return fmt.Errorf("add component to %v: %w", e, &UnregisteredComponentError{Type: compType})
	}
	if !s.entities.Alive(e) {
		return fmt.Errorf("add %v to %v: %w", compType, e, ErrStaleEntity)
	}
	if !s.containers[slot].insertAny(e, component) {
		return fmt.Errorf("add %v to %v: %w", compType, e, ErrInvalidComponent)
	}
	return nil
}

// RemoveComponent removes the component of type compType from e.
func (s *Storage) RemoveComponent(e Entity, compType reflect.Type) bool {
	slot, ok := s.meta.Slot(compType)
	if !ok {
		return false
	}
	return s.containers[slot].remove(e)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(e Entity, compType reflect.Type) bool {
	slot, ok := s.meta.Slot(compType)
	if !ok {
		return false
	}
	return s.containers[slot].contains(e)
}

// GetComponent returns a pointer to the component of type compType for e, or nil.
func (s *Storage) GetComponent(e Entity, compType reflect.Type) any {
	slot, ok := s.meta.Slot(compType)
	if !ok {
		return nil
	}
	ptr := s.containers[slot].pointer(e)
	if ptr == nil {
		return nil
	}
	return reflect.NewAt(compType, ptr).Interface()
}

// Insert stores value as e's T component.
func Insert[T any](s *Storage, e Entity, value T) error {
	set, ok := sparseSetOf[T](s)
	if !ok {
		return &UnregisteredComponentError{Type: reflect.TypeFor[T]()}
	}
	if !s.entities.Alive(e) {
		return fmt.Errorf("insert %v into %v: %w", reflect.TypeFor[T](), e, ErrStaleEntity)
	}
	set.Insert(e, value)
	return nil
}

// Get returns a pointer to e's T component.
func Get[T any](s *Storage, e Entity) (*T, bool) {
	set, ok := sparseSetOf[T](s)
	if !ok {
		return nil, false
	}
	return set.Borrow(e)
}

// Remove deletes e's T component.
func Remove[T any](s *Storage, e Entity) bool {
	set, ok := sparseSetOf[T](s)
	if !ok {
		return false
	}
	return set.Remove(e)
}

// StorageStats describes the entities and containers of a Storage.
type StorageStats struct {
	Entities   int
	Allocated  int
	Containers []ContainerStats
}

// Stats returns a snapshot of the storage's memory usage.
func (s *Storage) Stats() StorageStats {
	stats := StorageStats{
		Entities:   s.entities.Len(),
		Allocated:  s.entities.Cap(),
		Containers: make([]ContainerStats, len(s.containers)),
	}
	for i, c := range s.containers {
		stats.Containers[i] = c.stats()
	}
	return stats
}

func (s *Storage) backing() *Storage {
	return s
}

// Queries built directly on a Storage are released by the caller.
func (s *Storage) track(releaser) {}
