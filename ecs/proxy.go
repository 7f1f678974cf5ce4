package ecs

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Proxy is the command surface a system uses to change entity and component
// membership. Entities are allocated immediately; every other change is buffered
// and applied by Flush, so containers are never restructured while a system is
// iterating over them.
type Proxy struct {
	storage  *Storage
	removes  []Entity
	detaches []detachCommand
	attaches []attachCommand
	defers   []func()
}

type attachCommand struct {
	entity    Entity
	component any
}

type detachCommand struct {
	entity   Entity
	compType reflect.Type
}

// NewProxy creates a command buffer for the given storage.
func NewProxy(s *Storage) *Proxy {
	return &Proxy{storage: s}
}

// NewEntity allocates a new entity. It has no components until attaches are flushed.
func (p *Proxy) NewEntity() Entity {
	return p.storage.NewEntity()
}

// RemoveEntity queues an entity removal.
func (p *Proxy) RemoveEntity(e Entity) {
	p.removes = append(p.removes, e)
}

// AttachComponent queues a component addition. component may be a value or a pointer.
func (p *Proxy) AttachComponent(e Entity, component any) {
	p.attaches = append(p.attaches, attachCommand{entity: e, component: component})
}

// DetachComponent queues a component removal.
func (p *Proxy) DetachComponent(e Entity, compType reflect.Type) {
	p.detaches = append(p.detaches, detachCommand{entity: e, compType: compType})
}

// Defer queues a function to run at the end of the flush.
func (p *Proxy) Defer(fn func()) {
	p.defers = append(p.defers, fn)
}

// Attach queues value as e's T component.
func Attach[T any](p *Proxy, e Entity, value T) {
	p.AttachComponent(e, value)
}

// Detach queues the removal of e's T component.
func Detach[T any](p *Proxy, e Entity) {
	p.DetachComponent(e, reflect.TypeFor[T]())
}

// Pending returns the number of buffered commands.
func (p *Proxy) Pending() int {
	return len(p.removes) + len(p.detaches) + len(p.attaches) + len(p.defers)
}

// Flush applies the buffered commands and resets the buffer. Entity removals run
// first, then detaches, then attaches, then deferred functions. Commands that
// target an entity removed in the same flush are dropped. Commands queued by a
// deferred function are applied in a further round of the same flush, so Flush
// returns with nothing pending. Failed attaches do not stop the flush; their
// errors are joined and returned.
func (p *Proxy) Flush() error {
	if p.Pending() == 0 {
		return nil
	}

	var errs []error
	removed := intmap.New[Entity, struct{}](max(len(p.removes), 8))

	for rounds := 1; p.Pending() > 0; rounds++ {
		removes, detaches, attaches, defers := p.removes, p.detaches, p.attaches, p.defers
		p.removes, p.detaches, p.attaches, p.defers = nil, nil, nil, nil

		for _, e := range removes {
			p.storage.RemoveEntity(e)
			removed.Put(e, struct{}{})
		}

		for _, cmd := range detaches {
			if _, gone := removed.Get(cmd.entity); gone {
				continue
			}
			p.storage.RemoveComponent(cmd.entity, cmd.compType)
		}

		for _, cmd := range attaches {
			if _, gone := removed.Get(cmd.entity); gone {
				continue
			}
			if err := p.storage.AddComponent(cmd.entity, cmd.component); err != nil {
				errs = append(errs, err)
			}
		}

		for _, fn := range defers {
			fn()
		}

		p.storage.logger.Debug("proxy flushed",
			zap.Int("round", rounds),
			zap.Int("removes", len(removes)),
			zap.Int("detaches", len(detaches)),
			zap.Int("attaches", len(attaches)),
			zap.Int("defers", len(defers)),
			zap.Int("errors", len(errs)),
		)

		clear(attaches)
		clear(defers)
		p.removes = reuse(p.removes, removes)
		p.detaches = reuse(p.detaches, detaches)
		p.attaches = reuse(p.attaches, attaches)
		p.defers = reuse(p.defers, defers)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// reuse hands the drained buffer back when nothing was queued in its place.
func reuse[T any](current, drained []T) []T {
	if current != nil {
		return current
	}
	return drained[:0]
}
