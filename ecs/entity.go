package ecs

import "fmt"

// Entity encodes the entity index in bits 0..31 and the generation in bits 32..47.
// The top 16 bits are always zero.
// Two entities are equal only when index and generation both match.
type Entity uint64

// NewEntity creates an Entity from an index and a generation
func NewEntity(index uint32, generation uint16) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index extracts the entity index, which is also the sparse key used by every container
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation of the entity
func (e Entity) Generation() uint16 {
	return uint16(e >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.Index(), e.Generation())
}
