package cecs

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

const tickLockBit uint32 = 0

// World owns the archetype registry and the entity generation table. It is
// the single point of truth for which entities exist and where their
// components live.
type World struct {
	archetypes *Archetypes
	infos      []entityInfo
	free       []uint32
	tickLock   mask.Mask256
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{archetypes: NewArchetypes()}
}

// Archetypes exposes the world's archetype registry, e.g. for building a
// QueryGenerator.
func (w *World) Archetypes() *Archetypes { return w.archetypes }

// Create atomically creates every entity described by pack, all sharing
// pack's archetype. It panics with LockedWorldError if a dispatcher tick
// currently holds the world locked, so creation and dispatch never
// interleave.
func (w *World) Create(pack ComponentPack) []Entity {
	if !w.tickLock.IsEmpty() {
		panic(bark.AddTrace(LockedWorldError{}))
	}
	descID, start := pack.moveInto(w.archetypes)
	desc := w.archetypes.Descriptor(descID)
	n := pack.Len()
	entities := make([]Entity, n)
	for i := 0; i < n; i++ {
		entities[i] = w.allocSlot(descID, start+i)
	}
	pushRows(w.archetypes.entityBuffers(), desc.entityRow, entities)
	return entities
}

func (w *World) allocSlot(descID ArchetypeDescriptorID, row int) Entity {
	if len(w.free) > 0 {
		id := w.free[len(w.free)-1]
		w.free = w.free[:len(w.free)-1]
		w.infos[id].descriptor = descID
		w.infos[id].row = row
		w.infos[id].ver++
		return Entity{id: id, ver: w.infos[id].ver}
	}
	id := uint32(len(w.infos))
	w.infos = append(w.infos, entityInfo{ver: 1, descriptor: descID, row: row})
	return Entity{id: id, ver: 1}
}

// Valid reports whether e still refers to a live entity (its slot hasn't
// been recycled since e was issued).
func (w *World) Valid(e Entity) bool {
	if int(e.id) >= len(w.infos) {
		return false
	}
	return w.infos[e.id].ver == e.ver
}

// beginTick marks the world as locked for the duration of a dispatcher
// tick, preventing entity creation from racing with system execution.
func (w *World) beginTick() { w.tickLock.Mark(tickLockBit) }

// endTick releases the tick lock.
func (w *World) endTick() { w.tickLock.Unmark(tickLockBit) }
