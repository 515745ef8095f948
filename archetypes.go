package cecs

import "github.com/TheBitDrifter/bark"

// ArchetypeDescriptorID indexes into Archetypes.descriptors.
type ArchetypeDescriptorID int

// archetypeDescriptor records, for one concrete archetype, which row index
// within each component type's dataBuffers holds that archetype's columns,
// plus the row index of the parallel entity buffer.
type archetypeDescriptor struct {
	archetype Archetype
	columns   map[ComponentID]int
	entityRow int
}

// Archetype exposes the descriptor's shape to callers outside the package
// boundary formed by unexported fields.
func (d *archetypeDescriptor) Archetype() Archetype { return d.archetype }

// Archetypes is the registry of every known archetype descriptor and the
// per-component-type column storage backing them. It is the columnar heart
// of the ECS: one dataBuffers[T] per component type, shared across every
// archetype that carries T.
type Archetypes struct {
	descriptors []archetypeDescriptor
	byKey       map[string]ArchetypeDescriptorID
	buffers     map[ComponentID]genericDataBuffers
	entities    *dataBuffers[Entity]
}

// NewArchetypes creates an empty registry.
func NewArchetypes() *Archetypes {
	return &Archetypes{
		byKey:    map[string]ArchetypeDescriptorID{},
		buffers:  map[ComponentID]genericDataBuffers{},
		entities: newDataBuffers[Entity](),
	}
}

// GetArchetypeDescriptor looks up the descriptor exactly matching arch.
func (a *Archetypes) GetArchetypeDescriptor(arch Archetype) (ArchetypeDescriptorID, bool) {
	id, ok := a.byKey[arch.key()]
	return id, ok
}

// Descriptor returns the descriptor at id.
func (a *Archetypes) Descriptor(id ArchetypeDescriptorID) *archetypeDescriptor {
	return &a.descriptors[id]
}

// AllDescriptors returns every registered descriptor id, for callers that
// need to scan the full archetype set (e.g. query matching).
func (a *Archetypes) AllDescriptors() []ArchetypeDescriptorID {
	ids := make([]ArchetypeDescriptorID, len(a.descriptors))
	for i := range a.descriptors {
		ids[i] = ArchetypeDescriptorID(i)
	}
	return ids
}

// EnsureArchetype returns the descriptor for arch, creating its column rows
// (one per component id, plus an entity row) if this is the first time this
// exact archetype has been seen. The caller (a ComponentPack's moveInto) is
// responsible for having already registered a dataBuffers[T] for every id
// in arch via CreateComponentBuffers, since the concrete T is only known at
// the pack's call site, not here.
func (a *Archetypes) EnsureArchetype(arch Archetype) ArchetypeDescriptorID {
	if id, ok := a.GetArchetypeDescriptor(arch); ok {
		return id
	}
	columns := make(map[ComponentID]int, arch.Len())
	for _, id := range arch.IDs() {
		buf, ok := a.buffers[id]
		if !ok {
			panic(bark.AddTrace(ComponentNotRegisteredError{Component: id}))
		}
		columns[id] = buf.create()
	}
	entityRow := a.entities.Create()
	descID := ArchetypeDescriptorID(len(a.descriptors))
	a.descriptors = append(a.descriptors, archetypeDescriptor{
		archetype: arch,
		columns:   columns,
		entityRow: entityRow,
	})
	a.byKey[arch.key()] = descID
	return descID
}

// GetComponentBuffers returns the shared dataBuffers for T, if
// CreateComponentBuffers has registered one. Declared as a standalone function rather
// than a method because Go methods cannot introduce their own type
// parameters independent of the receiver's.
func GetComponentBuffers[T any](a *Archetypes) (*dataBuffers[T], bool) {
	buf, ok := a.buffers[ComponentIDFor[T]()]
	if !ok {
		return nil, false
	}
	typed, ok := buf.(*dataBuffers[T])
	return typed, ok
}

// CreateComponentBuffers registers (if not already present) and returns
// the dataBuffers for T.
func CreateComponentBuffers[T any](a *Archetypes) *dataBuffers[T] {
	id := ComponentIDFor[T]()
	if buf, ok := a.buffers[id]; ok {
		return buf.(*dataBuffers[T])
	}
	buf := newDataBuffers[T]()
	a.buffers[id] = buf
	return buf
}

func (a *Archetypes) entityBuffers() *dataBuffers[Entity] { return a.entities }
