package cecs

import "github.com/TheBitDrifter/bark"

// checkColumnLengths panics if lens contains more than one distinct value:
// every column in a pack must describe the same number of entities, or
// there's no single row count to place into the archetype.
func checkColumnLengths(lens ...int) {
	for _, n := range lens[1:] {
		if n != lens[0] {
			panic(bark.AddTrace(PackLengthMismatchError{Lengths: append([]int(nil), lens...)}))
		}
	}
}

// ComponentPack is a tuple-of-columns used to create many entities with the
// same archetype atomically. Rust expresses this with a macro generating
// trait impls for tuples of arity 1..26; Go generics can't do variadic type
// parameters, so this package hand-generates fixed-arity pack types instead,
// capped at 8 columns (the widest system in this package's own benchmarks
// needs seven: one written component plus six read components).
type ComponentPack interface {
	// Len reports how many entities this pack describes.
	Len() int
	// Archetype reports the component set every entity in this pack will
	// carry.
	Archetype() Archetype
	// moveInto appends the pack's columns into the archetype's storage,
	// returning the descriptor the entities now live in and the starting
	// row index they occupy within it.
	moveInto(archetypes *Archetypes) (ArchetypeDescriptorID, int)
}

// pushRows appends values onto row i of buf under an exclusive lock and
// returns the index of the first appended element.
func pushRows[T any](buf *dataBuffers[T], row int, values []T) int {
	h := buf.GetMut(row)
	defer h.Release()
	data := h.Get()
	start := len(*data)
	*data = append(*data, values...)
	return start
}

// Pack1 packs a single component column.
type Pack1[A any] struct {
	C0 []A
}

func (p Pack1[A]) Len() int { return len(p.C0) }

func (p Pack1[A]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A]())
}

func (p Pack1[A]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	bufA := CreateComponentBuffers[A](ar)
	arch := p.Archetype()
	descID := ar.EnsureArchetype(arch)
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	return descID, start
}

// Pack2 packs two component columns.
type Pack2[A, B any] struct {
	C0 []A
	C1 []B
}

func (p Pack2[A, B]) Len() int { return len(p.C0) }

func (p Pack2[A, B]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B]())
}

func (p Pack2[A, B]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	return descID, start
}

// Pack3 packs three component columns.
type Pack3[A, B, C any] struct {
	C0 []A
	C1 []B
	C2 []C
}

func (p Pack3[A, B, C]) Len() int { return len(p.C0) }

func (p Pack3[A, B, C]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C]())
}

func (p Pack3[A, B, C]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	return descID, start
}

// Pack4 packs four component columns.
type Pack4[A, B, C, D any] struct {
	C0 []A
	C1 []B
	C2 []C
	C3 []D
}

func (p Pack4[A, B, C, D]) Len() int { return len(p.C0) }

func (p Pack4[A, B, C, D]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D]())
}

func (p Pack4[A, B, C, D]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2), len(p.C3))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	bufD := CreateComponentBuffers[D](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	pushRows(bufD, desc.columns[ComponentIDFor[D]()], p.C3)
	return descID, start
}

// Pack5 packs five component columns.
type Pack5[A, B, C, D, E any] struct {
	C0 []A
	C1 []B
	C2 []C
	C3 []D
	C4 []E
}

func (p Pack5[A, B, C, D, E]) Len() int { return len(p.C0) }

func (p Pack5[A, B, C, D, E]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E]())
}

func (p Pack5[A, B, C, D, E]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2), len(p.C3), len(p.C4))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	bufD := CreateComponentBuffers[D](ar)
	bufE := CreateComponentBuffers[E](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	pushRows(bufD, desc.columns[ComponentIDFor[D]()], p.C3)
	pushRows(bufE, desc.columns[ComponentIDFor[E]()], p.C4)
	return descID, start
}

// Pack6 packs six component columns.
type Pack6[A, B, C, D, E, F any] struct {
	C0 []A
	C1 []B
	C2 []C
	C3 []D
	C4 []E
	C5 []F
}

func (p Pack6[A, B, C, D, E, F]) Len() int { return len(p.C0) }

func (p Pack6[A, B, C, D, E, F]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F]())
}

func (p Pack6[A, B, C, D, E, F]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2), len(p.C3), len(p.C4), len(p.C5))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	bufD := CreateComponentBuffers[D](ar)
	bufE := CreateComponentBuffers[E](ar)
	bufF := CreateComponentBuffers[F](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	pushRows(bufD, desc.columns[ComponentIDFor[D]()], p.C3)
	pushRows(bufE, desc.columns[ComponentIDFor[E]()], p.C4)
	pushRows(bufF, desc.columns[ComponentIDFor[F]()], p.C5)
	return descID, start
}

// Pack7 packs seven component columns.
type Pack7[A, B, C, D, E, F, G any] struct {
	C0 []A
	C1 []B
	C2 []C
	C3 []D
	C4 []E
	C5 []F
	C6 []G
}

func (p Pack7[A, B, C, D, E, F, G]) Len() int { return len(p.C0) }

func (p Pack7[A, B, C, D, E, F, G]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F](), ComponentIDFor[G]())
}

func (p Pack7[A, B, C, D, E, F, G]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2), len(p.C3), len(p.C4), len(p.C5), len(p.C6))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	bufD := CreateComponentBuffers[D](ar)
	bufE := CreateComponentBuffers[E](ar)
	bufF := CreateComponentBuffers[F](ar)
	bufG := CreateComponentBuffers[G](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	pushRows(bufD, desc.columns[ComponentIDFor[D]()], p.C3)
	pushRows(bufE, desc.columns[ComponentIDFor[E]()], p.C4)
	pushRows(bufF, desc.columns[ComponentIDFor[F]()], p.C5)
	pushRows(bufG, desc.columns[ComponentIDFor[G]()], p.C6)
	return descID, start
}

// Pack8 packs eight component columns, the widest pack this package
// generates.
type Pack8[A, B, C, D, E, F, G, H any] struct {
	C0 []A
	C1 []B
	C2 []C
	C3 []D
	C4 []E
	C5 []F
	C6 []G
	C7 []H
}

func (p Pack8[A, B, C, D, E, F, G, H]) Len() int { return len(p.C0) }

func (p Pack8[A, B, C, D, E, F, G, H]) Archetype() Archetype {
	return NewArchetype(ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F](), ComponentIDFor[G](), ComponentIDFor[H]())
}

func (p Pack8[A, B, C, D, E, F, G, H]) moveInto(ar *Archetypes) (ArchetypeDescriptorID, int) {
	checkColumnLengths(len(p.C0), len(p.C1), len(p.C2), len(p.C3), len(p.C4), len(p.C5), len(p.C6), len(p.C7))
	bufA := CreateComponentBuffers[A](ar)
	bufB := CreateComponentBuffers[B](ar)
	bufC := CreateComponentBuffers[C](ar)
	bufD := CreateComponentBuffers[D](ar)
	bufE := CreateComponentBuffers[E](ar)
	bufF := CreateComponentBuffers[F](ar)
	bufG := CreateComponentBuffers[G](ar)
	bufH := CreateComponentBuffers[H](ar)
	descID := ar.EnsureArchetype(p.Archetype())
	desc := ar.Descriptor(descID)
	start := pushRows(bufA, desc.columns[ComponentIDFor[A]()], p.C0)
	pushRows(bufB, desc.columns[ComponentIDFor[B]()], p.C1)
	pushRows(bufC, desc.columns[ComponentIDFor[C]()], p.C2)
	pushRows(bufD, desc.columns[ComponentIDFor[D]()], p.C3)
	pushRows(bufE, desc.columns[ComponentIDFor[E]()], p.C4)
	pushRows(bufF, desc.columns[ComponentIDFor[F]()], p.C5)
	pushRows(bufG, desc.columns[ComponentIDFor[G]()], p.C6)
	pushRows(bufH, desc.columns[ComponentIDFor[H]()], p.C7)
	return descID, start
}
