package cecs

// dataBuffers stores every row (one row per archetype descriptor) of a
// single component type T, each row individually guarded by a PrwLock so
// systems in different archetypes can touch the same component type
// concurrently without contending on a single global lock.
type dataBuffers[T any] struct {
	rows []*PrwLock[[]T]
}

func newDataBuffers[T any]() *dataBuffers[T] {
	return &dataBuffers[T]{}
}

// Create allocates a new, empty row and returns its index.
func (b *dataBuffers[T]) Create() int {
	b.rows = append(b.rows, NewPrwLock([]T{}))
	return len(b.rows) - 1
}

// Get acquires a shared read handle on row i.
func (b *dataBuffers[T]) Get(i int) PrwReadHandle[[]T] {
	return b.rows[i].Read()
}

// GetMut acquires an exclusive write handle on row i.
func (b *dataBuffers[T]) GetMut(i int) PrwWriteHandle[[]T] {
	return b.rows[i].Write()
}

// genericDataBuffers is the type-erased interface every dataBuffers[T]
// satisfies, letting Archetypes keep a single registry of heterogeneous
// component buffers and downcast back to the concrete type via a type
// assertion (Go's substitute for Rust's dyn Any + downcast_ref).
type genericDataBuffers interface {
	create() int
}

func (b *dataBuffers[T]) create() int { return b.Create() }
