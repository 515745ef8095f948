package cecs

import (
	"math"
	"sync/atomic"

	"github.com/TheBitDrifter/bark"
)

// PrwLock is a panicky, lifetime-free reader/writer coordination primitive
// built on a single atomic counter: 0 means idle, N means N live readers,
// and writerSentinel means one exclusive writer holds it. Unlike a
// sync.RWMutex, PrwLock never blocks a caller waiting for the lock to free
// up; instead, acquiring it in an incompatible state panics immediately.
// The dispatcher's compatibility graph is what's supposed to guarantee
// contention never happens in practice, so a panic here means that
// guarantee was violated.
type PrwLock[T any] struct {
	data  T
	state atomic.Uint32
}

const writerSentinel = math.MaxUint32

// NewPrwLock wraps data in an idle PrwLock.
func NewPrwLock[T any](data T) *PrwLock[T] {
	return &PrwLock[T]{data: data}
}

// Read acquires a shared read handle. Panics if a writer currently holds
// the lock.
func (l *PrwLock[T]) Read() PrwReadHandle[T] {
	prev := l.state.Add(1) - 1
	if prev == writerSentinel {
		l.state.Add(^uint32(0))
		panic(bark.AddTrace(LockHeldError{Requested: "read"}))
	}
	return PrwReadHandle[T]{lock: l}
}

// Write acquires an exclusive write handle. Panics if the lock is already
// held by any reader or writer.
func (l *PrwLock[T]) Write() PrwWriteHandle[T] {
	prev := l.state.Add(writerSentinel) - writerSentinel
	if prev != 0 {
		l.state.Store(prev)
		panic(bark.AddTrace(LockHeldError{Requested: "write"}))
	}
	return PrwWriteHandle[T]{lock: l}
}

// PrwReadHandle is a live shared-read grant on a PrwLock. Go has no
// destructors, so callers must explicitly Release the handle (typically
// via defer) when done.
type PrwReadHandle[T any] struct {
	lock *PrwLock[T]
}

// Get returns a pointer to the guarded value.
func (h PrwReadHandle[T]) Get() *T { return &h.lock.data }

// Release gives up the read handle.
func (h PrwReadHandle[T]) Release() { h.lock.state.Add(^uint32(0)) }

// PrwWriteHandle is a live exclusive-write grant on a PrwLock.
type PrwWriteHandle[T any] struct {
	lock *PrwLock[T]
}

// Get returns a pointer to the guarded value.
func (h PrwWriteHandle[T]) Get() *T { return &h.lock.data }

// Release gives up the write handle.
func (h PrwWriteHandle[T]) Release() { h.lock.state.Store(0) }
