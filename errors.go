package cecs

import "fmt"

// LockHeldError is panicked by a PrwLock when a read or write is requested
// against a lock that is already held in an incompatible mode. Unlike a
// mutex, PrwLock never blocks: contention is a programming error, not a
// race to be waited out.
type LockHeldError struct {
	Requested string
}

func (e LockHeldError) Error() string {
	return fmt.Sprintf("prwlock: cannot acquire %s, lock is already held incompatibly", e.Requested)
}

// LockedWorldError is panicked by World.Create when called while a
// dispatcher tick holds the world's tick lock.
type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world: cannot create entities while a dispatcher tick is in flight"
}

// ComponentNotRegisteredError is panicked by Archetypes.EnsureArchetype when
// an archetype names a component type whose buffers were never registered
// via CreateComponentBuffers.
type ComponentNotRegisteredError struct {
	Component ComponentID
}

func (e ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component %d is not registered in this world", e.Component)
}

// AccessViolationError is panicked when a system's ad hoc query reaches
// outside the read/write archetype it declared in its ComponentFilter.
type AccessViolationError struct {
	Declared  Archetype
	Requested Archetype
	Write     bool
}

func (e AccessViolationError) Error() string {
	kind := "read"
	if e.Write {
		kind = "write"
	}
	return fmt.Sprintf("query requests %s access to %v, outside declared archetype %v", kind, e.Requested.IDs(), e.Declared.IDs())
}

// SystemPanicError wraps a panic recovered from a system's tick, carrying
// the offending system's id so callers can identify which system failed.
// Go has no process-wide panic propagation equivalent to Rust's thread
// panic handling, so Dispatcher.Run recovers worker panics and surfaces
// them through this error instead of crashing the whole process.
type SystemPanicError struct {
	System    SystemID
	Recovered any
}

func (e SystemPanicError) Error() string {
	return fmt.Sprintf("system %d panicked: %v", e.System, e.Recovered)
}

// BuilderError reports a DispatcherBuilder.Build failure, e.g. a
// misconfigured thread count or a dependency cycle.
type BuilderError struct {
	Reason string
}

func (e BuilderError) Error() string {
	return fmt.Sprintf("dispatcher builder: %s", e.Reason)
}

// PackLengthMismatchError is panicked by a ComponentPack's moveInto when its
// columns don't all carry the same number of rows: there is no single entity
// count to assign rows against.
type PackLengthMismatchError struct {
	Lengths []int
}

func (e PackLengthMismatchError) Error() string {
	return fmt.Sprintf("component pack columns have mismatched lengths: %v", e.Lengths)
}
