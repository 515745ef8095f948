package cecs

// matchedRun is one archetype descriptor that satisfied a query's filter,
// along with the entities currently stored in it.
type matchedRun struct {
	descriptor   *archetypeDescriptor
	entities     []Entity
	entityHandle PrwReadHandle[[]Entity]
}

// matchDescriptors scans every registered archetype and returns the runs
// whose archetype is a superset of filterArch, skipping empty archetypes.
func matchDescriptors(ar *Archetypes, filterArch Archetype) []matchedRun {
	var runs []matchedRun
	for i := range ar.descriptors {
		d := &ar.descriptors[i]
		if !filterArch.SubsetOf(d.archetype) {
			continue
		}
		h := ar.entities.Get(d.entityRow)
		entities := *h.Get()
		if len(entities) == 0 {
			h.Release()
			continue
		}
		runs = append(runs, matchedRun{descriptor: d, entities: entities, entityHandle: h})
	}
	return runs
}

func releaseRuns(runs []matchedRun) {
	for _, r := range runs {
		r.entityHandle.Release()
	}
}

// queryColumn holds the live PrwLock handles and cached slices for one
// component column across every matched archetype run of a query.
type queryColumn[T any] struct {
	mode         AccessMode
	readHandles  []PrwReadHandle[[]T]
	writeHandles []PrwWriteHandle[[]T]
	slices       [][]T
}

func newQueryColumn[T any](ar *Archetypes, mode AccessMode, runs []matchedRun) queryColumn[T] {
	buf, ok := GetComponentBuffers[T](ar)
	if !ok {
		return queryColumn[T]{mode: mode}
	}
	id := ComponentIDFor[T]()
	col := queryColumn[T]{mode: mode, slices: make([][]T, len(runs))}
	if mode == ReadOnly {
		col.readHandles = make([]PrwReadHandle[[]T], len(runs))
		for i, r := range runs {
			h := buf.Get(r.descriptor.columns[id])
			col.readHandles[i] = h
			col.slices[i] = *h.Get()
		}
		return col
	}
	col.writeHandles = make([]PrwWriteHandle[[]T], len(runs))
	for i, r := range runs {
		h := buf.GetMut(r.descriptor.columns[id])
		col.writeHandles[i] = h
		col.slices[i] = *h.Get()
	}
	return col
}

func (c *queryColumn[T]) at(run, row int) *T {
	return &c.slices[run][row]
}

func (c *queryColumn[T]) release() {
	for i := range c.readHandles {
		c.readHandles[i].Release()
	}
	for i := range c.writeHandles {
		c.writeHandles[i].Release()
	}
}
