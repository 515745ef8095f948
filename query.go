package cecs

import "github.com/TheBitDrifter/bark"

// QueryGenerator is handed to a system's Tick method. It knows the
// system's declared Filter and the world's archetype registry, and is the
// only way a system can construct a Query: every CreateQueryN call is
// checked against the declared filter before any storage lock is taken,
// so a system can never read or write outside what the dispatcher's
// compatibility graph accounted for.
type QueryGenerator struct {
	archetypes *Archetypes
	filter     Filter
}

func newQueryGenerator(ar *Archetypes, filter Filter) *QueryGenerator {
	return &QueryGenerator{archetypes: ar, filter: filter}
}

// NewQueryGenerator builds a QueryGenerator scoped to filter, for ad hoc
// queries taken outside of a system's Tick (e.g. reading results after a
// dispatcher run completes). Systems themselves receive one already scoped
// to their declared Filter.
func NewQueryGenerator(ar *Archetypes, filter Filter) *QueryGenerator {
	return newQueryGenerator(ar, filter)
}

func checkAccess(g *QueryGenerator, ids []ComponentID, modes []AccessMode) {
	requested := NewArchetype(ids...)
	if !requested.SubsetOf(g.filter.Archetype()) {
		panic(bark.AddTrace(AccessViolationError{Declared: g.filter.Archetype(), Requested: requested}))
	}
	var writeIDs []ComponentID
	for i, id := range ids {
		if modes[i] == ReadWrite {
			writeIDs = append(writeIDs, id)
		}
	}
	writeReq := NewArchetype(writeIDs...)
	if !writeReq.SubsetOf(g.filter.WriteArchetype()) {
		panic(bark.AddTrace(AccessViolationError{Declared: g.filter.WriteArchetype(), Requested: writeReq, Write: true}))
	}
}

// Query1 iterates entities carrying component A.
type Query1[A any] struct {
	runs []matchedRun
	colA queryColumn[A]
	run  int
	row  int
}

// CreateQuery1 builds a single-column query, checked against g's filter.
func CreateQuery1[A any](g *QueryGenerator, modeA AccessMode) *Query1[A] {
	idA := ComponentIDFor[A]()
	checkAccess(g, []ComponentID{idA}, []AccessMode{modeA})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA))
	return &Query1[A]{runs: runs, colA: newQueryColumn[A](g.archetypes, modeA, runs)}
}

// Next advances the query, returning the current entity and component
// pointer. The third return value is false once iteration is exhausted.
func (q *Query1[A]) Next() (Entity, *A, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			q.row++
			return e, a, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, false
}

// Release gives up every PrwLock handle this query acquired.
func (q *Query1[A]) Release() {
	q.colA.release()
	releaseRuns(q.runs)
}

// Query2 iterates entities carrying components A and B.
type Query2[A, B any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	run  int
	row  int
}

func CreateQuery2[A, B any](g *QueryGenerator, modeA, modeB AccessMode) *Query2[A, B] {
	idA, idB := ComponentIDFor[A](), ComponentIDFor[B]()
	checkAccess(g, []ComponentID{idA, idB}, []AccessMode{modeA, modeB})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB))
	return &Query2[A, B]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
	}
}

func (q *Query2[A, B]) Next() (Entity, *A, *B, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			q.row++
			return e, a, b, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, false
}

func (q *Query2[A, B]) Release() {
	q.colA.release()
	q.colB.release()
	releaseRuns(q.runs)
}

// Query3 iterates entities carrying components A, B and C.
type Query3[A, B, C any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	run  int
	row  int
}

func CreateQuery3[A, B, C any](g *QueryGenerator, modeA, modeB, modeC AccessMode) *Query3[A, B, C] {
	idA, idB, idC := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C]()
	checkAccess(g, []ComponentID{idA, idB, idC}, []AccessMode{modeA, modeB, modeC})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC))
	return &Query3[A, B, C]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
	}
}

func (q *Query3[A, B, C]) Next() (Entity, *A, *B, *C, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			q.row++
			return e, a, b, c, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, false
}

func (q *Query3[A, B, C]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	releaseRuns(q.runs)
}

// Query4 iterates entities carrying components A, B, C and D.
type Query4[A, B, C, D any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	colD queryColumn[D]
	run  int
	row  int
}

func CreateQuery4[A, B, C, D any](g *QueryGenerator, modeA, modeB, modeC, modeD AccessMode) *Query4[A, B, C, D] {
	idA, idB, idC, idD := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D]()
	checkAccess(g, []ComponentID{idA, idB, idC, idD}, []AccessMode{modeA, modeB, modeC, modeD})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC, idD))
	return &Query4[A, B, C, D]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
		colD: newQueryColumn[D](g.archetypes, modeD, runs),
	}
}

func (q *Query4[A, B, C, D]) Next() (Entity, *A, *B, *C, *D, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			d := q.colD.at(q.run, q.row)
			q.row++
			return e, a, b, c, d, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, nil, false
}

func (q *Query4[A, B, C, D]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	q.colD.release()
	releaseRuns(q.runs)
}
