package cecs

// This file follows the same shape as Query1..Query4 in query.go, extended
// up to the eight-column cap shared with Pack8. It exists as a separate
// file because it's mechanically generated from the same template for each
// arity, the way filter_generated.go in a sibling ECS library is generated
// from its own Filter2 template.

// Query5 iterates entities carrying components A through E.
type Query5[A, B, C, D, E any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	colD queryColumn[D]
	colE queryColumn[E]
	run  int
	row  int
}

func CreateQuery5[A, B, C, D, E any](g *QueryGenerator, modeA, modeB, modeC, modeD, modeE AccessMode) *Query5[A, B, C, D, E] {
	idA, idB, idC, idD, idE := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E]()
	checkAccess(g, []ComponentID{idA, idB, idC, idD, idE}, []AccessMode{modeA, modeB, modeC, modeD, modeE})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC, idD, idE))
	return &Query5[A, B, C, D, E]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
		colD: newQueryColumn[D](g.archetypes, modeD, runs),
		colE: newQueryColumn[E](g.archetypes, modeE, runs),
	}
}

func (q *Query5[A, B, C, D, E]) Next() (Entity, *A, *B, *C, *D, *E, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			d := q.colD.at(q.run, q.row)
			ee := q.colE.at(q.run, q.row)
			q.row++
			return e, a, b, c, d, ee, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, nil, nil, false
}

func (q *Query5[A, B, C, D, E]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	q.colD.release()
	q.colE.release()
	releaseRuns(q.runs)
}

// Query6 iterates entities carrying components A through F.
type Query6[A, B, C, D, E, F any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	colD queryColumn[D]
	colE queryColumn[E]
	colF queryColumn[F]
	run  int
	row  int
}

func CreateQuery6[A, B, C, D, E, F any](g *QueryGenerator, modeA, modeB, modeC, modeD, modeE, modeF AccessMode) *Query6[A, B, C, D, E, F] {
	idA, idB, idC, idD, idE, idF := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F]()
	checkAccess(g, []ComponentID{idA, idB, idC, idD, idE, idF}, []AccessMode{modeA, modeB, modeC, modeD, modeE, modeF})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC, idD, idE, idF))
	return &Query6[A, B, C, D, E, F]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
		colD: newQueryColumn[D](g.archetypes, modeD, runs),
		colE: newQueryColumn[E](g.archetypes, modeE, runs),
		colF: newQueryColumn[F](g.archetypes, modeF, runs),
	}
}

func (q *Query6[A, B, C, D, E, F]) Next() (Entity, *A, *B, *C, *D, *E, *F, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			d := q.colD.at(q.run, q.row)
			ee := q.colE.at(q.run, q.row)
			f := q.colF.at(q.run, q.row)
			q.row++
			return e, a, b, c, d, ee, f, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, nil, nil, nil, false
}

func (q *Query6[A, B, C, D, E, F]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	q.colD.release()
	q.colE.release()
	q.colF.release()
	releaseRuns(q.runs)
}

// Query7 iterates entities carrying components A through G.
type Query7[A, B, C, D, E, F, G any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	colD queryColumn[D]
	colE queryColumn[E]
	colF queryColumn[F]
	colG queryColumn[G]
	run  int
	row  int
}

func CreateQuery7[A, B, C, D, E, F, G any](g *QueryGenerator, modeA, modeB, modeC, modeD, modeE, modeF, modeG AccessMode) *Query7[A, B, C, D, E, F, G] {
	idA, idB, idC, idD, idE, idF, idG := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F](), ComponentIDFor[G]()
	checkAccess(g, []ComponentID{idA, idB, idC, idD, idE, idF, idG}, []AccessMode{modeA, modeB, modeC, modeD, modeE, modeF, modeG})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC, idD, idE, idF, idG))
	return &Query7[A, B, C, D, E, F, G]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
		colD: newQueryColumn[D](g.archetypes, modeD, runs),
		colE: newQueryColumn[E](g.archetypes, modeE, runs),
		colF: newQueryColumn[F](g.archetypes, modeF, runs),
		colG: newQueryColumn[G](g.archetypes, modeG, runs),
	}
}

func (q *Query7[A, B, C, D, E, F, G]) Next() (Entity, *A, *B, *C, *D, *E, *F, *G, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			d := q.colD.at(q.run, q.row)
			ee := q.colE.at(q.run, q.row)
			f := q.colF.at(q.run, q.row)
			g2 := q.colG.at(q.run, q.row)
			q.row++
			return e, a, b, c, d, ee, f, g2, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, nil, nil, nil, nil, false
}

func (q *Query7[A, B, C, D, E, F, G]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	q.colD.release()
	q.colE.release()
	q.colF.release()
	q.colG.release()
	releaseRuns(q.runs)
}

// Query8 iterates entities carrying components A through H, the widest
// query this package generates.
type Query8[A, B, C, D, E, F, G, H any] struct {
	runs []matchedRun
	colA queryColumn[A]
	colB queryColumn[B]
	colC queryColumn[C]
	colD queryColumn[D]
	colE queryColumn[E]
	colF queryColumn[F]
	colG queryColumn[G]
	colH queryColumn[H]
	run  int
	row  int
}

func CreateQuery8[A, B, C, D, E, F, G, H any](g *QueryGenerator, modeA, modeB, modeC, modeD, modeE, modeF, modeG, modeH AccessMode) *Query8[A, B, C, D, E, F, G, H] {
	idA, idB, idC, idD, idE, idF, idG, idH := ComponentIDFor[A](), ComponentIDFor[B](), ComponentIDFor[C](), ComponentIDFor[D](), ComponentIDFor[E](), ComponentIDFor[F](), ComponentIDFor[G](), ComponentIDFor[H]()
	checkAccess(g, []ComponentID{idA, idB, idC, idD, idE, idF, idG, idH}, []AccessMode{modeA, modeB, modeC, modeD, modeE, modeF, modeG, modeH})
	runs := matchDescriptors(g.archetypes, NewArchetype(idA, idB, idC, idD, idE, idF, idG, idH))
	return &Query8[A, B, C, D, E, F, G, H]{
		runs: runs,
		colA: newQueryColumn[A](g.archetypes, modeA, runs),
		colB: newQueryColumn[B](g.archetypes, modeB, runs),
		colC: newQueryColumn[C](g.archetypes, modeC, runs),
		colD: newQueryColumn[D](g.archetypes, modeD, runs),
		colE: newQueryColumn[E](g.archetypes, modeE, runs),
		colF: newQueryColumn[F](g.archetypes, modeF, runs),
		colG: newQueryColumn[G](g.archetypes, modeG, runs),
		colH: newQueryColumn[H](g.archetypes, modeH, runs),
	}
}

func (q *Query8[A, B, C, D, E, F, G, H]) Next() (Entity, *A, *B, *C, *D, *E, *F, *G, *H, bool) {
	for q.run < len(q.runs) {
		if q.row < len(q.runs[q.run].entities) {
			e := q.runs[q.run].entities[q.row]
			a := q.colA.at(q.run, q.row)
			b := q.colB.at(q.run, q.row)
			c := q.colC.at(q.run, q.row)
			d := q.colD.at(q.run, q.row)
			ee := q.colE.at(q.run, q.row)
			f := q.colF.at(q.run, q.row)
			g2 := q.colG.at(q.run, q.row)
			h := q.colH.at(q.run, q.row)
			q.row++
			return e, a, b, c, d, ee, f, g2, h, true
		}
		q.run++
		q.row = 0
	}
	return Entity{}, nil, nil, nil, nil, nil, nil, nil, nil, false
}

func (q *Query8[A, B, C, D, E, F, G, H]) Release() {
	q.colA.release()
	q.colB.release()
	q.colC.release()
	q.colD.release()
	q.colE.release()
	q.colF.release()
	q.colG.release()
	q.colH.release()
	releaseRuns(q.runs)
}
