package cecs

// compatGraph holds, for every registered system, the set of other systems
// it may run alongside: i and j are adjacent iff neither's full access set
// intersects the other's write set. This is built once at Dispatcher build
// time and never changes afterward.
type compatGraph []systemSet

// maxClique finds a maximum-cardinality clique within the induced subgraph
// over universe (the systems already running plus those whose dependencies
// have all finished). Ties are broken by preferring
// the clique whose lowest-indexed member is smallest, so scheduling stays
// deterministic given the same graph and universe.
//
// This wraps a Bron-Kerbosch-with-pivot search, memoized by universe: the
// same universe bitset recurs often tick to tick (the dependency DAG tends
// to unlock the same small set of systems repeatedly), so results are
// cached rather than recomputed from scratch each time.
type cliqueFinder struct {
	graph  compatGraph
	cache  map[systemSet]systemSet
	onHit  func()
	onMiss func()
}

func newCliqueFinder(graph compatGraph) *cliqueFinder {
	return &cliqueFinder{graph: graph, cache: map[systemSet]systemSet{}}
}

func (f *cliqueFinder) maxClique(universe systemSet) systemSet {
	if universe.isEmpty() {
		return systemSet{}
	}
	if cached, ok := f.cache[universe]; ok {
		if f.onHit != nil {
			f.onHit()
		}
		return cached
	}
	if f.onMiss != nil {
		f.onMiss()
	}
	var best systemSet
	bronKerboschPivot(f.graph, systemSet{}, universe, systemSet{}, &best)
	f.cache[universe] = best
	return best
}

func bronKerboschPivot(graph compatGraph, r, p, x systemSet, best *systemSet) {
	if p.isEmpty() && x.isEmpty() {
		if better(r, *best) {
			*best = r
		}
		return
	}

	pivot, ok := firstOneOf(p.or(x))
	if !ok {
		return
	}
	candidates := p.andNot(graph[pivot])

	var order []SystemID
	candidates.forEach(func(v SystemID) { order = append(order, v) })

	for _, v := range order {
		neighbors := graph[v]
		var withV systemSet
		withV.set(v)
		bronKerboschPivot(graph, r.or(withV), p.and(neighbors), x.and(neighbors), best)
		p.clear(v)
		x.set(v)
	}
}

// better reports whether candidate should replace current as the best
// clique found so far: larger cardinality wins, ties go to whichever has
// the smaller lowest-set-bit.
func better(candidate, current systemSet) bool {
	cc, curc := candidate.count(), current.count()
	if cc != curc {
		return cc > curc
	}
	if cc == 0 {
		return false
	}
	cFirst, _ := candidate.firstOne()
	curFirst, _ := current.firstOne()
	return cFirst < curFirst
}

func firstOneOf(s systemSet) (SystemID, bool) {
	return s.firstOne()
}
