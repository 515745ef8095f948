package cecs

import "testing"

func buildGraph(edges map[SystemID][]SystemID, n int) compatGraph {
	g := make(compatGraph, n)
	for v, neighbors := range edges {
		var s systemSet
		for _, n := range neighbors {
			s.set(n)
		}
		g[v] = s
	}
	return g
}

func TestMaxCliqueFindsCompleteSubgraph(t *testing.T) {
	// 0-1-2 form a triangle, 3 only connects to 0.
	g := buildGraph(map[SystemID][]SystemID{
		0: {1, 2, 3},
		1: {0, 2},
		2: {0, 1},
		3: {0},
	}, 4)
	finder := newCliqueFinder(g)

	var universe systemSet
	universe.set(0)
	universe.set(1)
	universe.set(2)
	universe.set(3)

	clique := finder.maxClique(universe)
	if clique.count() != 3 {
		t.Fatalf("expected max clique of size 3, got %d (%v)", clique.count(), clique)
	}
	if !clique.has(0) || !clique.has(1) || !clique.has(2) {
		t.Fatalf("expected clique {0,1,2}, got %v", clique)
	}
}

func TestMaxCliqueTieBreaksOnLowestBit(t *testing.T) {
	// Two disjoint edges of equal size: {0,1} and {2,3}.
	g := buildGraph(map[SystemID][]SystemID{
		0: {1},
		1: {0},
		2: {3},
		3: {2},
	}, 4)
	finder := newCliqueFinder(g)

	var universe systemSet
	universe.set(0)
	universe.set(1)
	universe.set(2)
	universe.set(3)

	clique := finder.maxClique(universe)
	if !clique.has(0) || !clique.has(1) {
		t.Fatalf("expected tie-break to prefer clique containing lowest bit 0, got %v", clique)
	}
}

func TestMaxCliqueEmptyUniverse(t *testing.T) {
	g := buildGraph(nil, 2)
	finder := newCliqueFinder(g)
	clique := finder.maxClique(systemSet{})
	if !clique.isEmpty() {
		t.Fatalf("expected empty clique for empty universe")
	}
}

func TestMaxCliqueIsMemoized(t *testing.T) {
	g := buildGraph(map[SystemID][]SystemID{0: {1}, 1: {0}}, 2)
	finder := newCliqueFinder(g)
	var universe systemSet
	universe.set(0)
	universe.set(1)
	first := finder.maxClique(universe)
	if len(finder.cache) != 1 {
		t.Fatalf("expected one cached entry after first call")
	}
	second := finder.maxClique(universe)
	if first != second {
		t.Fatalf("expected memoized result to match")
	}
}
