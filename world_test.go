package cecs

import "testing"

type wPosition struct{ X, Y float64 }
type wVelocity struct{ DX, DY float64 }

func TestWorldCreateAssignsDistinctEntities(t *testing.T) {
	w := NewWorld()
	pack := Pack2[wPosition, wVelocity]{
		C0: []wPosition{{X: 1}, {X: 2}},
		C1: []wVelocity{{DX: 1}, {DX: 2}},
	}
	entities := w.Create(pack)
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if entities[0].ID() == entities[1].ID() {
		t.Fatalf("expected distinct entity ids")
	}
	for _, e := range entities {
		if !w.Valid(e) {
			t.Fatalf("expected %v to be valid", e)
		}
	}
}

func TestWorldCreatePanicsWhileTickLocked(t *testing.T) {
	w := NewWorld()
	w.beginTick()
	defer w.endTick()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Create to panic while world is tick-locked")
		}
	}()
	w.Create(Pack1[wPosition]{C0: []wPosition{{X: 1}}})
}

func TestWorldCreatePanicsOnMismatchedPackColumnLengths(t *testing.T) {
	w := NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Create to panic when pack columns have different lengths")
		}
	}()
	w.Create(Pack2[wPosition, wVelocity]{
		C0: []wPosition{{X: 1}, {X: 2}, {X: 3}},
		C1: []wVelocity{{DX: 1}},
	})
}

func TestWorldRecycledSlotBumpsVersion(t *testing.T) {
	w := NewWorld()
	e1 := w.Create(Pack1[wPosition]{C0: []wPosition{{X: 1}}})[0]
	if w.Valid(e1) == false {
		t.Fatalf("expected e1 valid")
	}
	w.free = append(w.free, e1.ID())
	e2 := w.Create(Pack1[wPosition]{C0: []wPosition{{X: 2}}})[0]
	if e2.ID() != e1.ID() {
		t.Fatalf("expected recycled slot id to match")
	}
	if e2.Version() == e1.Version() {
		t.Fatalf("expected recycled slot to bump version")
	}
	if w.Valid(e1) {
		t.Fatalf("expected stale handle e1 to be invalid after recycle")
	}
}
