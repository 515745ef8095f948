package cecs

import "testing"

type qPosition struct{ X, Y float64 }
type qVelocity struct{ DX, DY float64 }

func TestQuery2IteratesAllMatchingEntities(t *testing.T) {
	w := NewWorld()
	w.Create(Pack2[qPosition, qVelocity]{
		C0: []qPosition{{X: 1}, {X: 2}, {X: 3}},
		C1: []qVelocity{{DX: 1}, {DX: 2}, {DX: 3}},
	})
	w.Create(Pack1[qPosition]{C0: []qPosition{{X: 99}}})

	gen := newQueryGenerator(w.Archetypes(), NewFilter(Reads[qPosition](), Writes[qVelocity]()))
	q := CreateQuery2[qPosition, qVelocity](gen, ReadOnly, ReadWrite)
	defer q.Release()

	seen := 0
	for {
		_, pos, vel, ok := q.Next()
		if !ok {
			break
		}
		vel.DX += pos.X
		seen++
	}
	if seen != 3 {
		t.Fatalf("expected to iterate 3 entities, got %d", seen)
	}
}

func TestQueryOutsideDeclaredFilterPanics(t *testing.T) {
	w := NewWorld()
	w.Create(Pack1[qPosition]{C0: []qPosition{{X: 1}}})

	gen := newQueryGenerator(w.Archetypes(), NewFilter(Reads[qPosition]()))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected CreateQuery1 to panic requesting write access outside the declared filter")
		}
	}()
	CreateQuery1[qPosition](gen, ReadWrite)
}
