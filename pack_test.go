package cecs

import "testing"

type pkPosition struct{ X int }
type pkVelocity struct{ DX int }
type pkHealth struct{ HP int }

func TestPack2MoveIntoPlacesAllColumns(t *testing.T) {
	ar := NewArchetypes()
	pack := Pack2[pkPosition, pkVelocity]{
		C0: []pkPosition{{X: 1}, {X: 2}},
		C1: []pkVelocity{{DX: 9}, {DX: 8}},
	}
	if pack.Len() != 2 {
		t.Fatalf("expected pack length 2, got %d", pack.Len())
	}
	descID, start := pack.moveInto(ar)
	if start != 0 {
		t.Fatalf("expected first insert to start at row 0, got %d", start)
	}
	desc := ar.Descriptor(descID)
	bufA, _ := GetComponentBuffers[pkPosition](ar)
	h := bufA.Get(desc.columns[ComponentIDFor[pkPosition]()])
	defer h.Release()
	if len(*h.Get()) != 2 || (*h.Get())[1].X != 2 {
		t.Fatalf("expected position column to hold both entries")
	}
}

func TestPack2MoveIntoPanicsOnMismatchedColumnLengths(t *testing.T) {
	ar := NewArchetypes()
	pack := Pack2[pkPosition, pkVelocity]{
		C0: []pkPosition{{X: 1}, {X: 2}},
		C1: []pkVelocity{{DX: 9}},
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected moveInto to panic on mismatched column lengths")
		}
	}()
	pack.moveInto(ar)
}

func TestPack3SharesArchetypeAcrossSeparateCreates(t *testing.T) {
	ar := NewArchetypes()
	first := Pack3[pkPosition, pkVelocity, pkHealth]{
		C0: []pkPosition{{X: 1}},
		C1: []pkVelocity{{DX: 1}},
		C2: []pkHealth{{HP: 10}},
	}
	second := Pack3[pkPosition, pkVelocity, pkHealth]{
		C0: []pkPosition{{X: 2}},
		C1: []pkVelocity{{DX: 2}},
		C2: []pkHealth{{HP: 20}},
	}
	firstDesc, firstStart := first.moveInto(ar)
	secondDesc, secondStart := second.moveInto(ar)
	if firstDesc != secondDesc {
		t.Fatalf("expected identical archetypes to share one descriptor")
	}
	if firstStart != 0 || secondStart != 1 {
		t.Fatalf("expected sequential row starts, got %d and %d", firstStart, secondStart)
	}
}
