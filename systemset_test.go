package cecs

import "testing"

func TestSystemSetBasicOps(t *testing.T) {
	var s systemSet
	s.set(0)
	s.set(5)
	s.set(127)
	if !s.has(0) || !s.has(5) || !s.has(127) {
		t.Fatalf("expected all set bits to report present")
	}
	if s.has(6) {
		t.Fatalf("did not expect bit 6 to be set")
	}
	if s.count() != 3 {
		t.Fatalf("expected count 3, got %d", s.count())
	}
	s.clear(5)
	if s.has(5) || s.count() != 2 {
		t.Fatalf("expected bit 5 cleared")
	}
}

func TestSystemSetBooleanAlgebra(t *testing.T) {
	var a, b systemSet
	a.set(1)
	a.set(2)
	b.set(2)
	b.set(3)

	and := a.and(b)
	if and.count() != 1 || !and.has(2) {
		t.Fatalf("expected AND to contain only bit 2")
	}
	or := a.or(b)
	if or.count() != 3 {
		t.Fatalf("expected OR to contain 3 bits, got %d", or.count())
	}
	xor := a.xor(b)
	if xor.count() != 2 || !xor.has(1) || !xor.has(3) {
		t.Fatalf("expected XOR to contain bits 1 and 3")
	}
	andNot := a.andNot(b)
	if andNot.count() != 1 || !andNot.has(1) {
		t.Fatalf("expected AND-NOT to contain only bit 1")
	}
}

func TestSystemSetFirstOneAndForEach(t *testing.T) {
	var s systemSet
	s.set(64)
	s.set(10)
	s.set(100)
	first, ok := s.firstOne()
	if !ok || first != 10 {
		t.Fatalf("expected first set bit 10, got %d ok=%v", first, ok)
	}
	var seen []SystemID
	s.forEach(func(id SystemID) { seen = append(seen, id) })
	if len(seen) != 3 || seen[0] != 10 || seen[1] != 64 || seen[2] != 100 {
		t.Fatalf("expected ascending order iteration, got %v", seen)
	}
}
