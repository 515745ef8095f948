package cecs

import "testing"

type idA struct{}
type idB struct{}

func TestComponentIDForIsStableAndDistinct(t *testing.T) {
	a1 := ComponentIDFor[idA]()
	a2 := ComponentIDFor[idA]()
	b := ComponentIDFor[idB]()
	if a1 != a2 {
		t.Fatalf("expected repeated calls for the same type to return the same id")
	}
	if a1 == b {
		t.Fatalf("expected distinct types to get distinct ids")
	}
}
