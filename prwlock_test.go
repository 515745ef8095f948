package cecs

import (
	"sync"
	"testing"
)

func TestPrwLockConcurrentReaders(t *testing.T) {
	l := NewPrwLock(42)
	h1 := l.Read()
	h2 := l.Read()
	if *h1.Get() != 42 || *h2.Get() != 42 {
		t.Fatalf("expected both reads to see 42")
	}
	h1.Release()
	h2.Release()

	w := l.Write()
	*w.Get() = 7
	w.Release()

	h3 := l.Read()
	if *h3.Get() != 7 {
		t.Fatalf("expected write to be visible, got %d", *h3.Get())
	}
	h3.Release()
}

func TestPrwLockWritePanicsUnderRead(t *testing.T) {
	l := NewPrwLock(0)
	r := l.Read()
	defer r.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Write to panic while a reader is held")
		}
	}()
	l.Write()
}

func TestPrwLockReadPanicsUnderWrite(t *testing.T) {
	l := NewPrwLock(0)
	w := l.Write()
	defer w.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Read to panic while a writer is held")
		}
	}()
	l.Read()
}

func TestPrwLockConcurrentAccess(t *testing.T) {
	l := NewPrwLock(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := l.Read()
			_ = *h.Get()
			h.Release()
		}()
	}
	wg.Wait()
}
