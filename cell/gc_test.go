// This file is part of cellscheme.

package cell

import "testing"

// rootSlice is a trivial RootProvider for tests, standing in for
// eval.Machine.Roots, which aggregates the real root set.
type rootSlice []*Cell

func (r rootSlice) Roots() []*Cell { return r }

func TestGCReclaimsUnreachable(t *testing.T) {
	h := NewHeap(64, 4)
	var roots rootSlice
	h.SetRoots(&roots)

	kept := h.Cons(h.NewFixnum(1), Nil)
	roots = rootSlice{kept}
	h.SetRoots(&roots)

	// allocate a bunch of garbage pairs that nothing keeps live
	for i := 0; i < 200; i++ {
		h.Cons(h.NewFixnum(int64(i)), Nil)
	}
	h.ClearAnchor()

	freed := h.Collect()
	if freed == 0 {
		t.Fatalf("expected the collector to reclaim unreachable garbage")
	}
	if kept.Flags&FlagMark != 0 {
		t.Fatalf("sweep must clear the mark bit on survivors")
	}
	if !kept.IsPair() || kept.Car.Ival != 1 {
		t.Fatalf("rooted cell was corrupted by collection")
	}
}

func TestGCKeepsCyclicButRootedStructure(t *testing.T) {
	h := NewHeap(64, 4)
	var roots rootSlice
	h.SetRoots(&roots)

	a := h.Cons(h.NewFixnum(1), Nil)
	a.Cdr = a // self-cycle
	roots = rootSlice{a}
	h.SetRoots(&roots)
	h.ClearAnchor()

	h.Collect()
	if a.Tag != TagPair {
		t.Fatalf("cyclic but rooted cell was swept")
	}
}

func TestHeapOOMReturnsSink(t *testing.T) {
	h := NewHeap(4, 1) // one tiny segment, no growth headroom
	var roots rootSlice
	h.SetRoots(&roots)
	var kept []*Cell
	for i := 0; i < 100; i++ {
		c := h.Cons(h.NewFixnum(int64(i)), Nil)
		kept = append(kept, c)
		roots = rootSlice(kept)
		h.SetRoots(&roots)
		h.ClearAnchor()
	}
	if !h.OutOfMemory() {
		t.Fatalf("expected heap to latch out-of-memory once all cells are rooted and segments are capped")
	}
}
