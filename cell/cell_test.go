// This file is part of cellscheme.

package cell

import "testing"

func TestEqSymbolIdentity(t *testing.T) {
	h := NewHeap(0, 0)
	st := NewSymbolTable()
	a := st.Intern(h, "x")
	b := st.Intern(h, "x")
	if a != b {
		t.Fatalf("interning %q twice produced distinct cells", "x")
	}
	if !Eq(a, b) {
		t.Fatalf("eq? on identically-spelled interned symbols must be true")
	}
}

func TestEqvFixnumRealDistinct(t *testing.T) {
	h := NewHeap(0, 0)
	fx := h.NewFixnum(1)
	re := h.NewReal(1.0)
	if Eqv(fx, re) {
		t.Fatalf("eqv? must be false between a fixnum and a real, even with equal magnitude (see DESIGN.md)")
	}
}

func TestEqualCyclicTerminates(t *testing.T) {
	h := NewHeap(0, 0)
	a := h.Cons(h.NewFixnum(1), Nil)
	a.Cdr = a
	b := h.Cons(h.NewFixnum(1), Nil)
	b.Cdr = b
	if !Equal(a, b) {
		t.Fatalf("equal? on two identically-shaped cyclic lists should be true, not hang")
	}
}

func TestListLengthVariants(t *testing.T) {
	h := NewHeap(0, 0)
	proper := FromSlice(h, []*Cell{h.NewFixnum(1), h.NewFixnum(2), h.NewFixnum(3)})
	if n := ListLength(proper); n != 3 {
		t.Fatalf("proper list length = %d, want 3", n)
	}
	dotted := h.Cons(h.NewFixnum(1), h.NewFixnum(2))
	if n := ListLength(dotted); n != -3 {
		t.Fatalf("dotted list length = %d, want -3", n)
	}
	circ := h.Cons(h.NewFixnum(1), Nil)
	circ.Cdr = circ
	if n := ListLength(circ); n != -1 {
		t.Fatalf("circular list length = %d, want -1", n)
	}
}

func TestStringWidensOnNonASCII(t *testing.T) {
	buf := NewStringBuf("abc")
	if buf.isWide {
		t.Fatalf("ascii string should not start wide")
	}
	buf.SetRune(1, 'é')
	if !buf.isWide {
		t.Fatalf("setting a non-ASCII rune must widen the buffer")
	}
	if buf.String() != "aéc" {
		t.Fatalf("got %q, want %q", buf.String(), "aéc")
	}
}
