// This file is part of cellscheme.

package port

import "testing"

func TestStringInputReadRune(t *testing.T) {
	p := NewStringInput("ab")
	r, err := p.ReadRune()
	if err != nil || r != 'a' {
		t.Fatalf("got %q, %v", r, err)
	}
	r, err = p.ReadRune()
	if err != nil || r != 'b' {
		t.Fatalf("got %q, %v", r, err)
	}
	if _, err := p.ReadRune(); err == nil {
		t.Fatal("expected EOF")
	}
	if !p.AtEOF() {
		t.Fatal("expected eof flag set")
	}
}

func TestPeekRuneDoesNotConsume(t *testing.T) {
	p := NewStringInput("xy")
	peeked, err := p.PeekRune()
	if err != nil || peeked != 'x' {
		t.Fatalf("got %q, %v", peeked, err)
	}
	read, err := p.ReadRune()
	if err != nil || read != 'x' {
		t.Fatalf("peek must not consume: got %q, %v", read, err)
	}
}

func TestStringOutputAccumulates(t *testing.T) {
	p := NewStringOutput()
	p.WriteString("hello ")
	p.WriteRune('世')
	if got := p.String(); got != "hello 世" {
		t.Fatalf("got %q", got)
	}
}

func TestLineCounting(t *testing.T) {
	p := NewStringInput("a\nb\n")
	for i := 0; i < 4; i++ {
		if _, err := p.ReadRune(); err != nil {
			t.Fatal(err)
		}
	}
	if p.Line() != 2 {
		t.Fatalf("expected line 2, got %d", p.Line())
	}
}

func TestUnreadRuneRoundTrips(t *testing.T) {
	p := NewStringInput("z")
	r, _ := p.ReadRune()
	p.UnreadRune(r)
	again, err := p.ReadRune()
	if err != nil || again != r {
		t.Fatalf("got %q, %v", again, err)
	}
}
