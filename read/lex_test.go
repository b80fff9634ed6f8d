// This file is part of cellscheme.

package read

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/port"
)

func tokens(t *testing.T, src string) []Token {
	p := port.NewStringInput(src)
	var out []Token
	for {
		tok, err := Next(p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestLexBasicForms(t *testing.T) {
	toks := tokens(t, `(foo "bar\n" . 'x)`)
	want := []Kind{LParen, Atom, String, Dot, Quote, Atom, RParen, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got kind %d, want %d", i, toks[i].Kind, k)
		}
	}
	if toks[2].Text != "bar\n" {
		t.Fatalf("string escape: got %q", toks[2].Text)
	}
}

func TestLexCommentsSkipped(t *testing.T) {
	toks := tokens(t, "; a comment\n42")
	if len(toks) != 2 || toks[0].Kind != Atom || toks[0].Text != "42" {
		t.Fatalf("got %+v", toks)
	}
}

func TestLexSharpConstAndVector(t *testing.T) {
	toks := tokens(t, "#t #(1 2) #\\a")
	if toks[0].Kind != SharpConst || toks[0].Text != "t" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != VecOpen {
		t.Fatalf("got %+v", toks[1])
	}
	if toks[5].Kind != SharpConst || toks[5].Text != `\a` {
		t.Fatalf("got %+v", toks[5])
	}
}

func TestParseAtomNumberVsSymbol(t *testing.T) {
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	if v := ParseAtom(h, st, "42"); !v.IsFixnum() || v.Ival != 42 {
		t.Fatalf("got %+v", v)
	}
	if v := ParseAtom(h, st, "3.14"); !v.IsReal() {
		t.Fatalf("expected real, got %+v", v)
	}
	if v := ParseAtom(h, st, "foo"); !v.IsSymbol() {
		t.Fatalf("expected symbol, got %+v", v)
	}
	if v := ParseAtom(h, st, "-5"); !v.IsFixnum() || v.Ival != -5 {
		t.Fatalf("got %+v", v)
	}
	if v := ParseAtom(h, st, "+"); !v.IsSymbol() {
		t.Fatalf("bare + must be a symbol, got %+v", v)
	}
}

func TestParseSharpConstChar(t *testing.T) {
	h := cell.NewHeap(0, 0)
	c, err := ParseSharpConst(h, `\space`)
	if err != nil || c.Ival != ' ' {
		t.Fatalf("got %+v, %v", c, err)
	}
	c, err = ParseSharpConst(h, "x2A")
	if err != nil || c.Ival != 0x2A {
		t.Fatalf("got %+v, %v", c, err)
	}
}
