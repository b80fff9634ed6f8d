// This file is part of cellscheme.

package print

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeap() (*cell.Heap, *cell.SymbolTable) {
	return cell.NewHeap(0, 0), cell.NewSymbolTable()
}

func TestWriteQuotesStringsDisplayDoesNot(t *testing.T) {
	h, _ := newTestHeap()
	s := h.NewString("hi\n")

	w, err := Write(s)
	require.NoError(t, err)
	assert.Equal(t, `"hi\n"`, w)

	d, err := Display(s)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", d)
}

func TestWriteCharLiteralsUseNamedForms(t *testing.T) {
	h, _ := newTestHeap()
	w, err := Write(h.NewChar(' '))
	require.NoError(t, err)
	assert.Equal(t, `#\space`, w)

	w, err = Write(h.NewChar('a'))
	require.NoError(t, err)
	assert.Equal(t, `#\a`, w)
}

func TestEmbeddedNULErrors(t *testing.T) {
	h, _ := newTestHeap()
	s := h.NewString("a\x00b")
	_, err := Write(s)
	assert.Error(t, err)
	_, err = Display(s)
	assert.Error(t, err)
}

func TestRealFormattingDecimalPointRule(t *testing.T) {
	h, _ := newTestHeap()
	w, err := Write(h.NewReal(3))
	require.NoError(t, err)
	assert.Equal(t, "3.0", w, "R5RS requires a decimal point on every real")

	w, err = Write(h.NewReal(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", w)
}

func TestQuoteAbbreviation(t *testing.T) {
	h, st := newTestHeap()
	quote := st.Intern(h, "quote")
	x := st.Intern(h, "x")
	form := h.Cons(quote, h.Cons(x, cell.Nil))
	w, err := Write(form)
	require.NoError(t, err)
	assert.Equal(t, "'x", w)
}

func TestDottedPairRendering(t *testing.T) {
	h, _ := newTestHeap()
	p := h.Cons(h.NewFixnum(1), h.NewFixnum(2))
	w, err := Write(p)
	require.NoError(t, err)
	assert.Equal(t, "(1 . 2)", w)
}

func TestVectorRendering(t *testing.T) {
	h, _ := newTestHeap()
	v := h.AllocVector(3, h.NewFixnum(0))
	v.Vec.Set(1, h.NewFixnum(9))
	w, err := Write(v)
	require.NoError(t, err)
	assert.Equal(t, "#(0 9 0)", w)
}

func TestDisplayWidthCountsEastAsianWideAsTwo(t *testing.T) {
	assert.Equal(t, 1, DisplayWidth("a"))
	assert.Equal(t, 2, DisplayWidth("あ"))
	assert.Equal(t, 4, DisplayWidth("ab"+"あ"))
}
