// This file is part of cellscheme.

package env

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineLookupGlobal(t *testing.T) {
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	g := NewGlobal(h)
	x := st.Intern(h, "x")

	_, ok := Lookup(g, x)
	assert.False(t, ok, "unbound symbol should not be found")

	Define(h, g, x, h.NewFixnum(42))
	v, ok := Lookup(g, x)
	require.True(t, ok)
	assert.Equal(t, int64(42), v.Ival)

	Define(h, g, x, h.NewFixnum(7))
	v, ok = Lookup(g, x)
	require.True(t, ok)
	assert.Equal(t, int64(7), v.Ival, "redefine must update in place, not shadow")
}

func TestChildFrameShadowsThenUnwinds(t *testing.T) {
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	g := NewGlobal(h)
	x := st.Intern(h, "x")
	Define(h, g, x, h.NewFixnum(1))

	child := NewChild(h, g)
	Define(h, child, x, h.NewFixnum(2))

	v, _ := Lookup(child, x)
	assert.Equal(t, int64(2), v.Ival, "inner frame should shadow outer binding")

	v, _ = Lookup(g, x)
	assert.Equal(t, int64(1), v.Ival, "outer binding must be unaffected by shadowing")
}

func TestSetUnboundErrors(t *testing.T) {
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	g := NewGlobal(h)
	y := st.Intern(h, "y")
	err := Set(g, y, h.NewFixnum(1))
	assert.Error(t, err)
}

func TestBindRestParameter(t *testing.T) {
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	g := NewGlobal(h)
	a, b, rest := st.Intern(h, "a"), st.Intern(h, "b"), st.Intern(h, "rest")
	formals := h.Cons(a, h.Cons(b, rest))
	args := cell.FromSlice(h, []*cell.Cell{h.NewFixnum(1), h.NewFixnum(2), h.NewFixnum(3), h.NewFixnum(4)})

	frame, err := Bind(h, g, formals, args)
	require.NoError(t, err)

	va, _ := Lookup(frame, a)
	vb, _ := Lookup(frame, b)
	vr, _ := Lookup(frame, rest)
	assert.Equal(t, int64(1), va.Ival)
	assert.Equal(t, int64(2), vb.Ival)
	assert.Equal(t, []*cell.Cell{h.NewFixnum(3), h.NewFixnum(4)}[0].Ival, vr.Car.Ival)
}
