// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithFixnumPreserving(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(+ 1 2 3)")
	require.True(t, v.IsFixnum())
	assert.Equal(t, int64(6), v.Ival)
}

func TestArithMixedPromotesToReal(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(+ 1 2.5)")
	require.True(t, v.IsReal())
	assert.Equal(t, 3.5, v.Fval)
}

func TestQuotientRemainderModuloSigns(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, int64(-2), evalStr(t, m, "(quotient -7 3)").Ival)
	assert.Equal(t, int64(-1), evalStr(t, m, "(remainder -7 3)").Ival, "remainder takes the sign of the dividend")
	assert.Equal(t, int64(2), evalStr(t, m, "(modulo -7 3)").Ival, "modulo takes the sign of the divisor")
}

func TestDivisionByZeroRaises(t *testing.T) {
	m := newTestMachine(t)
	p := m.Heap.NewPort(port.NewStringInput("(quotient 1 0)"))
	expr, err := m.ReadTopLevel(p)
	require.NoError(t, err)
	_, err = m.Eval(expr, m.Global)
	assert.Error(t, err)
}

func TestExptIntegerWhenExact(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(expt 2 10)")
	require.True(t, v.IsFixnum())
	assert.Equal(t, int64(1024), v.Ival)
}

func TestExptRealOnNegativeExponent(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(expt 2 -1)")
	require.True(t, v.IsReal())
	assert.Equal(t, 0.5, v.Fval)
}

func TestNumberPredicates(t *testing.T) {
	m := newTestMachine(t)
	assert.True(t, evalStr(t, m, "(zero? 0)") == cell.True)
	assert.True(t, evalStr(t, m, "(odd? 3)") == cell.True)
	assert.True(t, evalStr(t, m, "(even? 4)") == cell.True)
	assert.True(t, evalStr(t, m, "(negative? -1)") == cell.True)
}
