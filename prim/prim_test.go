// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/cellscheme/cellscheme/port"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *eval.Machine {
	t.Helper()
	h := cell.NewHeap(0, 0)
	st := cell.NewSymbolTable()
	m := eval.New(h, st)
	Install(m)
	return m
}

// evalStr reads every top-level form in src from a string port and
// evaluates them in order, returning the last result. Mirrors how
// interp.LoadString drives Machine.ReadTopLevel/Eval.
func evalStr(t *testing.T, m *eval.Machine, src string) *cell.Cell {
	t.Helper()
	p := m.Heap.NewPort(port.NewStringInput(src))
	var result *cell.Cell
	for {
		expr, err := m.ReadTopLevel(p)
		require.NoError(t, err)
		if expr == nil || expr.IsEOF() {
			break
		}
		result, err = m.Eval(expr, m.Global)
		require.NoError(t, err)
	}
	return result
}

// mustRead reads a single top-level form from src, for tests that need to
// inspect Eval's error return directly instead of via evalStr's require.NoError.
func mustRead(t *testing.T, m *eval.Machine, src string) *cell.Cell {
	t.Helper()
	p := m.Heap.NewPort(port.NewStringInput(src))
	expr, err := m.ReadTopLevel(p)
	require.NoError(t, err)
	return expr
}
