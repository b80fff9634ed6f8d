// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCxxrAccessors(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, int64(2), evalStr(t, m, "(cadr '(1 2 3))").Ival)
	assert.Equal(t, int64(3), evalStr(t, m, "(caddr '(1 2 3))").Ival)
}

func TestMapUsesHostReentry(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(map (lambda (x) (* x x)) '(1 2 3 4))")
	require.True(t, v.IsPair())
	assert.Equal(t, int64(1), v.Car.Ival)
	assert.Equal(t, int64(4), v.Cdr.Car.Ival)
	assert.Equal(t, int64(9), v.Cdr.Cdr.Car.Ival)
	assert.Equal(t, int64(16), v.Cdr.Cdr.Cdr.Car.Ival)
}

func TestMapMultipleLists(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(map + '(1 2 3) '(10 20 30))")
	assert.Equal(t, int64(11), v.Car.Ival)
	assert.Equal(t, int64(22), v.Cdr.Car.Ival)
	assert.Equal(t, int64(33), v.Cdr.Cdr.Car.Ival)
}

func TestForEachSideEffectOrder(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `
		(define acc '())
		(for-each (lambda (x) (set! acc (cons x acc))) '(1 2 3))
		acc`)
	assert.Equal(t, int64(3), v.Car.Ival)
	assert.Equal(t, int64(2), v.Cdr.Car.Ival)
	assert.Equal(t, int64(1), v.Cdr.Cdr.Car.Ival)
}

func TestAssocAndMember(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(assoc 2 '((1 . a) (2 . b) (3 . c)))")
	require.True(t, v.IsPair())
	assert.Equal(t, int64(2), v.Car.Ival)

	v = evalStr(t, m, "(member 3 '(1 2 3 4))")
	require.True(t, v.IsPair())
	assert.Equal(t, int64(3), v.Car.Ival)
	assert.Equal(t, int64(4), v.Cdr.Car.Ival)
}

func TestApplyReentersMachine(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(apply + 1 2 '(3 4))")
	assert.Equal(t, int64(10), v.Ival)
}
