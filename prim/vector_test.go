// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorMakeRefSet(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `
		(define v (make-vector 3 0))
		(vector-set! v 1 42)
		(vector-ref v 1)`)
	assert.Equal(t, int64(42), v.Ival)
}

func TestVectorRefOutOfBoundsErrors(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.Eval(mustRead(t, m, "(vector-ref (vector 1 2 3) 5)"), m.Global)
	assert.Error(t, err)
}

func TestVectorMapElementwise(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `(vector->list (vector-map + (vector 1 2 3) (vector 10 20 30)))`)
	require.True(t, v.IsPair())
	assert.Equal(t, int64(11), v.Car.Ival)
	assert.Equal(t, int64(22), v.Cdr.Car.Ival)
	assert.Equal(t, int64(33), v.Cdr.Cdr.Car.Ival)
}

func TestBytevectorU8RefSet(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `
		(define b (make-bytevector 3 0))
		(bytevector-u8-set! b 0 255)
		(bytevector-u8-ref b 0)`)
	assert.Equal(t, int64(255), v.Ival)
}

func TestUTF8StringRoundTrip(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `(utf8->string (string->utf8 "héllo"))`)
	assert.Equal(t, "héllo", v.Str.String())
}
