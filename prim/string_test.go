// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAppendAndSubstring(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `(string-append "foo" "bar")`)
	require.True(t, v.IsString())
	assert.Equal(t, "foobar", v.Str.String())

	v = evalStr(t, m, `(substring "hello world" 6 11)`)
	assert.Equal(t, "world", v.Str.String())
}

func TestSubstringSurvivesGC(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `(define s (substring "hello" 1 3)) s`)
	require.True(t, v.IsString())
	m.Heap.Collect()
	assert.Equal(t, "el", v.Str.String(), "substring must allocate via Heap.NewString so the GC tracks it")
}

func TestStringSetMutatesInPlace(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, `(define s (make-string 3 #\a)) (string-set! s 1 #\z) s`)
	assert.Equal(t, "aza", v.Str.String())
}

func TestStringToNumberAndBack(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, int64(42), evalStr(t, m, `(string->number "42")`).Ival)
	assert.Equal(t, "42", evalStr(t, m, `(number->string 42)`).Str.String())
	v := evalStr(t, m, `(string->number "not-a-number")`)
	assert.True(t, v.IsBoolean() && v.Ival == 0, "string->number must return #f on failure, not error")
}

func TestStringComparisons(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, int64(1), evalStr(t, m, `(if (string<? "a" "b") 1 0)`).Ival)
	assert.Equal(t, int64(1), evalStr(t, m, `(if (string=? "x" "x") 1 0)`).Ival)
}
