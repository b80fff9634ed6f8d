// This file is part of cellscheme.

package prim

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/stretchr/testify/assert"
)

func TestCharIntegerRoundTrip(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, int64(97), evalStr(t, m, `(char->integer #\a)`).Ival)
	assert.Equal(t, int64(97), evalStr(t, m, `(char->integer (integer->char 97))`).Ival)
}

func TestIntegerToCharRejectsSurrogates(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.Eval(mustRead(t, m, "(integer->char 55296)"), m.Global)
	assert.Error(t, err, "0xD800 is a UTF-16 surrogate, not a scalar value")
}

func TestIntegerToCharAcceptsFullUnicodeRange(t *testing.T) {
	m := newTestMachine(t)
	v := evalStr(t, m, "(integer->char 128512)")
	assert.Equal(t, int64(128512), v.Ival, "U+1F600 is outside TinyScheme's narrow wchar_t but valid Unicode")
}

func TestCharCaseConversionAndPredicates(t *testing.T) {
	m := newTestMachine(t)
	m2 := evalStr(t, m, `(char->integer (char-upcase #\a))`)
	assert.Equal(t, int64('A'), m2.Ival)
	assert.Equal(t, cell.True, evalStr(t, m, `(char-alphabetic? #\x)`))
}
