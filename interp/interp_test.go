// This file is part of cellscheme.

package interp

import (
	"testing"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsPreludeMacros(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	v, err := in.EvalString("(when #t 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Ival)

	v, err = in.EvalString("(unless #f 42)")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Ival)
}

func TestDefineValueAndEval(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	in.DefineValue("x", in.Heap.NewFixnum(7))
	v, err := in.EvalString("(* x x)")
	require.NoError(t, err)
	assert.Equal(t, int64(49), v.Ival)
}

func TestRegisterForeignCallableFromScheme(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	in.RegisterForeign("double", func(args *cell.Cell) (*cell.Cell, error) {
		return in.Heap.NewFixnum(2 * args.Car.Ival), nil
	})
	v, err := in.EvalString("(double 21)")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Ival)
}

func TestLoadExtensionIsHonestNoOp(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	err = in.LoadExtension("whatever.so")
	assert.Error(t, err)
}

func TestErrorHookInterceptsErrors(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	_, err = in.EvalString(`
		(define caught #f)
		(define *error-hook* (lambda (msg . culprits) (set! caught msg) 'handled))
		(car '())`)
	require.NoError(t, err, "a bound *error-hook* must absorb the error instead of propagating it")

	v, err := in.EvalString("caught")
	require.NoError(t, err)
	assert.True(t, v.IsString())
}
