// This file is part of cellscheme.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prim

import (
	"math"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/pkg/errors"
)

func fval(c *cell.Cell) float64 {
	if c.IsFixnum() {
		return float64(c.Ival)
	}
	return c.Fval
}

func bothFixnum(args []*cell.Cell) bool {
	for _, a := range args {
		if !a.IsFixnum() {
			return false
		}
	}
	return true
}

func installArith(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "+", Min: 0, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if bothFixnum(args) {
			var sum int64
			for _, a := range args {
				sum += a.Ival
			}
			return m.Heap.NewFixnum(sum), nil
		}
		var sum float64
		for _, a := range args {
			sum += fval(a)
		}
		return m.Heap.NewReal(sum), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "*", Min: 0, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if bothFixnum(args) {
			var prod int64 = 1
			for _, a := range args {
				prod *= a.Ival
			}
			return m.Heap.NewFixnum(prod), nil
		}
		prod := 1.0
		for _, a := range args {
			prod *= fval(a)
		}
		return m.Heap.NewReal(prod), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "-", Min: 1, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if len(args) == 1 {
			if args[0].IsFixnum() {
				return m.Heap.NewFixnum(-args[0].Ival), nil
			}
			return m.Heap.NewReal(-fval(args[0])), nil
		}
		if bothFixnum(args) {
			acc := args[0].Ival
			for _, a := range args[1:] {
				acc -= a.Ival
			}
			return m.Heap.NewFixnum(acc), nil
		}
		acc := fval(args[0])
		for _, a := range args[1:] {
			acc -= fval(a)
		}
		return m.Heap.NewReal(acc), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "/", Min: 1, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if len(args) == 1 {
			return divide(m, m.Heap.NewFixnum(1), args[0])
		}
		acc := args[0]
		var err error
		for _, a := range args[1:] {
			acc, err = divide(m, acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}})

	cmp := func(name string, ok func(a, b float64) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 1, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			for i := 1; i < len(args); i++ {
				if !ok(fval(args[i-1]), fval(args[i])) {
					return cell.False, nil
				}
			}
			return cell.True, nil
		}})
	}
	cmp("=", func(a, b float64) bool { return a == b })
	cmp("<", func(a, b float64) bool { return a < b })
	cmp(">", func(a, b float64) bool { return a > b })
	cmp("<=", func(a, b float64) bool { return a <= b })
	cmp(">=", func(a, b float64) bool { return a >= b })

	eval.RegisterPrim(m, eval.Prim{Name: "quotient", Min: 2, Max: 2, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		a, b := args[0], args[1]
		if a.IsFixnum() && b.IsFixnum() {
			if b.Ival == 0 {
				return nil, errors.New("quotient: division by zero")
			}
			return m.Heap.NewFixnum(a.Ival / b.Ival), nil
		}
		if fval(b) == 0 {
			return nil, errors.New("quotient: division by zero")
		}
		return m.Heap.NewReal(math.Trunc(fval(a) / fval(b))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "remainder", Min: 2, Max: 2, Types: "i", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		a, b := args[0].Ival, args[1].Ival
		if b == 0 {
			return nil, errors.New("remainder: division by zero")
		}
		return m.Heap.NewFixnum(a % b), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "modulo", Min: 2, Max: 2, Types: "i", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		a, b := args[0].Ival, args[1].Ival
		if b == 0 {
			return nil, errors.New("modulo: division by zero")
		}
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return m.Heap.NewFixnum(r), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "abs", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		a := args[0]
		if a.IsFixnum() {
			v := a.Ival
			if v < 0 {
				v = -v
			}
			return m.Heap.NewFixnum(v), nil
		}
		return m.Heap.NewReal(math.Abs(fval(a))), nil
	}})

	minmax := func(name string, pick func(a, b float64) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 1, Max: -1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			best := args[0]
			inexact := !best.IsFixnum()
			for _, a := range args[1:] {
				if !a.IsFixnum() {
					inexact = true
				}
				if pick(fval(a), fval(best)) {
					best = a
				}
			}
			if inexact {
				return m.Heap.NewReal(fval(best)), nil
			}
			return m.Heap.NewFixnum(best.Ival), nil
		}})
	}
	minmax("min", func(a, b float64) bool { return a < b })
	minmax("max", func(a, b float64) bool { return a > b })

	eval.RegisterPrim(m, eval.Prim{Name: "expt", Min: 2, Max: 2, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		base, exp := args[0], args[1]
		if base.IsFixnum() && exp.IsFixnum() && exp.Ival >= 0 {
			var acc int64 = 1
			overflow := false
			for i := int64(0); i < exp.Ival; i++ {
				next := acc * base.Ival
				if base.Ival != 0 && next/base.Ival != acc {
					overflow = true
					break
				}
				acc = next
			}
			if !overflow {
				return m.Heap.NewFixnum(acc), nil
			}
		}
		return m.Heap.NewReal(math.Pow(fval(base), fval(exp))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "sqrt", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		v := fval(args[0])
		r := math.Sqrt(v)
		if args[0].IsFixnum() {
			ir := int64(math.Round(r))
			if ir*ir == args[0].Ival {
				return m.Heap.NewFixnum(ir), nil
			}
		}
		return m.Heap.NewReal(r), nil
	}})

	unary := func(name string, fn func(float64) float64) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			return m.Heap.NewReal(fn(fval(args[0]))), nil
		}})
	}
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("exp", math.Exp)
	unary("log", math.Log)
	unary("atan", math.Atan)

	eval.RegisterPrim(m, eval.Prim{Name: "floor", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsFixnum() {
			return args[0], nil
		}
		return m.Heap.NewReal(math.Floor(fval(args[0]))), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "ceiling", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsFixnum() {
			return args[0], nil
		}
		return m.Heap.NewReal(math.Ceil(fval(args[0]))), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "truncate", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsFixnum() {
			return args[0], nil
		}
		return m.Heap.NewReal(math.Trunc(fval(args[0]))), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "round", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsFixnum() {
			return args[0], nil
		}
		return m.Heap.NewReal(math.RoundToEven(fval(args[0]))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "zero?", Min: 1, Max: 1, Types: "n", Fn: pred(func(a *cell.Cell) bool { return fval(a) == 0 })})
	eval.RegisterPrim(m, eval.Prim{Name: "positive?", Min: 1, Max: 1, Types: "n", Fn: pred(func(a *cell.Cell) bool { return fval(a) > 0 })})
	eval.RegisterPrim(m, eval.Prim{Name: "negative?", Min: 1, Max: 1, Types: "n", Fn: pred(func(a *cell.Cell) bool { return fval(a) < 0 })})
	eval.RegisterPrim(m, eval.Prim{Name: "odd?", Min: 1, Max: 1, Types: "i", Fn: pred(func(a *cell.Cell) bool { return a.Ival%2 != 0 })})
	eval.RegisterPrim(m, eval.Prim{Name: "even?", Min: 1, Max: 1, Types: "i", Fn: pred(func(a *cell.Cell) bool { return a.Ival%2 == 0 })})
	eval.RegisterPrim(m, eval.Prim{Name: "number?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsNumber() })})
	eval.RegisterPrim(m, eval.Prim{Name: "integer?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool {
		return a.IsFixnum() || (a.IsReal() && a.Fval == math.Trunc(a.Fval))
	})})
	eval.RegisterPrim(m, eval.Prim{Name: "exact?", Min: 1, Max: 1, Types: "n", Fn: pred(func(a *cell.Cell) bool { return a.IsFixnum() })})
	eval.RegisterPrim(m, eval.Prim{Name: "inexact?", Min: 1, Max: 1, Types: "n", Fn: pred(func(a *cell.Cell) bool { return a.IsReal() })})

	eval.RegisterPrim(m, eval.Prim{Name: "exact->inexact", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewReal(fval(args[0])), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "inexact->exact", Min: 1, Max: 1, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(int64(fval(args[0]))), nil
	}})
}

// divide implements / between two numbers, promoting to real unless the
// division is exact and both operands are fixnums (spec.md §4.6).
func divide(m *eval.Machine, a, b *cell.Cell) (*cell.Cell, error) {
	if fval(b) == 0 {
		return nil, errors.New("/: division by zero")
	}
	if a.IsFixnum() && b.IsFixnum() && a.Ival%b.Ival == 0 {
		return m.Heap.NewFixnum(a.Ival / b.Ival), nil
	}
	return m.Heap.NewReal(fval(a) / fval(b)), nil
}

func pred(ok func(*cell.Cell) bool) func(*eval.Machine, []*cell.Cell) (*cell.Cell, error) {
	return func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Bool(ok(args[0])), nil
	}
}
