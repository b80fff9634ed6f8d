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
	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/pkg/errors"
)

func installList(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "cons", Min: 2, Max: 2, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.Cons(args[0], args[1]), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "car", Min: 1, Max: 1, Types: "p", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return args[0].Car, nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "cdr", Min: 1, Max: 1, Types: "p", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return args[0].Cdr, nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "set-car!", Min: 2, Max: 2, Types: "p*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsImmutable() {
			return nil, errors.New("set-car!: immutable pair")
		}
		args[0].Car = args[1]
		return args[0], nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "set-cdr!", Min: 2, Max: 2, Types: "p*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsImmutable() {
			return nil, errors.New("set-cdr!: immutable pair")
		}
		args[0].Cdr = args[1]
		return args[0], nil
	}})

	for _, name := range []string{"caar", "cadr", "cdar", "cddr", "caaar", "caadr", "cadar", "caddr", "cdaar", "cdadr", "cddar", "cdddr"} {
		path := name[1 : len(name)-1] // e.g. "ad" from "cadr"
		n := name
		eval.RegisterPrim(m, eval.Prim{Name: n, Min: 1, Max: 1, Types: "p", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			v := args[0]
			for i := len(path) - 1; i >= 0; i-- {
				if !v.IsPair() {
					return nil, errors.Errorf("%s: not a pair", n)
				}
				if path[i] == 'a' {
					v = v.Car
				} else {
					v = v.Cdr
				}
			}
			return v, nil
		}})
	}

	eval.RegisterPrim(m, eval.Prim{Name: "pair?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsPair() })})
	eval.RegisterPrim(m, eval.Prim{Name: "null?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsNil() })})
	eval.RegisterPrim(m, eval.Prim{Name: "list?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return cell.IsProperList(a) })})

	eval.RegisterPrim(m, eval.Prim{Name: "list", Min: 0, Max: -1, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.FromSlice(m.Heap, args), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "length", Min: 1, Max: 1, Types: "l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		n := cell.ListLength(args[0])
		if n < 0 {
			return nil, errors.New("length: not a proper list")
		}
		return m.Heap.NewFixnum(int64(n)), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "list-length", Min: 1, Max: 1, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(int64(cell.ListLength(args[0]))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "append", Min: 0, Max: -1, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if len(args) == 0 {
			return cell.Nil, nil
		}
		var elems []*cell.Cell
		for _, lst := range args[:len(args)-1] {
			elems = append(elems, cell.ToSlice(lst)...)
		}
		return cell.FromSliceDotted(m.Heap, elems, args[len(args)-1]), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "reverse", Min: 1, Max: 1, Types: "l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		elems := cell.ToSlice(args[0])
		out := cell.Nil
		for _, e := range elems {
			out = m.Heap.Cons(e, out)
		}
		return out, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "list-tail", Min: 2, Max: 2, Types: "li", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		v := args[0]
		for i := int64(0); i < args[1].Ival; i++ {
			if !v.IsPair() {
				return nil, errors.New("list-tail: list too short")
			}
			v = v.Cdr
		}
		return v, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "list-ref", Min: 2, Max: 2, Types: "li", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		v := args[0]
		for i := int64(0); i < args[1].Ival; i++ {
			if !v.IsPair() {
				return nil, errors.New("list-ref: index out of range")
			}
			v = v.Cdr
		}
		if !v.IsPair() {
			return nil, errors.New("list-ref: index out of range")
		}
		return v.Car, nil
	}})

	member := func(name string, eq func(a, b *cell.Cell) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 2, Max: 2, Types: "*l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			for v := args[1]; v.IsPair(); v = v.Cdr {
				if eq(args[0], v.Car) {
					return v, nil
				}
			}
			return cell.False, nil
		}})
	}
	member("memq", cell.Eq)
	member("memv", cell.Eqv)
	member("member", cell.Equal)

	assoc := func(name string, eq func(a, b *cell.Cell) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 2, Max: 2, Types: "*l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			for v := args[1]; v.IsPair(); v = v.Cdr {
				if v.Car.IsPair() && eq(args[0], v.Car.Car) {
					return v.Car, nil
				}
			}
			return cell.False, nil
		}})
	}
	assoc("assq", cell.Eq)
	assoc("assv", cell.Eqv)
	assoc("assoc", cell.Equal)

	eval.RegisterPrim(m, eval.Prim{Name: "eq?", Min: 2, Max: 2, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Bool(cell.Eq(args[0], args[1])), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "eqv?", Min: 2, Max: 2, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Bool(cell.Eqv(args[0], args[1])), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "equal?", Min: 2, Max: 2, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Bool(cell.Equal(args[0], args[1])), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "not", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a == cell.False })})

	// map/for-each/apply use Machine.Apply reentrantly, per spec.md §4.2's
	// sanctioned host-reentry chain, rather than a dedicated opcode.
	eval.RegisterPrim(m, eval.Prim{Name: "apply", Min: 1, Max: -1, Types: "q*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		proc := args[0]
		rest := args[1 : len(args)-1]
		final := cell.ToSlice(args[len(args)-1])
		allArgs := append(append([]*cell.Cell{}, rest...), final...)
		return m.Apply(proc, cell.FromSlice(m.Heap, allArgs))
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "map", Min: 2, Max: -1, Types: "ql", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		proc := args[0]
		lists := make([][]*cell.Cell, len(args)-1)
		n := -1
		for i, l := range args[1:] {
			lists[i] = cell.ToSlice(l)
			if n < 0 || len(lists[i]) < n {
				n = len(lists[i])
			}
		}
		out := make([]*cell.Cell, 0, n)
		for i := 0; i < n; i++ {
			callArgs := make([]*cell.Cell, len(lists))
			for j := range lists {
				callArgs[j] = lists[j][i]
			}
			v, err := m.Apply(proc, cell.FromSlice(m.Heap, callArgs))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return cell.FromSlice(m.Heap, out), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "for-each", Min: 2, Max: -1, Types: "ql", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		proc := args[0]
		lists := make([][]*cell.Cell, len(args)-1)
		n := -1
		for i, l := range args[1:] {
			lists[i] = cell.ToSlice(l)
			if n < 0 || len(lists[i]) < n {
				n = len(lists[i])
			}
		}
		for i := 0; i < n; i++ {
			callArgs := make([]*cell.Cell, len(lists))
			for j := range lists {
				callArgs[j] = lists[j][i]
			}
			if _, err := m.Apply(proc, cell.FromSlice(m.Heap, callArgs)); err != nil {
				return nil, err
			}
		}
		return cell.Nil, nil
	}})
}
