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

package eval

import "github.com/cellscheme/cellscheme/cell"

// TinyScheme implements quasiquote as a Scheme-level macro loaded from
// init.scm; the retrieved original_source/ carries only scheme.c, so
// cellscheme implements the template walk natively in Go instead, using
// Machine.Eval as the reentrant evaluator for each unquoted subform
// (spec.md §4.2's host-reentry chain).
func (m *Machine) opQuasiquote() bool {
	result, err := m.expandQQ(m.code.Car, 1)
	if err != nil {
		panic(&SchemeError{Message: err.Error()})
	}
	return m.ret(result)
}

func isTagged(c *Cell, name string) bool {
	return c.IsPair() && c.Car.IsSymbol() && cell.SymbolName(c.Car) == name
}

func (m *Machine) expandQQ(expr *Cell, depth int) (*Cell, error) {
	switch {
	case expr.IsVector():
		return m.expandQQVector(expr, depth)
	case !expr.IsPair():
		return expr, nil
	case isTagged(expr, "unquote"):
		if depth == 1 {
			return m.Eval(expr.Cdr.Car, m.envir)
		}
		inner, err := m.expandQQ(expr.Cdr.Car, depth-1)
		if err != nil {
			return nil, err
		}
		return m.quoteWrap("unquote", inner), nil
	case isTagged(expr, "quasiquote"):
		inner, err := m.expandQQ(expr.Cdr.Car, depth+1)
		if err != nil {
			return nil, err
		}
		return m.quoteWrap("quasiquote", inner), nil
	case isTagged(expr.Car, "unquote-splicing"):
		rest, err := m.expandQQ(expr.Cdr, depth)
		if err != nil {
			return nil, err
		}
		if depth != 1 {
			head, err := m.expandQQ(expr.Car, depth)
			if err != nil {
				return nil, err
			}
			return m.Heap.Cons(head, rest), nil
		}
		spliced, err := m.Eval(expr.Car.Cdr.Car, m.envir)
		if err != nil {
			return nil, err
		}
		elems := cell.ToSlice(spliced)
		for i := len(elems) - 1; i >= 0; i-- {
			rest = m.Heap.Cons(elems[i], rest)
		}
		return rest, nil
	default:
		head, err := m.expandQQ(expr.Car, depth)
		if err != nil {
			return nil, err
		}
		tail, err := m.expandQQ(expr.Cdr, depth)
		if err != nil {
			return nil, err
		}
		return m.Heap.Cons(head, tail), nil
	}
}

func (m *Machine) expandQQVector(vec *Cell, depth int) (*Cell, error) {
	asList := cell.FromSlice(m.Heap, vec.Vec.Elems())
	expanded, err := m.expandQQ(asList, depth)
	if err != nil {
		return nil, err
	}
	elems := cell.ToSlice(expanded)
	out := m.Heap.AllocVector(len(elems), cell.Nil)
	for i, e := range elems {
		out.Vec.Set(i, e)
	}
	return out, nil
}
