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

import (
	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/env"
)

// opLet implements let, including named let, as the enter/collect/bind
// opcode triple of TinyScheme's OP_LET0/OP_LET1/OP_LET2.
func (m *Machine) opLet(op Op) bool {
	switch op {
	case OpLet0:
		m.args = cell.Nil
		m.value = m.code
		if m.code.Car.IsSymbol() {
			m.code = m.code.Cdr.Car
		} else {
			m.code = m.code.Car
		}
		return m.goto_(OpLet1)
	case OpLet1:
		m.args = m.Heap.Cons(m.value, m.args)
		if m.code.IsPair() {
			m.save(OpLet1, m.args, m.code.Cdr)
			m.code = m.code.Car.Cdr.Car
			m.args = cell.Nil
			return m.goto_(OpEval)
		}
		m.args = cell.Reverse(m.args)
		m.code = m.args.Car
		m.args = m.args.Cdr
		return m.goto_(OpLet2)
	default: // OpLet2
		frame := env.NewChild(m.Heap, m.envir)
		names := m.code.Car
		if names.IsSymbol() {
			names = m.code.Cdr.Car
		}
		for x, y := names, m.args; !y.IsNil(); x, y = x.Cdr, y.Cdr {
			env.Define(m.Heap, frame, x.Car.Car, y.Car)
		}
		m.envir = frame
		if m.code.Car.IsSymbol() {
			formals := cell.Nil
			for b := m.code.Cdr.Car; !b.IsNil(); b = b.Cdr {
				formals = m.Heap.Cons(b.Car.Car, formals)
			}
			formals = cell.Reverse(formals)
			closure := m.Heap.NewClosureLike(cell.TagClosure, m.Heap.Cons(formals, m.code.Cdr.Cdr), m.envir)
			env.Define(m.Heap, m.envir, m.code.Car, closure)
			m.code = m.code.Cdr.Cdr
		} else {
			m.code = m.code.Cdr
		}
		m.args = cell.Nil
		return m.goto_(OpBegin)
	}
}

func (m *Machine) opLetStar(op Op) bool {
	switch op {
	case OpLet0Ast:
		if m.code.Car.IsNil() {
			m.envir = env.NewChild(m.Heap, m.envir)
			m.code = m.code.Cdr
			return m.goto_(OpBegin)
		}
		m.save(OpLet1Ast, m.code.Cdr, m.code.Car)
		m.code = m.code.Car.Car.Cdr.Car
		return m.goto_(OpEval)
	case OpLet1Ast:
		m.envir = env.NewChild(m.Heap, m.envir)
		return m.goto_(OpLet2Ast)
	default: // OpLet2Ast
		env.Define(m.Heap, m.envir, m.code.Car.Car, m.value)
		m.code = m.code.Cdr
		if m.code.IsPair() {
			m.save(OpLet2Ast, m.args, m.code)
			m.code = m.code.Car.Cdr.Car
			m.args = cell.Nil
			return m.goto_(OpEval)
		}
		m.code = m.args
		m.args = cell.Nil
		return m.goto_(OpBegin)
	}
}

func (m *Machine) opLetRec(op Op) bool {
	switch op {
	case OpLet0Rec:
		m.envir = env.NewChild(m.Heap, m.envir)
		m.args = cell.Nil
		m.value = m.code
		m.code = m.code.Car
		return m.goto_(OpLet1Rec)
	case OpLet1Rec:
		m.args = m.Heap.Cons(m.value, m.args)
		if m.code.IsPair() {
			m.save(OpLet1Rec, m.args, m.code.Cdr)
			m.code = m.code.Car.Cdr.Car
			m.args = cell.Nil
			return m.goto_(OpEval)
		}
		m.args = cell.Reverse(m.args)
		m.code = m.args.Car
		m.args = m.args.Cdr
		return m.goto_(OpLet2Rec)
	default: // OpLet2Rec
		for x, y := m.code.Car, m.args; !y.IsNil(); x, y = x.Cdr, y.Cdr {
			env.Define(m.Heap, m.envir, x.Car.Car, y.Car)
		}
		m.code = m.code.Cdr
		m.args = cell.Nil
		return m.goto_(OpBegin)
	}
}

// opCond implements cond, including the => arrow form (spec.md §4.5:
// "re-evaluates the value via a quoted splice" — here, by applying the
// recipient procedure to the already-evaluated test value reentrantly).
// else is not special-cased here: Machine.New binds the symbol else to
// #t in the global frame, so (cond (else ...)) evaluates its test like
// any other clause and finds it unconditionally true.
func (m *Machine) opCond(op Op) bool {
	if op == OpCond0 {
		if !m.code.IsPair() {
			panic(&SchemeError{Message: "cond: no clauses"})
		}
		m.save(OpCond1, cell.Nil, m.code)
		m.code = m.code.Car.Car
		return m.goto_(OpEval)
	}
	// OpCond1
	if cell.IsTruthy(m.value) {
		rest := m.code.Car.Cdr
		if rest.IsNil() {
			return m.ret(m.value)
		}
		if rest.Car.IsSymbol() && cell.SymbolName(rest.Car) == "=>" {
			recipient, err := m.Eval(rest.Cdr.Car, m.envir)
			if err != nil {
				panic(&SchemeError{Message: err.Error()})
			}
			return m.ret(m.mustApply(recipient, m.Heap.Cons(m.value, cell.Nil)))
		}
		m.code = rest
		return m.goto_(OpBegin)
	}
	m.code = m.code.Cdr
	if m.code.IsNil() {
		return m.ret(cell.Nil)
	}
	m.save(OpCond1, cell.Nil, m.code)
	m.code = m.code.Car.Car
	return m.goto_(OpEval)
}

func (m *Machine) mustApply(proc, args *Cell) *Cell {
	v, err := m.Apply(proc, args)
	if err != nil {
		panic(&SchemeError{Message: err.Error()})
	}
	return v
}

func (m *Machine) opCase(op Op) bool {
	if op == OpCase0 {
		m.save(OpCase1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)
	}
	for clauses := m.code; !clauses.IsNil(); clauses = clauses.Cdr {
		datums := clauses.Car.Car
		if !datums.IsPair() { // else clause
			m.code = clauses.Car.Cdr
			return m.goto_(OpBegin)
		}
		for d := datums; !d.IsNil(); d = d.Cdr {
			if cell.Eqv(d.Car, m.value) {
				m.code = clauses.Car.Cdr
				return m.goto_(OpBegin)
			}
		}
	}
	return m.ret(cell.Nil)
}
