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

// dispatch runs one opcode. It returns true if it tail-jumped to another
// opcode (the loop in run should keep going without popping the dump
// stack) and false if it returned a value via m.restore (handled by the
// caller). Most cases end by returning the result of goto/ret helpers.
func (m *Machine) dispatch(op Op) bool {
	switch op {
	case OpEval:
		return m.opEval()
	case OpE0Args:
		return m.opE0Args()
	case OpE1Args:
		return m.opE1Args()
	case OpApply:
		return m.opApply()
	case OpDomacro:
		m.code = m.value
		return m.goto_(OpEval)

	case OpLambda:
		return m.ret(m.Heap.NewClosureLike(cell.TagClosure, m.code, m.envir))
	case OpQuote:
		return m.ret(m.code.Car)
	case OpDef0:
		return m.opDef0()
	case OpDef1:
		return m.opDef1()
	case OpSet0:
		m.save(OpSet1, cell.Nil, m.code.Car)
		m.code = m.code.Cdr.Car
		return m.goto_(OpEval)
	case OpSet1:
		if err := env.Set(m.envir, m.code, m.value); err != nil {
			panic(&SchemeError{Message: err.Error(), Culprits: []*Cell{m.code}})
		}
		return m.ret(m.value)
	case OpBegin:
		return m.opBegin()
	case OpIf0:
		m.save(OpIf1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)
	case OpIf1:
		if cell.IsTruthy(m.value) {
			m.code = m.code.Car
		} else if m.code.Cdr.IsPair() {
			m.code = m.code.Cdr.Car
		} else {
			m.code = cell.Nil
		}
		return m.goto_(OpEval)

	case OpAnd0:
		if m.code.IsNil() {
			return m.ret(cell.True)
		}
		m.save(OpAnd1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)
	case OpAnd1:
		if !cell.IsTruthy(m.value) || m.code.IsNil() {
			return m.ret(m.value)
		}
		m.save(OpAnd1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)
	case OpOr0:
		if m.code.IsNil() {
			return m.ret(cell.False)
		}
		m.save(OpOr1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)
	case OpOr1:
		if cell.IsTruthy(m.value) || m.code.IsNil() {
			return m.ret(m.value)
		}
		m.save(OpOr1, cell.Nil, m.code.Cdr)
		m.code = m.code.Car
		return m.goto_(OpEval)

	case OpLet0, OpLet1, OpLet2:
		return m.opLet(op)
	case OpLet0Ast, OpLet1Ast, OpLet2Ast:
		return m.opLetStar(op)
	case OpLet0Rec, OpLet1Rec, OpLet2Rec:
		return m.opLetRec(op)
	case OpCond0, OpCond1:
		return m.opCond(op)
	case OpCase0, OpCase1:
		return m.opCase(op)
	case OpQuasiquote:
		return m.opQuasiquote()
	case OpDelay:
		p := m.Heap.NewClosureLike(cell.TagPromise, m.Heap.Cons(cell.Nil, m.code), m.envir)
		return m.ret(p)
	case OpMacro0:
		return m.opMacro0()
	case OpMacro1:
		m.value.Flags |= cell.FlagSyntax
		m.value.Tag = cell.TagMacro
		env.Define(m.Heap, m.envir, m.code, m.value)
		return m.ret(m.code)

	case OpRdSexpr, OpRdList, OpRdDot, OpRdQuote, OpRdQQuote, OpRdQQuoteVec, OpRdUnquote, OpRdUqtSp, OpRdVec:
		return m.dispatchReader(op)

	default:
		panic(&SchemeError{Message: "eval: illegal opcode"})
	}
}

// goto_ tail-jumps to the next opcode without pushing a continuation
// (spec.md §4.5's s_goto; Go already optimizes this as a plain loop
// iteration in run, so no host stack grows).
func (m *Machine) goto_(op Op) bool {
	m.op = op
	return true
}

// ret sets value and reports that the step is finished; run() then pops
// the dump stack and installs the saved continuation (spec.md §4.5's
// s_return).
func (m *Machine) ret(v *Cell) bool {
	m.value = v
	return false
}

func (m *Machine) opEval() bool {
	switch {
	case m.code.IsSymbol():
		v, ok := env.Lookup(m.envir, m.code)
		if !ok {
			panic(&SchemeError{Message: "eval: unbound variable: " + cell.SymbolName(m.code), Culprits: []*Cell{m.code}})
		}
		return m.ret(v)
	case m.code.IsPair():
		head := m.code.Car
		if head.IsSymbol() && head.Flags&cell.FlagSyntax != 0 {
			if sop, ok := m.syntaxOp[head]; ok {
				m.code = m.code.Cdr
				return m.goto_(sop)
			}
		}
		m.save(OpE0Args, cell.Nil, m.code)
		m.code = head
		return m.goto_(OpEval)
	default:
		return m.ret(m.code)
	}
}

func (m *Machine) opE0Args() bool {
	if m.value.IsMacro() {
		m.save(OpDomacro, cell.Nil, cell.Nil)
		m.args = m.Heap.Cons(m.code, cell.Nil)
		m.code = m.value
		return m.goto_(OpApply)
	}
	m.code = m.code.Cdr
	return m.goto_(OpE1Args)
}

func (m *Machine) opE1Args() bool {
	m.args = m.Heap.Cons(m.value, m.args)
	if m.code.IsPair() {
		m.save(OpE1Args, m.args, m.code.Cdr)
		m.code = m.code.Car
		m.args = cell.Nil
		return m.goto_(OpEval)
	}
	m.args = cell.Reverse(m.args)
	m.code = m.args.Car
	m.args = m.args.Cdr
	return m.goto_(OpApply)
}

func (m *Machine) opApply() bool {
	switch {
	case m.code.IsProc():
		info := m.primInfo(m.code)
		argv := cell.ToSlice(m.args)
		if err := m.checkArgs(info, argv); err != nil {
			panic(&SchemeError{Message: err.Error()})
		}
		v, err := info.Fn(m, argv)
		if err != nil {
			panic(&SchemeError{Message: err.Error()})
		}
		return m.ret(v)
	case m.code.IsForeign():
		v, err := m.code.Fn(m.args)
		if err != nil {
			panic(&SchemeError{Message: err.Error()})
		}
		return m.ret(v)
	case m.code.IsClosure() || m.code.IsMacro() || m.code.IsPromise():
		formals := m.code.Car.Car
		frame, err := env.Bind(m.Heap, m.code.Cdr, formals, m.args)
		if err != nil {
			panic(&SchemeError{Message: err.Error()})
		}
		m.envir = frame
		m.code = m.code.Car.Cdr
		m.args = cell.Nil
		return m.goto_(OpBegin)
	case m.code.IsContinuation():
		snapshot := m.code.Ext.(dumpRoots)
		m.dump = append([]Frame(nil), snapshot...)
		if m.args.IsPair() {
			return m.ret(m.args.Car)
		}
		return m.ret(cell.Nil)
	default:
		panic(&SchemeError{Message: "eval: illegal (non-callable) operator", Culprits: []*Cell{m.code}})
	}
}

func (m *Machine) opBegin() bool {
	if !m.code.IsPair() {
		return m.ret(m.code)
	}
	if m.code.Cdr.IsPair() {
		m.save(OpBegin, cell.Nil, m.code.Cdr)
	}
	m.code = m.code.Car
	return m.goto_(OpEval)
}

func (m *Machine) opDef0() bool {
	target := m.code.Car
	var name *Cell
	if target.IsPair() {
		name = target.Car
		lambdaSym := m.Syms.Intern(m.Heap, "lambda")
		m.code = m.Heap.Cons(lambdaSym, m.Heap.Cons(target.Cdr, m.code.Cdr))
	} else {
		name = target
		m.code = m.code.Cdr.Car
	}
	if !name.IsSymbol() {
		panic(&SchemeError{Message: "define: variable is not a symbol"})
	}
	m.save(OpDef1, cell.Nil, name)
	return m.goto_(OpEval)
}

func (m *Machine) opDef1() bool {
	env.Define(m.Heap, m.envir, m.code, m.value)
	return m.ret(m.code)
}

func (m *Machine) opMacro0() bool {
	target := m.code.Car
	var name *Cell
	if target.IsPair() {
		name = target.Car
		lambdaSym := m.Syms.Intern(m.Heap, "lambda")
		m.code = m.Heap.Cons(lambdaSym, m.Heap.Cons(target.Cdr, m.code.Cdr))
	} else {
		name = target
		m.code = m.code.Cdr.Car
	}
	if !name.IsSymbol() {
		panic(&SchemeError{Message: "macro: variable is not a symbol"})
	}
	name.Flags |= cell.FlagSyntax
	m.save(OpMacro1, cell.Nil, name)
	return m.goto_(OpEval)
}
