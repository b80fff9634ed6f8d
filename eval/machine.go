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
	"github.com/cellscheme/cellscheme/read"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Cell is a convenience alias so this package's opcode handlers read
// naturally (spec.md's registers are all cells) without a cell. prefix on
// every line.
type Cell = cell.Cell

// reentry is a saved register snapshot for Machine.Eval/Apply's nested
// invocations (spec.md §4.2's "host-reentry chain").
type reentry struct {
	op    Op
	args  *Cell
	envir *Cell
	code  *Cell
	value *Cell
	dump  []Frame
}

// GCRoots implements cell.RootCarrier so a captured continuation's saved
// dump stack is traced by the garbage collector.
type dumpRoots []Frame

func (d dumpRoots) GCRoots() []*Cell {
	var roots []*Cell
	for _, f := range d {
		roots = append(roots, f.Args, f.Envir, f.Code)
	}
	return roots
}

// Machine is the evaluator: the register set, the dump stack of pending
// continuations, and everything needed to dispatch an opcode. One Machine
// corresponds to one Scheme top-level (spec.md §6 "Interpreter" instance).
type Machine struct {
	Heap   *cell.Heap
	Syms   *cell.SymbolTable
	Global *Cell

	op    Op
	args  *Cell
	envir *Cell
	code  *Cell
	value *Cell
	dump  []Frame

	reentryStack []reentry

	syntaxOp map[*Cell]Op
	prims    []Prim

	// ErrorHook, when bound, is applied to (message . culprits) instead of
	// printing the error directly (spec.md §7, SPEC_FULL.md §4).
	ErrorHook   *Cell
	inErrorHook bool

	StepLimit int64
	steps     int64

	// CurrentInput/CurrentOutput back (current-input-port)/(current-output-port);
	// the port objects themselves live behind PortHandle cells allocated by
	// package interp.
	CurrentInput  *Cell
	CurrentOutput *Cell

	readSrc *Cell      // port cell the reader opcodes are currently consuming
	tok     read.Token // lookahead register shared by the reader opcodes, TinyScheme's sc->tok
}

// SchemeError is a raised Scheme-level error: a message plus the Scheme
// values blamed for it (spec.md §7's "culprits").
type SchemeError struct {
	Message  string
	Culprits []*Cell
}

func (e *SchemeError) Error() string { return e.Message }

// New builds a fresh Machine with an empty global environment. Special
// form keywords are interned and flagged syntax, per spec.md §4.4's "the
// global frame's bindings for special-form keywords are flagged SYNTAX".
func New(h *cell.Heap, st *cell.SymbolTable) *Machine {
	m := &Machine{
		Heap:      h,
		Syms:      st,
		Global:    env.NewGlobal(h),
		value:     cell.Nil,
		StepLimit: 0,
	}
	h.SetRoots(m)
	m.syntaxOp = make(map[*Cell]Op, len(specialForms))
	for name, op := range specialForms {
		sym := st.Intern(h, name)
		sym.Flags |= cell.FlagSyntax
		m.syntaxOp[sym] = op
	}
	env.Define(h, m.Global, st.Intern(h, "else"), cell.True)
	registerCallCC(m)
	registerForce(m)
	return m
}

var specialForms = map[string]Op{
	"quote":      OpQuote,
	"lambda":     OpLambda,
	"define":     OpDef0,
	"set!":       OpSet0,
	"begin":      OpBegin,
	"if":         OpIf0,
	"let":        OpLet0,
	"let*":       OpLet0Ast,
	"letrec":     OpLet0Rec,
	"cond":       OpCond0,
	"delay":      OpDelay,
	"and":        OpAnd0,
	"or":         OpOr0,
	"macro":      OpMacro0,
	"case":       OpCase0,
	"quasiquote": OpQuasiquote,
}

// Roots implements cell.RootProvider: the GC root set named in spec.md
// §4.2. Heap.SetRoots only holds one RootProvider, so the oblist's
// contribution (SymbolTable.Roots, spec.md §3/§4.2's "the oblist is
// normative") is folded in here rather than registered separately —
// without it, a keyword symbol unreferenced by any live AST would be
// swept and its cell reused out from under SymbolTable.Intern.
func (m *Machine) Roots() []*cell.Cell {
	roots := []*cell.Cell{m.Global, m.args, m.envir, m.code, m.value, m.ErrorHook, m.CurrentInput, m.CurrentOutput, m.readSrc}
	roots = append(roots, m.Syms.Roots()...)
	for _, f := range m.dump {
		roots = append(roots, f.Args, f.Envir, f.Code)
	}
	for _, r := range m.reentryStack {
		roots = append(roots, r.args, r.envir, r.code, r.value)
		for _, f := range r.dump {
			roots = append(roots, f.Args, f.Envir, f.Code)
		}
	}
	return roots
}

func (m *Machine) save(op Op, args, code *Cell) {
	m.dump = append(m.dump, Frame{Op: op, Args: args, Envir: m.envir, Code: code})
}

func (m *Machine) restore(v *Cell) bool {
	m.value = v
	n := len(m.dump)
	if n == 0 {
		return false
	}
	f := m.dump[n-1]
	m.dump = m.dump[:n-1]
	m.op, m.args, m.envir, m.code = f.Op, f.Args, f.Envir, f.Code
	return true
}

// callErrorHook looks up *error-hook* in the global environment fresh on
// every error (spec.md §4.5/§7: "if a *error-hook* variable is bound,
// errors invoke it with the message string and optional culprit"). A
// second error raised while running the hook itself is not intercepted
// again, matching TinyScheme's single ERROR_HOOK lookup per error.
func (m *Machine) callErrorHook(e *SchemeError) (*Cell, error) {
	if m.inErrorHook {
		return nil, errors.New("eval: error raised inside *error-hook*")
	}
	sym := m.Syms.Intern(m.Heap, "*error-hook*")
	hook, ok := env.Lookup(m.Global, sym)
	if !ok || hook.IsNil() || !hook.Callable() {
		return nil, errors.New("eval: no *error-hook* bound")
	}
	m.ErrorHook = hook
	msg := m.Heap.NewImmutableString(e.Message)
	culprits := cell.Nil
	for i := len(e.Culprits) - 1; i >= 0; i-- {
		culprits = m.Heap.Cons(e.Culprits[i], culprits)
	}
	m.inErrorHook = true
	defer func() { m.inErrorHook = false }()
	return m.Apply(hook, m.Heap.Cons(msg, culprits))
}

func (m *Machine) raise(format string, culprits []*Cell, args ...interface{}) {
	panic(&SchemeError{Message: errors.Errorf(format, args...).Error(), Culprits: culprits})
}

// run drains the dump stack starting from the current registers, stopping
// when a frame pops with OpHalt (the sentinel Eval/Apply push before
// dispatching) or the dump stack runs dry. It is the single place native
// Go control flow touches the evaluator loop; everything else is opcode
// dispatch, per spec.md §4.5 "the evaluator never recurses natively".
func (m *Machine) run() (result *Cell, err error) {
	defer func() {
		if r := recover(); r != nil {
			var se *SchemeError
			switch e := r.(type) {
			case *SchemeError:
				se = e
			case error:
				se = &SchemeError{Message: errors.Wrapf(e, "eval: recovered error (op=%d)", m.op).Error()}
			default:
				panic(r)
			}
			if hooked, hookErr := m.callErrorHook(se); hookErr == nil {
				result, err = hooked, nil
				return
			}
			err = se
		}
	}()
	for {
		if m.op == OpHalt {
			return m.value, nil
		}
		if m.StepLimit > 0 {
			m.steps++
			if m.steps > m.StepLimit {
				return nil, errors.New("eval: step limit exceeded")
			}
		}
		if m.Heap.OutOfMemory() {
			return nil, errors.New("eval: out of memory")
		}
		cont := m.dispatch(m.op)
		if !cont {
			if !m.restore(m.value) {
				return m.value, nil
			}
		}
		// Every allocation this step is now either installed into a
		// register (traced by Roots) or garbage; drop the anchor so
		// only the *next* step's unrooted allocations get pinned
		// (spec.md §4.1/§4.5 step 2). Without this the anchor chain
		// never shrinks and collect never reclaims anything.
		m.Heap.ClearAnchor()
	}
}

// Eval evaluates code in env from a clean register set, saving the
// caller's registers on the host-reentry stack first. Used for the top
// level, and reentrantly by foreign-function calls back into Scheme and
// quasiquote's unquote evaluation.
func (m *Machine) Eval(code, environment *Cell) (*Cell, error) {
	m.reentryStack = append(m.reentryStack, reentry{m.op, m.args, m.envir, m.code, m.value, m.dump})
	defer m.popReentry()

	m.dump = nil
	m.op = OpEval
	m.args = cell.Nil
	m.envir = environment
	m.code = code
	m.value = cell.Nil
	m.save(OpHalt, cell.Nil, cell.Nil)
	return m.run()
}

// Apply applies proc to args (a proper list), reentrantly.
func (m *Machine) Apply(proc, args *Cell) (*Cell, error) {
	m.reentryStack = append(m.reentryStack, reentry{m.op, m.args, m.envir, m.code, m.value, m.dump})
	defer m.popReentry()

	m.dump = nil
	m.op = OpApply
	m.args = args
	m.code = proc
	m.value = cell.Nil
	m.save(OpHalt, cell.Nil, cell.Nil)
	return m.run()
}

func (m *Machine) popReentry() {
	n := len(m.reentryStack)
	r := m.reentryStack[n-1]
	m.reentryStack = m.reentryStack[:n-1]
	m.op, m.args, m.envir, m.code, m.value, m.dump = r.op, r.args, r.envir, r.code, r.value, r.dump
}

// ReadTopLevel reads one S-expression from src using the reader opcodes,
// sharing this Machine's dump stack and therefore GC-interruptible
// between tokens (spec.md §4.3). At end of input it returns cell.EOF with
// a nil error.
func (m *Machine) ReadTopLevel(src *cell.Cell) (*Cell, error) {
	glog.V(2).Infof("read: starting RDSEXPR on port %v", src)
	m.reentryStack = append(m.reentryStack, reentry{m.op, m.args, m.envir, m.code, m.value, m.dump})
	savedSrc := m.readSrc
	defer func() { m.readSrc = savedSrc }()
	defer m.popReentry()

	m.readSrc = src
	m.dump = nil
	m.nextTok(portOf(src))
	m.op = OpRdSexpr
	m.args = cell.Nil
	m.value = cell.Nil
	m.save(OpHalt, cell.Nil, cell.Nil)
	return m.run()
}
