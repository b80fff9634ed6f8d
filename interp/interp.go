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

// Package interp ties cell/env/read/eval/prim/print/port together into an
// embeddable Interpreter, the way package retro sits as thin glue over
// vm.Instance: everything here delegates to the lower packages, adding only
// host-facing convenience (value injection, foreign-function registration,
// source loading, configuration).
package interp

import (
	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/env"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/cellscheme/cellscheme/port"
	"github.com/cellscheme/cellscheme/prim"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Interpreter is one embeddable cellscheme instance.
type Interpreter struct {
	Heap    *cell.Heap
	Syms    *cell.SymbolTable
	Machine *eval.Machine
}

// New builds an Interpreter with the default heap sizing and step limit,
// both overridable by CELL_SEGSIZE/CELL_NSEGMENT/EVAL_LIMIT (config.go),
// mirroring TinyScheme's main() getenv block. It installs every built-in
// procedure, wires stdin/stdout as the default ports, and loads the
// embedded prelude followed by TINYSCHEMEINIT if set.
func New() (*Interpreter, error) {
	cfg := loadConfig()

	h := cell.NewHeap(cfg.SegSize, cfg.NumSegments)
	st := cell.NewSymbolTable()
	m := eval.New(h, st)
	m.StepLimit = cfg.EvalLimit

	prim.Install(m)

	m.CurrentInput = h.NewPort(port.WrapReader(stdinReader(), "(stdin)"))
	m.CurrentOutput = h.NewPort(port.WrapWriter(stdoutWriter(), "(stdout)"))

	in := &Interpreter{Heap: h, Syms: st, Machine: m}

	if err := in.LoadString(preludeSource); err != nil {
		return nil, errors.Wrap(err, "interp: loading built-in prelude")
	}
	if cfg.InitFile != "" {
		if err := in.LoadFile(cfg.InitFile); err != nil {
			glog.Warningf("interp: TINYSCHEMEINIT %q: %v", cfg.InitFile, err)
		}
	}
	return in, nil
}

// DefineValue binds name to value in the global environment, for host code
// to inject configuration or data before evaluating Scheme source (spec.md
// §6, SUPPLEMENTED FEATURES point 6's `*args*`).
func (in *Interpreter) DefineValue(name string, value *cell.Cell) {
	sym := in.Syms.Intern(in.Heap, name)
	env.Define(in.Heap, in.Machine.Global, sym, value)
}

// RegisterForeign binds name to a FOREIGN procedure backed by fn, the
// host-extension mechanism of spec.md §4.8 distinct from package prim's
// PROC table: fn validates its own arguments rather than going through
// eval.Prim's type-code contract.
func (in *Interpreter) RegisterForeign(name string, fn cell.ForeignFunc) {
	sym := in.Syms.Intern(in.Heap, name)
	proc := in.Heap.NewForeign(fn)
	env.Define(in.Heap, in.Machine.Global, sym, proc)
}

// Eval evaluates a single already-read expression in the global
// environment.
func (in *Interpreter) Eval(expr *cell.Cell) (*cell.Cell, error) {
	return in.Machine.Eval(expr, in.Machine.Global)
}

// Apply applies proc to args (a proper list), reentrantly.
func (in *Interpreter) Apply(proc, args *cell.Cell) (*cell.Cell, error) {
	return in.Machine.Apply(proc, args)
}

// LoadString reads and evaluates every top-level form in src in order,
// stopping at the first error.
func (in *Interpreter) LoadString(src string) error {
	_, err := in.EvalString(src)
	return err
}

// EvalString is LoadString's value-returning counterpart: a host embedding
// cellscheme to evaluate a snippet (a config expression, a REPL line)
// usually wants the last result, not just success/failure.
func (in *Interpreter) EvalString(src string) (*cell.Cell, error) {
	return in.loadPort(port.NewStringInput(src))
}

// LoadFile reads and evaluates every top-level form in the named file.
func (in *Interpreter) LoadFile(path string) error {
	p, err := port.NewFileInput(path)
	if err != nil {
		return err
	}
	defer p.Close()
	_, err = in.loadPort(p)
	return err
}

func (in *Interpreter) loadPort(p *port.Port) (*cell.Cell, error) {
	src := in.Heap.NewPort(p)
	var result *cell.Cell
	for {
		expr, err := in.Machine.ReadTopLevel(src)
		if err != nil {
			return nil, err
		}
		if expr == nil || expr.IsEOF() {
			return result, nil
		}
		result, err = in.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
}

// Close releases any host resources the Interpreter holds (currently just
// flushing the default output port; kept as a distinct method since an
// embedder may accumulate open file ports via open-input-file that also
// need closing at shutdown).
func (in *Interpreter) Close() error {
	if p, ok := in.Machine.CurrentOutput.Ext.(*port.Port); ok {
		return p.Flush()
	}
	return nil
}
