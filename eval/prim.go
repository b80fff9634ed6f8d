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
	"github.com/cellscheme/cellscheme/env"
	"github.com/pkg/errors"
)

// Prim is a built-in procedure's opcode info record: name, arity, and a
// per-argument type-code contract, validated centrally before Fn runs
// (spec.md §4.5 point 1, §9 "Argument contracts"). Unlike FOREIGN
// procedures (registered by package interp for host extensions, which
// check their own arguments), every PROC goes through this table.
type Prim struct {
	Name string
	Min  int
	Max  int // -1 means unbounded
	// Types is a string of one-letter type codes, one per declared
	// parameter; the last code applies to every trailing argument beyond
	// len(Types). '*' accepts anything.
	Types string
	Fn    func(m *Machine, args []*Cell) (*Cell, error)
}

const typeCodeAny = '*'

func typeCodeOK(code byte, v *Cell) bool {
	switch code {
	case typeCodeAny:
		return true
	case 'n':
		return v.IsNumber()
	case 'i':
		return v.IsFixnum()
	case 's':
		return v.IsString()
	case 'y':
		return v.IsSymbol()
	case 'p':
		return v.IsPair()
	case 'l':
		return v.IsList()
	case 'c':
		return v.IsChar()
	case 'v':
		return v.IsVector()
	case 'w':
		return v.IsBytevector()
	case 'q':
		return v.Callable()
	case 'o':
		return v.IsPort()
	default:
		return true
	}
}

func typeName(code byte) string {
	switch code {
	case 'n':
		return "number"
	case 'i':
		return "integer"
	case 's':
		return "string"
	case 'y':
		return "symbol"
	case 'p':
		return "pair"
	case 'l':
		return "list"
	case 'c':
		return "char"
	case 'v':
		return "vector"
	case 'w':
		return "bytevector"
	case 'q':
		return "procedure"
	case 'o':
		return "port"
	default:
		return "value"
	}
}

// RegisterPrim installs p as a global binding, returning the PROC cell.
// Grounded on spec.md §4.5 point 1 and TinyScheme's static opexe arity
// tables (scheme.c dispatch_table), generalized to a runtime-built slice
// since Go has no equivalent of a compile-time designated-initializer
// array indexed by enum.
func RegisterPrim(m *Machine, p Prim) *Cell {
	idx := int64(len(m.prims))
	m.prims = append(m.prims, p)
	sym := m.Syms.Intern(m.Heap, p.Name)
	proc := m.Heap.NewProc(idx)
	env.Define(m.Heap, m.Global, sym, proc)
	return proc
}

func (m *Machine) primInfo(c *Cell) Prim { return m.prims[c.Ival] }

// checkArgs validates args against p's arity and type contract, returning
// an error naming the primitive, the argument position, and the required
// kind on failure.
func (m *Machine) checkArgs(p Prim, args []*Cell) error {
	n := len(args)
	if n < p.Min || (p.Max >= 0 && n > p.Max) {
		return errors.Errorf("%s: wrong number of arguments (got %d)", p.Name, n)
	}
	if p.Types == "" {
		return nil
	}
	for i, a := range args {
		var code byte
		if i < len(p.Types) {
			code = p.Types[i]
		} else {
			code = p.Types[len(p.Types)-1]
		}
		if !typeCodeOK(code, a) {
			return errors.Errorf("%s: argument %d must be a %s", p.Name, i+1, typeName(code))
		}
	}
	return nil
}
