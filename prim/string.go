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
	"strings"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
)

func installString(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "string?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsString() })})
	eval.RegisterPrim(m, eval.Prim{Name: "symbol?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsSymbol() })})

	eval.RegisterPrim(m, eval.Prim{Name: "string-length", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(int64(args[0].Str.Len())), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string-ref", Min: 2, Max: 2, Types: "si", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		s, i := args[0].Str, int(args[1].Ival)
		if err := cell.CheckIndex("string-ref", i, s.Len()); err != nil {
			return nil, err
		}
		return m.Heap.NewChar(s.RuneAt(i)), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string-set!", Min: 3, Max: 3, Types: "sic", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if err := cell.CheckString(args[0], "string-set!"); err != nil {
			return nil, err
		}
		s, i := args[0].Str, int(args[1].Ival)
		if err := cell.CheckIndex("string-set!", i, s.Len()); err != nil {
			return nil, err
		}
		s.SetRune(i, rune(args[2].Ival))
		return args[0], nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "make-string", Min: 1, Max: 2, Types: "ic", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		n := int(args[0].Ival)
		fill := ' '
		if len(args) == 2 {
			fill = rune(args[1].Ival)
		}
		return m.Heap.NewString(strings.Repeat(string(fill), n)), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string", Min: 0, Max: -1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteRune(rune(a.Ival))
		}
		return m.Heap.NewString(b.String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string-append", Min: 0, Max: -1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		var b strings.Builder
		for _, a := range args {
			b.WriteString(cell.StringValue(a))
		}
		return m.Heap.NewString(b.String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "substring", Min: 2, Max: 3, Types: "si", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		s := args[0].Str
		start := int(args[1].Ival)
		end := s.Len()
		if len(args) == 3 {
			end = int(args[2].Ival)
		}
		if start < 0 || end > s.Len() || start > end {
			return nil, cell.CheckIndex("substring", start, s.Len()+1)
		}
		return m.Heap.NewString(s.Slice(start, end).String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string-copy", Min: 1, Max: 3, Types: "si", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		s := args[0].Str
		start, end := 0, s.Len()
		if len(args) >= 2 {
			start = int(args[1].Ival)
		}
		if len(args) == 3 {
			end = int(args[2].Ival)
		}
		return m.Heap.NewString(s.Slice(start, end).String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string->list", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		s := args[0].Str
		elems := make([]*cell.Cell, s.Len())
		for i := range elems {
			elems[i] = m.Heap.NewChar(s.RuneAt(i))
		}
		return cell.FromSlice(m.Heap, elems), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "list->string", Min: 1, Max: 1, Types: "l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		var b strings.Builder
		for _, c := range cell.ToSlice(args[0]) {
			b.WriteRune(rune(c.Ival))
		}
		return m.Heap.NewString(b.String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string->symbol", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Syms.Intern(m.Heap, cell.StringValue(args[0])), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "symbol->string", Min: 1, Max: 1, Types: "y", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewImmutableString(cell.SymbolName(args[0])), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string->number", Min: 1, Max: 2, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return stringToNumber(m, cell.StringValue(args[0])), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "number->string", Min: 1, Max: 2, Types: "n", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewImmutableString(numberToString(args[0])), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "string-upcase", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewString(strings.ToUpper(cell.StringValue(args[0]))), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "string-downcase", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewString(strings.ToLower(cell.StringValue(args[0]))), nil
	}})

	strCmp := func(name string, ok func(a, b string) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 2, Max: -1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			for i := 1; i < len(args); i++ {
				if !ok(cell.StringValue(args[i-1]), cell.StringValue(args[i])) {
					return cell.False, nil
				}
			}
			return cell.True, nil
		}})
	}
	strCmp("string=?", func(a, b string) bool { return a == b })
	strCmp("string<?", func(a, b string) bool { return a < b })
	strCmp("string>?", func(a, b string) bool { return a > b })
	strCmp("string<=?", func(a, b string) bool { return a <= b })
	strCmp("string>=?", func(a, b string) bool { return a >= b })
	strCmp("string-ci=?", func(a, b string) bool { return strings.EqualFold(a, b) })
}
