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
	"unicode"
	"unicode/utf8"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/pkg/errors"
)

func installChar(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "char?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsChar() })})

	eval.RegisterPrim(m, eval.Prim{Name: "char->integer", Min: 1, Max: 1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(args[0].Ival), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "integer->char", Min: 1, Max: 1, Types: "i", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return integerToChar(m, args[0].Ival)
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "char-upcase", Min: 1, Max: 1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewChar(unicode.ToUpper(rune(args[0].Ival))), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "char-downcase", Min: 1, Max: 1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewChar(unicode.ToLower(rune(args[0].Ival))), nil
	}})

	charPred := func(name string, ok func(r rune) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 1, Max: 1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			return cell.Bool(ok(rune(args[0].Ival))), nil
		}})
	}
	charPred("char-alphabetic?", unicode.IsLetter)
	charPred("char-numeric?", unicode.IsDigit)
	charPred("char-whitespace?", unicode.IsSpace)
	charPred("char-upper-case?", unicode.IsUpper)
	charPred("char-lower-case?", unicode.IsLower)

	charCmp := func(name string, ok func(a, b rune) bool) {
		eval.RegisterPrim(m, eval.Prim{Name: name, Min: 2, Max: -1, Types: "c", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
			for i := 1; i < len(args); i++ {
				if !ok(rune(args[i-1].Ival), rune(args[i].Ival)) {
					return cell.False, nil
				}
			}
			return cell.True, nil
		}})
	}
	charCmp("char=?", func(a, b rune) bool { return a == b })
	charCmp("char<?", func(a, b rune) bool { return a < b })
	charCmp("char>?", func(a, b rune) bool { return a > b })
	charCmp("char<=?", func(a, b rune) bool { return a <= b })
	charCmp("char>=?", func(a, b rune) bool { return a >= b })
	charCmp("char-ci=?", func(a, b rune) bool { return unicode.ToLower(a) == unicode.ToLower(b) })
}

// integerToChar validates v as a Unicode scalar value before allocating a
// CHARACTER cell. TinyScheme truncates to the platform's wchar_t; cellscheme
// widens the range to full Unicode (0..0x10FFFF, surrogates excluded) and
// rejects everything else rather than silently truncating.
func integerToChar(m *eval.Machine, v int64) (*cell.Cell, error) {
	if v < 0 || v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return nil, errors.Errorf("integer->char: %d is not a valid Unicode scalar value", v)
	}
	return m.Heap.NewChar(rune(v)), nil
}
