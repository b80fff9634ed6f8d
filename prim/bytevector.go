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

func installBytevector(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "bytevector?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsBytevector() })})

	eval.RegisterPrim(m, eval.Prim{Name: "make-bytevector", Min: 1, Max: 2, Types: "ii", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		c := m.Heap.NewBytevector(int(args[0].Ival))
		if len(args) == 2 {
			fill := byte(args[1].Ival)
			for i := range c.Bytes {
				c.Bytes[i] = fill
			}
		}
		return c, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector", Min: 0, Max: -1, Types: "i", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		c := m.Heap.NewBytevector(len(args))
		for i, a := range args {
			c.Bytes[i] = byte(a.Ival)
		}
		return c, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector-length", Min: 1, Max: 1, Types: "w", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(int64(len(args[0].Bytes))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector-u8-ref", Min: 2, Max: 2, Types: "wi", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		b, i := args[0].Bytes, int(args[1].Ival)
		if err := cell.CheckIndex("bytevector-u8-ref", i, len(b)); err != nil {
			return nil, err
		}
		return m.Heap.NewFixnum(int64(b[i])), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector-u8-set!", Min: 3, Max: 3, Types: "wii", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if args[0].IsImmutable() {
			return nil, errors.New("bytevector-u8-set!: immutable bytevector")
		}
		b, i := args[0].Bytes, int(args[1].Ival)
		if err := cell.CheckIndex("bytevector-u8-set!", i, len(b)); err != nil {
			return nil, err
		}
		b[i] = byte(args[2].Ival)
		return args[0], nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector-copy", Min: 1, Max: 3, Types: "wi", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		src := args[0].Bytes
		start, end := 0, len(src)
		if len(args) >= 2 {
			start = int(args[1].Ival)
		}
		if len(args) == 3 {
			end = int(args[2].Ival)
		}
		c := m.Heap.NewBytevector(end - start)
		copy(c.Bytes, src[start:end])
		return c, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "bytevector-append", Min: 0, Max: -1, Types: "w", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		total := 0
		for _, a := range args {
			total += len(a.Bytes)
		}
		c := m.Heap.NewBytevector(total)
		off := 0
		for _, a := range args {
			off += copy(c.Bytes[off:], a.Bytes)
		}
		return c, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "utf8->string", Min: 1, Max: 1, Types: "w", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewString(string(args[0].Bytes)), nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "string->utf8", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		c := m.Heap.NewBytevector(0)
		c.Bytes = []byte(cell.StringValue(args[0]))
		return c, nil
	}})
}
