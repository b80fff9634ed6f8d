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
)

func installVector(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "vector?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsVector() })})

	eval.RegisterPrim(m, eval.Prim{Name: "make-vector", Min: 1, Max: 2, Types: "i*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		fill := cell.Nil
		if len(args) == 2 {
			fill = args[1]
		}
		return m.Heap.AllocVector(int(args[0].Ival), fill), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector", Min: 0, Max: -1, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		v := m.Heap.AllocVector(len(args), cell.Nil)
		for i, a := range args {
			v.Vec.Set(i, a)
		}
		return v, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-length", Min: 1, Max: 1, Types: "v", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewFixnum(int64(args[0].Vec.Len())), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-ref", Min: 2, Max: 2, Types: "vi", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		v, i := args[0].Vec, int(args[1].Ival)
		if err := cell.CheckIndex("vector-ref", i, v.Len()); err != nil {
			return nil, err
		}
		return v.Get(i), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-set!", Min: 3, Max: 3, Types: "vi*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if err := cell.CheckVector(args[0], "vector-set!"); err != nil {
			return nil, err
		}
		v, i := args[0].Vec, int(args[1].Ival)
		if err := cell.CheckIndex("vector-set!", i, v.Len()); err != nil {
			return nil, err
		}
		v.Set(i, args[2])
		return args[0], nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-fill!", Min: 2, Max: 2, Types: "v*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		if err := cell.CheckVector(args[0], "vector-fill!"); err != nil {
			return nil, err
		}
		v := args[0].Vec
		for i := 0; i < v.Len(); i++ {
			v.Set(i, args[1])
		}
		return args[0], nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector->list", Min: 1, Max: 1, Types: "v", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.FromSlice(m.Heap, append([]*cell.Cell{}, args[0].Vec.Elems()...)), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "list->vector", Min: 1, Max: 1, Types: "l", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		elems := cell.ToSlice(args[0])
		v := m.Heap.AllocVector(len(elems), cell.Nil)
		for i, e := range elems {
			v.Vec.Set(i, e)
		}
		return v, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-copy", Min: 1, Max: 3, Types: "vi", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		src := args[0].Vec
		start, end := 0, src.Len()
		if len(args) >= 2 {
			start = int(args[1].Ival)
		}
		if len(args) == 3 {
			end = int(args[2].Ival)
		}
		v := m.Heap.AllocVector(end-start, cell.Nil)
		for i := start; i < end; i++ {
			v.Vec.Set(i-start, src.Get(i))
		}
		return v, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-map", Min: 2, Max: -1, Types: "qv", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		n := args[1].Vec.Len()
		for _, a := range args[2:] {
			if a.Vec.Len() < n {
				n = a.Vec.Len()
			}
		}
		out := m.Heap.AllocVector(n, cell.Nil)
		for i := 0; i < n; i++ {
			callArgs := make([]*cell.Cell, len(args)-1)
			for j, a := range args[1:] {
				callArgs[j] = a.Vec.Get(i)
			}
			v, err := m.Apply(args[0], cell.FromSlice(m.Heap, callArgs))
			if err != nil {
				return nil, err
			}
			out.Vec.Set(i, v)
		}
		return out, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "vector-for-each", Min: 2, Max: -1, Types: "qv", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		n := args[1].Vec.Len()
		for _, a := range args[2:] {
			if a.Vec.Len() < n {
				n = a.Vec.Len()
			}
		}
		for i := 0; i < n; i++ {
			callArgs := make([]*cell.Cell, len(args)-1)
			for j, a := range args[1:] {
				callArgs[j] = a.Vec.Get(i)
			}
			if _, err := m.Apply(args[0], cell.FromSlice(m.Heap, callArgs)); err != nil {
				return nil, err
			}
		}
		return cell.Nil, nil
	}})
}
