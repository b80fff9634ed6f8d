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

func installPredicates(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "boolean?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsBoolean() })})
	eval.RegisterPrim(m, eval.Prim{Name: "procedure?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.Callable() })})
	eval.RegisterPrim(m, eval.Prim{Name: "port?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsPort() })})
	eval.RegisterPrim(m, eval.Prim{Name: "eof-object?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsEOF() })})
	eval.RegisterPrim(m, eval.Prim{Name: "promise?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool { return a.IsPromise() })})
	eval.RegisterPrim(m, eval.Prim{Name: "eof-object", Min: 0, Max: 0, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.EOF, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "boolean=?", Min: 2, Max: -1, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		for i := 1; i < len(args); i++ {
			if args[i] != args[0] {
				return cell.False, nil
			}
		}
		return cell.True, nil
	}})
}
