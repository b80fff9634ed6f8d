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

import "github.com/cellscheme/cellscheme/cell"

// registerCallCC installs call-with-current-continuation (and its common
// alias call/cc). The continuation captured is the dump stack at the point
// of the call, snapshotted into a dumpRoots so the GC can trace it for as
// long as the resulting CONTINUATION cell is reachable (spec.md §4.5's
// "continuation capture" note). Invoking it is handled by opApply's
// IsContinuation case in eval.go, which replaces m.dump wholesale.
func registerCallCC(m *Machine) {
	fn := func(mm *Machine, args []*Cell) (*Cell, error) {
		snapshot := append(dumpRoots(nil), mm.dump...)
		k := mm.Heap.NewContinuation(snapshot)
		return mm.Apply(args[0], mm.Heap.Cons(k, cell.Nil))
	}
	RegisterPrim(m, Prim{Name: "call-with-current-continuation", Min: 1, Max: 1, Types: "q", Fn: fn})
	RegisterPrim(m, Prim{Name: "call/cc", Min: 1, Max: 1, Types: "q", Fn: fn})
}
