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

// registerForce installs force. A PROMISE is a CLOSURE-shaped cell tagged
// TagPromise built by OpDelay; forcing it the first time applies the
// thunk reentrantly and then overwrites the cell's body in place with
// (() (quote value)), keeping its TagPromise tag, so later forces
// (including of any other reference to the same promise object) see the
// cached value without re-running the original thunk.
func registerForce(m *Machine) {
	fn := func(mm *Machine, args []*Cell) (*Cell, error) {
		p := args[0]
		if !p.IsPromise() {
			return p, nil
		}
		v, err := mm.Apply(p, cell.Nil)
		if err != nil {
			return nil, err
		}
		if p.IsPromise() {
			p.Car = mm.Heap.Cons(cell.Nil, mm.Heap.Cons(mm.quoteWrap("quote", v), cell.Nil))
		}
		return v, nil
	}
	RegisterPrim(m, Prim{Name: "force", Min: 1, Max: 1, Types: "*", Fn: fn})
}
