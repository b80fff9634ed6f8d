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

package cell

import "github.com/pkg/errors"

// NewVectorBody allocates a vector body of n elements, all initialized to
// fill. Per spec.md §9's sanctioned rendering, the body lives outside the
// cell pool in its own slice rather than requiring a consecutive run of
// cells reserved from the free list.
func NewVectorBody(n int, fill *Cell) *VectorBody {
	elems := make([]*Cell, n)
	for i := range elems {
		elems[i] = fill
	}
	return &VectorBody{elems: elems}
}

// Len returns the number of elements.
func (v *VectorBody) Len() int { return len(v.elems) }

// Get returns the element at index i without bounds checking; callers use
// CheckIndex first the way prim/vector.go does.
func (v *VectorBody) Get(i int) *Cell { return v.elems[i] }

// Set assigns the element at index i.
func (v *VectorBody) Set(i int, val *Cell) { v.elems[i] = val }

// Elems exposes the backing slice for iteration (list->vector, vector->list,
// the printer, and the GC root walk).
func (v *VectorBody) Elems() []*Cell { return v.elems }

// CheckIndex validates a vector/bytevector/string index, producing the
// "Resource"-adjacent bounds error named informally throughout spec.md §4.6.
func CheckIndex(op string, i, length int) error {
	if i < 0 || i >= length {
		return errors.Errorf("%s: index %d out of range [0,%d)", op, i, length)
	}
	return nil
}

// CheckVector validates that c is a mutable VECTOR cell.
func CheckVector(c *Cell, op string) error {
	if !c.IsVector() {
		return errors.Errorf("%s: not a vector", op)
	}
	if c.IsImmutable() {
		return errors.Errorf("%s: immutable vector", op)
	}
	return nil
}
