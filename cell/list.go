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

// ListLength implements spec.md §4.6's list-length: a tortoise-and-hare walk
// that distinguishes a proper list (result >= 0), a circular list (-1), and
// a dotted list of prefix length k (-2-k).
func ListLength(c *Cell) int {
	slow, fast := c, c
	n := 0
	for {
		if fast.IsNil() {
			return n
		}
		if !fast.IsPair() {
			return -2 - n
		}
		fast = fast.Cdr
		n++
		if fast.IsNil() {
			return n
		}
		if !fast.IsPair() {
			return -2 - n
		}
		fast = fast.Cdr
		n++
		slow = slow.Cdr
		if fast == slow {
			return -1
		}
	}
}

// IsProperList reports whether c is a proper, non-circular list.
func IsProperList(c *Cell) bool { return ListLength(c) >= 0 }

// ToSlice flattens a proper list into a Go slice. The caller should check
// IsProperList first if a dotted/circular list must be rejected; ToSlice
// simply stops at the first non-pair cdr.
func ToSlice(c *Cell) []*Cell {
	var out []*Cell
	for c.IsPair() {
		out = append(out, c.Car)
		c = c.Cdr
	}
	return out
}

// FromSlice builds a proper list from a Go slice, allocating through h.
func FromSlice(h *Heap, xs []*Cell) *Cell {
	result := Nil
	for i := len(xs) - 1; i >= 0; i-- {
		result = h.Cons(xs[i], result)
	}
	return result
}

// FromSliceDotted builds a list from xs with tail as the final cdr, for
// `apply`-style rest-argument construction.
func FromSliceDotted(h *Heap, xs []*Cell, tail *Cell) *Cell {
	result := tail
	for i := len(xs) - 1; i >= 0; i-- {
		result = h.Cons(xs[i], result)
	}
	return result
}

// Reverse destructively reverses a proper list in place, as used by the
// evaluator's argument-accumulation opcodes (spec.md §4.5, "let" bullet).
func Reverse(c *Cell) *Cell {
	var prev *Cell = Nil
	for c.IsPair() {
		next := c.Cdr
		c.Cdr = prev
		prev = c
		c = next
	}
	return prev
}
