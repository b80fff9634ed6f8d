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

package env

import (
	"github.com/cellscheme/cellscheme/cell"
	"github.com/pkg/errors"
)

// GlobalBuckets is the fixed global-frame hash vector size named by
// spec.md §4.4.
const GlobalBuckets = 461

// NewGlobal allocates the root (global) environment frame.
func NewGlobal(h *cell.Heap) *cell.Cell { return h.NewGlobalFrame(GlobalBuckets) }

// NewChild allocates a fresh non-global frame over parent, as done by
// lambda application and let/let*/letrec (spec.md §4.4).
func NewChild(h *cell.Heap, parent *cell.Cell) *cell.Cell { return h.NewFrame(parent) }

func bucketHead(frame, sym *cell.Cell) *cell.Cell {
	if frame.IsGlobalFrame() {
		return frame.Vec.Get(cell.HashBucket(cell.SymbolName(sym), frame.Vec.Len()))
	}
	return frame.Car
}

func setBucketHead(frame, sym, head *cell.Cell) {
	if frame.IsGlobalFrame() {
		frame.Vec.Set(cell.HashBucket(cell.SymbolName(sym), frame.Vec.Len()), head)
		return
	}
	frame.Car = head
}

// findInFrame scans a single frame's bucket/assoc-list for sym by pointer
// identity, valid because symbols are interned (spec.md §4.4).
func findInFrame(frame, sym *cell.Cell) *cell.Cell {
	for e := bucketHead(frame, sym); e.IsPair(); e = e.Cdr {
		if e.Car.Car == sym {
			return e.Car
		}
	}
	return nil
}

// Lookup walks the frame chain toward the root looking for sym, returning
// its bound value.
func Lookup(frame, sym *cell.Cell) (*cell.Cell, bool) {
	for f := frame; !f.IsNil(); f = f.Cdr {
		if slot := findInFrame(f, sym); slot != nil {
			return slot.Cdr, true
		}
	}
	return nil, false
}

// Define binds sym to val in frame itself (not the chain): updates an
// existing slot if present, otherwise prepends a new one (spec.md §4.4).
func Define(h *cell.Heap, frame, sym, val *cell.Cell) {
	if slot := findInFrame(frame, sym); slot != nil {
		slot.Cdr = val
		return
	}
	slot := h.Cons(sym, val)
	setBucketHead(frame, sym, h.Cons(slot, bucketHead(frame, sym)))
}

// Set searches the full chain for sym and assigns val, erroring if unbound
// or if the slot is flagged immutable (spec.md §4.4/§7).
func Set(frame, sym, val *cell.Cell) error {
	for f := frame; !f.IsNil(); f = f.Cdr {
		if slot := findInFrame(f, sym); slot != nil {
			if slot.Flags&cell.FlagImmutable != 0 {
				return errors.Errorf("set!: %s is immutable", cell.SymbolName(sym))
			}
			slot.Cdr = val
			return nil
		}
	}
	return errors.Errorf("set!: unbound variable: %s", cell.SymbolName(sym))
}

// Bind creates a new frame over parent, binding formals to args. formals
// may be a single symbol (bind the whole argument list to it), a proper
// list of symbols, or a dotted list (fixed symbols . rest symbol), per
// spec.md §4.5 "Procedure application" / CLOSURE application.
func Bind(h *cell.Heap, parent, formals, args *cell.Cell) (*cell.Cell, error) {
	frame := NewChild(h, parent)
	f, a := formals, args
	for {
		switch {
		case f.IsSymbol():
			Define(h, frame, f, a)
			return frame, nil
		case f.IsNil():
			if !a.IsNil() {
				return nil, errors.New("apply: too many arguments")
			}
			return frame, nil
		case f.IsPair():
			if a.IsNil() {
				return nil, errors.New("apply: too few arguments")
			}
			if !a.IsPair() {
				return nil, errors.New("apply: improper argument list")
			}
			Define(h, frame, f.Car, a.Car)
			f, a = f.Cdr, a.Cdr
		default:
			return nil, errors.New("apply: malformed formal parameter list")
		}
	}
}
