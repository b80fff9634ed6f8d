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

import "github.com/golang/glog"

// collect runs one mark-sweep cycle and returns the number of cells newly
// reclaimed (as opposed to the total free-list size), the quantity spec.md
// §4.1's segment-growth heuristic compares against.
//
// Marking is iterative via an explicit worklist rather than literal
// Schorr-Deutsch-Waite pointer reversal; see DESIGN.md "GC marking:
// disclosed adaptation of link-inversion" for why. Either way, no native Go
// call recurses on user-controlled (and possibly cyclic) cell structure, so
// a pathological Scheme program cannot overflow the host stack via GC.
func (h *Heap) collect(extra ...*Cell) int {
	h.collections++
	glog.V(2).Infof("cell: gc #%d starting, %d segments", h.collections, len(h.segments))

	work := make([]*Cell, 0, 256)
	push := func(c *Cell) {
		if c != nil && c.Flags&FlagMark == 0 {
			work = append(work, c)
		}
	}

	if h.roots != nil {
		for _, r := range h.roots.Roots() {
			push(r)
		}
	}
	for a := h.anchor; a != nil; a = a.anchorNext {
		push(a)
	}
	for _, e := range extra {
		push(e)
	}

	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]
		if c.Flags&FlagMark != 0 {
			continue
		}
		c.Flags |= FlagMark
		switch c.Tag {
		case TagPair, TagSymbol, TagClosure, TagMacro, TagPromise, TagEnvironment:
			push(c.Car)
			push(c.Cdr)
			// A global ENVIRONMENT frame additionally uses Vec as its hash
			// vector of buckets (spec.md §4.4); walk it too.
			if c.Vec != nil {
				for _, e := range c.Vec.elems {
					push(e)
				}
			}
		case TagVector:
			if c.Vec != nil {
				for _, e := range c.Vec.elems {
					push(e)
				}
			}
		case TagContinuation:
			if rc, ok := c.Ext.(RootCarrier); ok {
				for _, r := range rc.GCRoots() {
					push(r)
				}
			}
		}
	}

	recovered := 0
	var newFree *Cell
	for si := range h.segments {
		seg := h.segments[si]
		for i := range seg {
			c := &seg[i]
			if c.Tag == TagFree {
				c.Cdr = newFree
				newFree = c
				continue
			}
			if c.Flags&FlagMark != 0 {
				c.Flags &^= FlagMark
				continue
			}
			finalize(c)
			*c = Cell{Tag: TagFree, Cdr: newFree}
			newFree = c
			recovered++
		}
	}
	h.free = newFree
	h.freeCount += recovered
	glog.V(2).Infof("cell: gc #%d done, recovered %d cells", h.collections, recovered)
	return recovered
}

// finalize releases non-GC-managed resources owned by a cell about to be
// swept, principally closing file-backed ports (spec.md §4.2 sweep step).
func finalize(c *Cell) {
	if c.Tag != TagPort {
		return
	}
	if closer, ok := c.Ext.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// Collect forces an immediate collection, for host code (and tests) that
// wants to assert on GC behavior without waiting for allocation pressure.
func (h *Heap) Collect() int { return h.collect() }
