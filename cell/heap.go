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

// Default segment sizing used when NewHeap is passed zero, mirroring
// TinyScheme's cell_segsize/cell_nsegment globals. interp/config.go keeps
// its own defaults and CELL_SEGSIZE/CELL_NSEGMENT overrides and passes the
// result to NewHeap explicitly.
const (
	DefaultSegSize    = 5000
	DefaultMaxSegments = 20
)

// RootProvider is implemented by whatever aggregates the interpreter's live
// roots: the oblist, the global environment, the evaluator's registers and
// dump stack, and the host-reentry chain (spec.md §4.2). The heap itself
// only tracks the recent-allocation anchor, which needs no external
// cooperation.
type RootProvider interface {
	Roots() []*Cell
}

// Heap is the segmented cell pool and free-list allocator described in
// spec.md §4.1, generalized from db47h/ngaro's single flat Image into a
// slice of lazily-grown segments.
type Heap struct {
	segSize  int
	maxSeg   int
	segments [][]Cell

	free      *Cell // free-list head, threaded through Cdr
	freeCount int

	anchor *Cell // recent-allocation anchor: prepended via anchorNext

	oom  bool
	sink *Cell

	roots       RootProvider
	collections int64
}

// NewHeap creates a heap that grows up to maxSeg segments of segSize cells
// each. A zero segSize or maxSeg selects the package defaults.
func NewHeap(segSize, maxSeg int) *Heap {
	if segSize <= 0 {
		segSize = DefaultSegSize
	}
	if maxSeg <= 0 {
		maxSeg = DefaultMaxSegments
	}
	h := &Heap{segSize: segSize, maxSeg: maxSeg}
	h.sink = &Cell{Tag: TagNil, Flags: FlagMark | FlagImmutable | FlagAtom}
	h.growSegment()
	return h
}

// SetRoots registers the external root provider. Must be called before the
// first collection; interp.New does this once the evaluator exists.
func (h *Heap) SetRoots(rp RootProvider) { h.roots = rp }

// OutOfMemory reports whether the heap has latched its sticky OOM flag.
// Once true, Alloc always returns the shared sink cell (spec.md §4.1/§7).
func (h *Heap) OutOfMemory() bool { return h.oom }

// Segments returns the number of allocated segments, for diagnostics.
func (h *Heap) Segments() int { return len(h.segments) }

// Collections returns the number of mark-sweep cycles run so far.
func (h *Heap) Collections() int64 { return h.collections }

func (h *Heap) growSegment() {
	if len(h.segments) >= h.maxSeg {
		return
	}
	seg := make([]Cell, h.segSize)
	for i := range seg {
		seg[i].Tag = TagFree
		if i+1 < len(seg) {
			seg[i].Cdr = &seg[i+1]
		}
	}
	if len(seg) > 0 {
		seg[len(seg)-1].Cdr = h.free
		h.free = &seg[0]
		h.freeCount += len(seg)
	}
	h.segments = append(h.segments, seg)
	glog.V(2).Infof("cell: grew heap to %d segments (%d cells)", len(h.segments), len(h.segments)*h.segSize)
}

// ClearAnchor drops the recent-allocation anchor chain. Safe to call once
// per evaluator step, after the allocations made during that step have been
// installed into registers or are otherwise reachable (spec.md §4.1,
// "ok_to_freely_gc").
func (h *Heap) ClearAnchor() { h.anchor = nil }

// Alloc returns a single zeroed cell, running a collection (and, if that
// recovers too little, growing a new segment) when the free list is empty.
// extra names cells the caller wants kept alive across a possible collection
// in addition to the registered RootProvider and the recent-allocation
// anchor (spec.md §4.2, "two extra cells passed to the triggering
// allocation call").
func (h *Heap) Alloc(extra ...*Cell) *Cell {
	if h.oom {
		return h.sink
	}
	if h.free == nil {
		recovered := h.collect(extra...)
		if recovered < len(h.segments)*8 {
			h.growSegment()
		}
	}
	if h.free == nil {
		h.oom = true
		glog.Warningf("cell: out of memory after %d segments", len(h.segments))
		return h.sink
	}
	c := h.free
	h.free = c.Cdr
	h.freeCount--
	*c = Cell{Tag: TagFree}
	c.anchorNext = h.anchor
	h.anchor = c
	return c
}

// AllocVector allocates a VECTOR cell backed by a freshly-made VectorBody of
// n elements, all initialized to fill.
func (h *Heap) AllocVector(n int, fill *Cell) *Cell {
	c := h.Alloc()
	c.Tag = TagVector
	c.Vec = NewVectorBody(n, fill)
	return c
}

// Cons allocates a new pair.
func (h *Heap) Cons(car, cdr *Cell) *Cell {
	c := h.Alloc(car, cdr)
	c.Tag = TagPair
	c.Car = car
	c.Cdr = cdr
	return c
}

// NewString allocates a mutable STRING cell from a Go string.
func (h *Heap) NewString(s string) *Cell {
	c := h.Alloc()
	c.Tag = TagString
	c.Str = NewStringBuf(s)
	return c
}

// NewImmutableString allocates an immutable STRING cell, as used for quoted
// string literals produced by the reader (spec.md §3).
func (h *Heap) NewImmutableString(s string) *Cell {
	c := h.NewString(s)
	c.Flags |= FlagImmutable
	return c
}

// NewFixnum allocates a FIXNUM cell.
func (h *Heap) NewFixnum(v int64) *Cell {
	c := h.Alloc()
	c.Tag = TagFixnum
	c.Ival = v
	c.Flags |= FlagAtom
	return c
}

// NewReal allocates a REAL cell.
func (h *Heap) NewReal(v float64) *Cell {
	c := h.Alloc()
	c.Tag = TagReal
	c.Fval = v
	c.Flags |= FlagAtom
	return c
}

// NewChar allocates a CHARACTER cell.
func (h *Heap) NewChar(r rune) *Cell {
	c := h.Alloc()
	c.Tag = TagChar
	c.Ival = int64(r)
	c.Flags |= FlagAtom
	return c
}

// NewBytevector allocates a BYTEVECTOR cell of n zeroed bytes.
func (h *Heap) NewBytevector(n int) *Cell {
	c := h.Alloc()
	c.Tag = TagBytevector
	c.Bytes = make([]byte, n)
	return c
}

// NewProc allocates a PROC cell wrapping a built-in opcode number.
func (h *Heap) NewProc(opcode int64) *Cell {
	c := h.Alloc()
	c.Tag = TagProc
	c.Ival = opcode
	c.Flags |= FlagAtom
	return c
}

// NewForeign allocates a FOREIGN cell wrapping a host function.
func (h *Heap) NewForeign(fn ForeignFunc) *Cell {
	c := h.Alloc()
	c.Tag = TagForeign
	c.Fn = fn
	c.Flags |= FlagAtom
	return c
}

// NewPort allocates a PORT cell wrapping a PortHandle.
func (h *Heap) NewPort(p PortHandle) *Cell {
	c := h.Alloc()
	c.Tag = TagPort
	c.Ext = p
	return c
}

// NewClosureLike allocates a CLOSURE/MACRO/PROMISE cell: the three share a
// shape (code . env) per spec.md §3, differing only by tag.
func (h *Heap) NewClosureLike(tag Tag, code, env *Cell) *Cell {
	c := h.Alloc(code, env)
	c.Tag = tag
	c.Car = code
	c.Cdr = env
	return c
}

// NewContinuation allocates a CONTINUATION cell wrapping an opaque saved
// dump-stack snapshot.
func (h *Heap) NewContinuation(snapshot RootCarrier) *Cell {
	c := h.Alloc()
	c.Tag = TagContinuation
	c.Ext = snapshot
	return c
}

// NewGlobalFrame allocates the topmost ENVIRONMENT cell: a hash vector of
// nbuckets slot-list buckets, with no parent (spec.md §4.4).
func (h *Heap) NewGlobalFrame(nbuckets int) *Cell {
	c := h.Alloc()
	c.Tag = TagEnvironment
	c.Flags |= FlagGlobalFrame
	c.Vec = NewVectorBody(nbuckets, Nil)
	c.Cdr = Nil
	return c
}

// NewFrame allocates a non-global ENVIRONMENT cell: a plain association
// list of slots over the given parent frame (spec.md §4.4).
func (h *Heap) NewFrame(parent *Cell) *Cell {
	c := h.Alloc(parent)
	c.Tag = TagEnvironment
	c.Car = Nil
	c.Cdr = parent
	return c
}
