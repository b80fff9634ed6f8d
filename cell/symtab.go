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

// oblistBuckets is the fixed bucket count named by spec.md §4.4.
const oblistBuckets = 461

// SymbolTable is the oblist: an open-hash vector of symbol-list buckets.
// Grounded on google/kati's symtab.go intern/internBytes pattern
// (check-then-insert, return the existing value on a hit), generalized from
// a bare map to the fixed bucket layout spec.md requires.
type SymbolTable struct {
	buckets [oblistBuckets][]*Cell
}

// NewSymbolTable returns an empty oblist.
func NewSymbolTable() *SymbolTable { return &SymbolTable{} }

// HashBucket implements spec.md §4.4's "rotate-left-5 then XOR on each
// byte" hash, reduced modulo n. Shared by the oblist and by package env's
// global-frame hash vector, which uses the same bucket count.
func HashBucket(s string, n int) int {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = (h<<5 | h>>27) ^ uint32(s[i])
	}
	return int(h % uint32(n))
}

func hashName(s string) int { return HashBucket(s, oblistBuckets) }

// Intern returns the unique symbol cell for name, allocating and inserting
// it on first use. Because interning guarantees pointer identity for equal
// names, eq? on symbols reduces to a pointer compare (spec.md §3).
func (t *SymbolTable) Intern(h *Heap, name string) *Cell {
	b := hashName(name)
	for _, s := range t.buckets[b] {
		if StringValue(s) == name {
			return s
		}
	}
	nameCell := h.NewImmutableString(name)
	nameCell.Flags |= FlagAtom
	sym := h.Alloc(nameCell)
	sym.Tag = TagSymbol
	sym.Car = nameCell
	sym.Cdr = Nil
	sym.Flags |= FlagAtom
	t.buckets[b] = append(t.buckets[b], sym)
	return sym
}

// Lookup returns the existing symbol cell for name, or nil if it has never
// been interned, without interning it.
func (t *SymbolTable) Lookup(name string) *Cell {
	for _, s := range t.buckets[hashName(name)] {
		if StringValue(s) == name {
			return s
		}
	}
	return nil
}

// Roots returns every interned symbol, the oblist's contribution to the GC
// root set (spec.md §4.2).
func (t *SymbolTable) Roots() []*Cell {
	var roots []*Cell
	for _, b := range t.buckets {
		roots = append(roots, b...)
	}
	return roots
}
