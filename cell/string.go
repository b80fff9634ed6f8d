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

// NewStringBuf builds a StringBuf from a Go string, choosing the ASCII or
// wide representation depending on whether s contains any non-ASCII rune.
func NewStringBuf(s string) *StringBuf {
	for _, r := range s {
		if r > 0x7f {
			return &StringBuf{wide: []rune(s), isWide: true}
		}
	}
	return &StringBuf{ascii: []byte(s)}
}

// Len returns the code-point length of the buffer.
func (s *StringBuf) Len() int {
	if s.isWide {
		return len(s.wide)
	}
	return len(s.ascii)
}

// RuneAt returns the code point at index i (code-point indexed, not byte
// indexed, per spec.md §9's open question on wide-string indexing).
func (s *StringBuf) RuneAt(i int) rune {
	if s.isWide {
		return s.wide[i]
	}
	return rune(s.ascii[i])
}

// widen converts an ASCII buffer to the wide representation in place.
func (s *StringBuf) widen() {
	if s.isWide {
		return
	}
	w := make([]rune, len(s.ascii))
	for i, b := range s.ascii {
		w[i] = rune(b)
	}
	s.ascii = nil
	s.wide = w
	s.isWide = true
}

// SetRune assigns the code point at index i, widening the buffer first if r
// is non-ASCII. This is the one place a STRING's representation changes
// after construction, per spec.md §3's "widens on first non-ASCII insertion".
func (s *StringBuf) SetRune(i int, r rune) {
	if !s.isWide && r > 0x7f {
		s.widen()
	}
	if s.isWide {
		s.wide[i] = r
		return
	}
	s.ascii[i] = byte(r)
}

// String renders the buffer back to a Go string.
func (s *StringBuf) String() string {
	if s.isWide {
		return string(s.wide)
	}
	return string(s.ascii)
}

// Slice returns the code points from start to end (exclusive) as a new
// StringBuf, preserving the wide/narrow distinction of the source.
func (s *StringBuf) Slice(start, end int) *StringBuf {
	if s.isWide {
		w := make([]rune, end-start)
		copy(w, s.wide[start:end])
		return &StringBuf{wide: w, isWide: true}
	}
	b := make([]byte, end-start)
	copy(b, s.ascii[start:end])
	return &StringBuf{ascii: b}
}

// StringValue returns the Go string content of a STRING or SYMBOL cell.
func StringValue(c *Cell) string {
	switch {
	case c.IsString():
		return c.Str.String()
	case c.IsSymbol():
		return c.Car.Str.String()
	}
	return ""
}

// SymbolName is an alias for StringValue restricted to symbols, for
// readability at call sites in eval/prim.
func SymbolName(c *Cell) string { return StringValue(c) }

// CheckString validates that c is a mutable STRING cell, returning a
// ready-to-wrap error otherwise. Centralizes the "immutable mutation" error
// kind from spec.md §7 for string primitives.
func CheckString(c *Cell, op string) error {
	if !c.IsString() {
		return errors.Errorf("%s: not a string", op)
	}
	if c.IsImmutable() {
		return errors.Errorf("%s: immutable string", op)
	}
	return nil
}
