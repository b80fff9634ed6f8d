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

// Package print renders cells back to text for write/display and the REPL,
// grounded on TinyScheme's atom2str/printatom (scheme.c): a single
// recursive renderer parameterized by whether strings and characters are
// quoted (write) or raw (display).
package print

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

var namedChars = map[rune]string{
	' ':  "space",
	'\n': "newline",
	'\r': "return",
	'\t': "tab",
	0:    "null",
	0x1b: "escape",
	0x08: "backspace",
	0x7f: "delete",
}

// Write renders c the way the `write` procedure does: strings quoted and
// escaped, characters as #\-literals. Errors if c contains a string with an
// embedded NUL (spec.md §9's open question on embedded-NUL display).
func Write(c *cell.Cell) (string, error) {
	var b strings.Builder
	if err := render(&b, c, true); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Display renders c the way `display` does: strings and characters appear
// as their raw content. Subject to the same embedded-NUL restriction as
// Write.
func Display(c *cell.Cell) (string, error) {
	var b strings.Builder
	if err := render(&b, c, false); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, c *cell.Cell, write bool) error {
	switch {
	case c.IsNil():
		b.WriteString("()")
	case c == cell.True:
		b.WriteString("#t")
	case c == cell.False:
		b.WriteString("#f")
	case c.IsEOF():
		b.WriteString("#<EOF>")
	case c.IsFixnum():
		b.WriteString(strconv.FormatInt(c.Ival, 10))
	case c.IsReal():
		b.WriteString(formatReal(c.Fval))
	case c.IsChar():
		if write {
			writeChar(b, rune(c.Ival))
		} else {
			b.WriteRune(rune(c.Ival))
		}
	case c.IsString():
		s := c.Str.String()
		if strings.ContainsRune(s, 0) {
			return errors.New("print: string contains an embedded NUL")
		}
		if write {
			writeString(b, s)
		} else {
			b.WriteString(s)
		}
	case c.IsSymbol():
		b.WriteString(cell.SymbolName(c))
	case c.IsPair():
		return renderPair(b, c, write)
	case c.IsVector():
		b.WriteString("#(")
		for i, e := range c.Vec.Elems() {
			if i > 0 {
				b.WriteByte(' ')
			}
			if err := render(b, e, write); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	case c.IsBytevector():
		b.WriteString("#u8(")
		for i, by := range c.Bytes {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(by)))
		}
		b.WriteByte(')')
	case c.IsPort():
		b.WriteString("#<PORT>")
	case c.IsProc():
		b.WriteString("#<PROC>")
	case c.IsForeign():
		b.WriteString("#<FOREIGN>")
	case c.IsClosure():
		b.WriteString("#<CLOSURE>")
	case c.IsMacro():
		b.WriteString("#<MACRO>")
	case c.IsPromise():
		b.WriteString("#<PROMISE>")
	case c.IsContinuation():
		b.WriteString("#<CONTINUATION>")
	default:
		fmt.Fprintf(b, "#<UNKNOWN:%d>", c.Tag)
	}
	return nil
}

func renderPair(b *strings.Builder, c *cell.Cell, write bool) error {
	if name, ok := abbreviation(c); ok {
		b.WriteString(name)
		return render(b, c.Cdr.Car, write)
	}
	b.WriteByte('(')
	if err := render(b, c.Car, write); err != nil {
		return err
	}
	rest := c.Cdr
	for rest.IsPair() {
		b.WriteByte(' ')
		if err := render(b, rest.Car, write); err != nil {
			return err
		}
		rest = rest.Cdr
	}
	if !rest.IsNil() {
		b.WriteString(" . ")
		if err := render(b, rest, write); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func abbreviation(c *cell.Cell) (string, bool) {
	if !c.Car.IsSymbol() || !c.Cdr.IsPair() || !c.Cdr.Cdr.IsNil() {
		return "", false
	}
	switch cell.SymbolName(c.Car) {
	case "quote":
		return "'", true
	case "quasiquote":
		return "`", true
	case "unquote":
		return ",", true
	case "unquote-splicing":
		return ",@", true
	}
	return "", false
}

func formatReal(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf.0"
	}
	if math.IsInf(f, -1) {
		return "-inf.0"
	}
	if math.IsNaN(f) {
		return "+nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeChar(b *strings.Builder, r rune) {
	if name, ok := namedChars[r]; ok {
		b.WriteString("#\\")
		b.WriteString(name)
		return
	}
	b.WriteString("#\\")
	b.WriteRune(r)
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// DisplayWidth returns the terminal column width of s, accounting for
// East Asian wide characters the way a REPL must when tracking cursor
// position across a line (spec.md's interactive-port column bookkeeping).
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
