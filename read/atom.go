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

package read

import (
	"math"
	"strconv"
	"strings"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/pkg/errors"
)

// ParseAtom classifies raw atom text as a number or a symbol and returns
// the corresponding cell, mirroring TinyScheme's mk_atom (scheme.c).
// Symbols are interned through st; numbers are allocated directly.
func ParseAtom(h *cell.Heap, st *cell.SymbolTable, text string) *cell.Cell {
	if looksNumeric(text) {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return h.NewFixnum(n)
		}
		switch strings.ToLower(text) {
		case "+inf.0":
			return h.NewReal(math.Inf(1))
		case "-inf.0":
			return h.NewReal(math.Inf(-1))
		case "+nan.0", "-nan.0":
			return h.NewReal(math.NaN())
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return h.NewReal(f)
		}
	}
	return st.Intern(h, text)
}

// looksNumeric decides, without fully parsing, whether text should be
// attempted as a number rather than interned as a symbol directly -
// following mk_atom's lead character/decimal-point scan.
func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	c := text[0]
	if c == '+' || c == '-' {
		rest := strings.ToLower(text[1:])
		if rest == "inf.0" || rest == "nan.0" {
			return true
		}
		i++
	}
	if i >= len(text) {
		return false
	}
	if text[i] == '.' {
		i++
	}
	return i < len(text) && text[i] >= '0' && text[i] <= '9'
}

// ParseSharpConst parses the text following a `#` sharp-constant token
// (`t`, `f`, `\x...`, `xHH`, `oNN`, `bNN`, `dNN`), mirroring mk_sharp_const.
func ParseSharpConst(h *cell.Heap, text string) (*cell.Cell, error) {
	switch {
	case strings.EqualFold(text, "t"):
		return cell.True, nil
	case strings.EqualFold(text, "f"):
		return cell.False, nil
	case strings.HasPrefix(text, "\\"):
		return parseCharLiteral(h, text[1:])
	case len(text) >= 1 && (text[0] == 'x' || text[0] == 'X'):
		return parseRadixInt(h, text[0], text[1:], 16)
	case len(text) >= 1 && (text[0] == 'o' || text[0] == 'O'):
		return parseRadixInt(h, text[0], text[1:], 8)
	case len(text) >= 1 && (text[0] == 'b' || text[0] == 'B'):
		return parseRadixInt(h, text[0], text[1:], 2)
	case len(text) >= 1 && (text[0] == 'd' || text[0] == 'D'):
		return parseRadixInt(h, text[0], text[1:], 10)
	default:
		return nil, errors.Errorf("reader: undefined sharp expression #%s", text)
	}
}

func parseRadixInt(h *cell.Heap, prefix byte, digits string, base int) (*cell.Cell, error) {
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "reader: malformed #%c literal", prefix)
	}
	return h.NewFixnum(n), nil
}

var namedChars = map[string]rune{
	"space":     ' ',
	"newline":   '\n',
	"return":    '\r',
	"tab":       '\t',
	"null":      0,
	"nul":       0,
	"altmode":   0x1b,
	"backspace": 0x08,
	"delete":    0x7f,
	"escape":    0x1b,
	"linefeed":  '\n',
	"rubout":    0x7f,
}

func parseCharLiteral(h *cell.Heap, name string) (*cell.Cell, error) {
	if name == "" {
		return nil, errors.New("reader: empty character literal")
	}
	if r, ok := namedChars[strings.ToLower(name)]; ok {
		return h.NewChar(r), nil
	}
	if (name[0] == 'x' || name[0] == 'X') && len(name) > 1 {
		v, err := strconv.ParseInt(name[1:], 16, 32)
		if err != nil {
			return nil, errors.Wrap(err, "reader: malformed \\x character literal")
		}
		return h.NewChar(rune(v)), nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return nil, errors.Errorf("reader: unknown character literal #\\%s", name)
	}
	return h.NewChar(runes[0]), nil
}
