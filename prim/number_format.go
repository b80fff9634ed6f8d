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

package prim

import (
	"strconv"
	"strings"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
)

// stringToNumber parses s as a fixnum or real, returning cell.False on
// failure per R7RS string->number.
func stringToNumber(m *eval.Machine, s string) *cell.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return cell.False
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return m.Heap.NewFixnum(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return m.Heap.NewReal(f)
	}
	return cell.False
}

func numberToString(c *cell.Cell) string {
	if c.IsFixnum() {
		return strconv.FormatInt(c.Ival, 10)
	}
	return strconv.FormatFloat(c.Fval, 'g', -1, 64)
}
