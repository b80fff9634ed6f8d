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

package eval

import (
	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/port"
	"github.com/cellscheme/cellscheme/read"
)

// portOf extracts the underlying port.Port from a PORT-tagged cell.
func portOf(c *Cell) *port.Port {
	h, ok := c.Ext.(*port.Port)
	if !ok {
		panic(&SchemeError{Message: "reader: not an input port"})
	}
	return h
}

// nextTok advances the lookahead token register, mirroring TinyScheme's
// sc->tok. Fetching is explicit and separate from dispatch (rdSexpr) so
// that a single lookahead token can be produced in one opcode and
// consumed by a later one, exactly as OP_RDLIST hands a freshly read
// token to OP_RDSEXPR without re-reading it.
func (m *Machine) nextTok(p *port.Port) {
	tok, err := read.Next(p)
	if err != nil {
		panic(&SchemeError{Message: err.Error()})
	}
	m.tok = tok
}

// dispatchReader assembles S-expressions out of read.Tokens using the
// opcode pairs named in spec.md §4.3 (RDSEXPR, RDLIST, RDDOT, RDQUOTE,
// RDQQUOTE, RDQQUOTEVEC, RDUNQUOTE, RDUQTSP, RDVEC), so that reading
// shares this Machine's dump stack and is interruptible by GC between any
// two tokens. Grounded on TinyScheme's scheme.c OP_RDSEXPR/OP_RDLIST/...
// block.
func (m *Machine) dispatchReader(op Op) bool {
	p := portOf(m.readSrc)
	switch op {
	case OpRdSexpr:
		return m.rdSexpr(p)
	case OpRdList:
		return m.rdList(p)
	case OpRdDot:
		m.nextTok(p)
		if m.tok.Kind != read.RParen {
			panic(&SchemeError{Message: "reader: syntax error: illegal dot expression"})
		}
		result := m.value
		for a := m.args; a.IsPair(); a = a.Cdr {
			result = m.Heap.Cons(a.Car, result)
		}
		return m.ret(result)
	case OpRdQuote:
		return m.ret(m.quoteWrap("quote", m.value))
	case OpRdQQuote:
		return m.ret(m.quoteWrap("quasiquote", m.value))
	case OpRdQQuoteVec:
		return m.ret(m.Heap.Cons(m.quoteWrap("quasiquote", m.value), cell.Nil))
	case OpRdUnquote:
		return m.ret(m.quoteWrap("unquote", m.value))
	case OpRdUqtSp:
		return m.ret(m.quoteWrap("unquote-splicing", m.value))
	case OpRdVec:
		elems := cell.ToSlice(m.value)
		vec := m.Heap.AllocVector(len(elems), cell.Nil)
		for i, e := range elems {
			vec.Vec.Set(i, e)
		}
		return m.ret(vec)
	default:
		panic(&SchemeError{Message: "reader: illegal reader opcode"})
	}
}

func (m *Machine) quoteWrap(name string, datum *Cell) *Cell {
	sym := m.Syms.Intern(m.Heap, name)
	return m.Heap.Cons(sym, m.Heap.Cons(datum, cell.Nil))
}

// enterList handles the shared tail of `(` and `#(` : fetch the token
// following the opener and either close an empty list, reject a leading
// dot, or start accumulating elements.
func (m *Machine) enterList(p *port.Port) bool {
	m.nextTok(p)
	if m.tok.Kind == read.RParen {
		return m.ret(cell.Nil)
	}
	if m.tok.Kind == read.Dot {
		panic(&SchemeError{Message: "reader: syntax error: illegal dot expression"})
	}
	m.args = cell.Nil
	m.save(OpRdList, cell.Nil, cell.Nil)
	return m.goto_(OpRdSexpr)
}

// rdSexpr implements OP_RDSEXPR: dispatch on the current lookahead token
// (m.tok), which some other opcode (rdList, or this Machine's reader
// entry point) already fetched.
func (m *Machine) rdSexpr(p *port.Port) bool {
	switch m.tok.Kind {
	case read.EOF:
		return m.ret(cell.EOF)
	case read.VecOpen:
		m.save(OpRdVec, cell.Nil, cell.Nil)
		return m.enterList(p)
	case read.LParen:
		return m.enterList(p)
	case read.Quote:
		m.save(OpRdQuote, cell.Nil, cell.Nil)
		m.nextTok(p)
		return m.goto_(OpRdSexpr)
	case read.Quasiquote:
		m.nextTok(p)
		if m.tok.Kind == read.VecOpen {
			m.save(OpRdQQuoteVec, cell.Nil, cell.Nil)
			m.tok = read.Token{Kind: read.LParen}
			return m.goto_(OpRdSexpr)
		}
		m.save(OpRdQQuote, cell.Nil, cell.Nil)
		return m.goto_(OpRdSexpr)
	case read.Unquote:
		m.save(OpRdUnquote, cell.Nil, cell.Nil)
		m.nextTok(p)
		return m.goto_(OpRdSexpr)
	case read.UnquoteSplicing:
		m.save(OpRdUqtSp, cell.Nil, cell.Nil)
		m.nextTok(p)
		return m.goto_(OpRdSexpr)
	case read.Atom:
		return m.ret(read.ParseAtom(m.Heap, m.Syms, m.tok.Text))
	case read.String:
		return m.ret(m.Heap.NewImmutableString(m.tok.Text))
	case read.SharpConst:
		v, err := read.ParseSharpConst(m.Heap, m.tok.Text)
		if err != nil {
			panic(&SchemeError{Message: err.Error()})
		}
		return m.ret(v)
	case read.RParen:
		panic(&SchemeError{Message: "reader: syntax error: unexpected )"})
	case read.Dot:
		panic(&SchemeError{Message: "reader: syntax error: unexpected ."})
	default:
		panic(&SchemeError{Message: "reader: syntax error: illegal token"})
	}
}

// rdList implements OP_RDLIST: accumulate sc->value onto sc->args and
// either continue, close the list, or switch to OP_RDDOT on a dot token.
func (m *Machine) rdList(p *port.Port) bool {
	m.args = m.Heap.Cons(m.value, m.args)
	m.nextTok(p)
	switch m.tok.Kind {
	case read.EOF:
		return m.ret(cell.EOF)
	case read.RParen:
		return m.ret(cell.Reverse(m.args))
	case read.Dot:
		m.save(OpRdDot, m.args, cell.Nil)
		m.nextTok(p)
		return m.goto_(OpRdSexpr)
	default:
		m.save(OpRdList, m.args, cell.Nil)
		return m.goto_(OpRdSexpr)
	}
}
