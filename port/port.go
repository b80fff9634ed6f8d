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

package port

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Kind is a bitmask of the directions a Port supports.
type Kind uint8

const (
	KindInput Kind = 1 << iota
	KindOutput
)

// Port is the unified input/output port of spec.md §4.7. A single type
// covers both file-backed and string-backed ports in both directions; the
// backing store is whatever io.Reader/io.Writer was supplied at
// construction, mirroring ngaro's io_helpers.go adapters generalized to
// Scheme's symmetric port model.
type Port struct {
	kind Kind
	name string
	line int

	closer io.Closer
	r      *bufio.Reader
	w      *bufio.Writer
	strOut *bytes.Buffer

	pending    rune
	hasPending bool
	eof        bool
	closed     bool
}

// Closed reports whether the port has been closed. Implements
// cell.PortHandle so the GC can finalize unreachable open ports.
func (p *Port) Closed() bool { return p.closed }

func (p *Port) IsInput() bool  { return p.kind&KindInput != 0 }
func (p *Port) IsOutput() bool { return p.kind&KindOutput != 0 }
func (p *Port) Name() string   { return p.name }
func (p *Port) Line() int      { return p.line }
func (p *Port) AtEOF() bool    { return p.eof }

// NewFileInput opens path for reading.
func NewFileInput(path string) (*Port, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &Port{kind: KindInput, name: path, r: bufio.NewReader(f), closer: f}, nil
}

// NewFileOutput creates or truncates path for writing.
func NewFileOutput(path string) (*Port, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	return &Port{kind: KindOutput, name: path, w: bufio.NewWriter(f), closer: f}, nil
}

// NewStringInput wraps s as a read-only input port (open-input-string).
func NewStringInput(s string) *Port {
	return &Port{kind: KindInput, name: "(string)", r: bufio.NewReader(strings.NewReader(s))}
}

// NewStringOutput returns a growable output port (open-output-string)
// whose accumulated text is retrieved with String.
func NewStringOutput() *Port {
	buf := &bytes.Buffer{}
	return &Port{kind: KindOutput, name: "(string)", w: bufio.NewWriter(buf), strOut: buf}
}

// WrapReader adapts an arbitrary io.Reader (e.g. os.Stdin) as an input port
// that is not closed by Close, matching spec.md's console port semantics.
func WrapReader(r io.Reader, name string) *Port {
	return &Port{kind: KindInput, name: name, r: bufio.NewReader(r)}
}

// WrapWriter adapts an arbitrary io.Writer (e.g. os.Stdout) as an output
// port that is not closed by Close.
func WrapWriter(w io.Writer, name string) *Port {
	return &Port{kind: KindOutput, name: name, w: bufio.NewWriter(w)}
}

// String returns the accumulated text of a string output port
// (get-output-string). Flushes the internal buffered writer first.
func (p *Port) String() string {
	if p.strOut == nil {
		return ""
	}
	p.w.Flush()
	return p.strOut.String()
}

// ReadRune returns the next rune, consuming a pending pushback first.
func (p *Port) ReadRune() (rune, error) {
	if p.hasPending {
		p.hasPending = false
		r := p.pending
		if r == '\n' {
			p.line++
		}
		return r, nil
	}
	r, _, err := p.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			p.eof = true
		}
		return 0, err
	}
	if r == '\n' {
		p.line++
	}
	return r, nil
}

// PeekRune returns the next rune without consuming it.
func (p *Port) PeekRune() (rune, error) {
	if p.hasPending {
		return p.pending, nil
	}
	r, _, err := p.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			p.eof = true
		}
		return 0, err
	}
	p.pending = r
	p.hasPending = true
	return r, nil
}

// UnreadRune pushes r back so the next ReadRune/PeekRune returns it again.
// Used by the reader to implement one-token lookahead.
func (p *Port) UnreadRune(r rune) {
	p.pending = r
	p.hasPending = true
}

// ReadByte reads one raw byte, bypassing rune decoding, for read-u8.
func (p *Port) ReadByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			p.eof = true
		}
		return 0, err
	}
	return b, nil
}

// PeekByte returns the next raw byte without consuming it.
func (p *Port) PeekByte() (byte, error) {
	b, err := p.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			p.eof = true
		}
		return 0, err
	}
	return b[0], nil
}

// WriteRune writes a single character.
func (p *Port) WriteRune(r rune) error {
	_, err := p.w.WriteRune(r)
	return err
}

// WriteString writes s verbatim.
func (p *Port) WriteString(s string) error {
	_, err := p.w.WriteString(s)
	return err
}

// WriteByte writes a single raw byte, for write-u8.
func (p *Port) WriteByte(b byte) error {
	return p.w.WriteByte(b)
}

// Flush flushes any buffered output.
func (p *Port) Flush() error {
	if p.w != nil {
		return p.w.Flush()
	}
	return nil
}

// Close flushes and releases the port. Closing a wrapped stdio port is a
// no-op beyond flushing, since it was never owned by the port.
func (p *Port) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	var err error
	if p.w != nil {
		err = p.w.Flush()
	}
	if p.closer != nil {
		if cerr := p.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
