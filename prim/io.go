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
	"io"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/eval"
	"github.com/cellscheme/cellscheme/port"
	"github.com/cellscheme/cellscheme/print"
	"github.com/pkg/errors"
)

func outPort(m *eval.Machine, args []*cell.Cell, idx int) (*port.Port, error) {
	if len(args) > idx {
		p, ok := args[idx].Ext.(*port.Port)
		if !ok || !args[idx].IsPort() {
			return nil, errors.New("not an output port")
		}
		return p, nil
	}
	p, ok := m.CurrentOutput.Ext.(*port.Port)
	if !ok {
		return nil, errors.New("no current output port")
	}
	return p, nil
}

func inPort(m *eval.Machine, args []*cell.Cell, idx int) (*port.Port, error) {
	if len(args) > idx {
		p, ok := args[idx].Ext.(*port.Port)
		if !ok || !args[idx].IsPort() {
			return nil, errors.New("not an input port")
		}
		return p, nil
	}
	p, ok := m.CurrentInput.Ext.(*port.Port)
	if !ok {
		return nil, errors.New("no current input port")
	}
	return p, nil
}

func installIO(m *eval.Machine) {
	eval.RegisterPrim(m, eval.Prim{Name: "write", Min: 1, Max: 2, Types: "*o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := outPort(m, args, 1)
		if err != nil {
			return nil, err
		}
		s, err := print.Write(args[0])
		if err != nil {
			return nil, err
		}
		return cell.Nil, p.WriteString(s)
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "display", Min: 1, Max: 2, Types: "*o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := outPort(m, args, 1)
		if err != nil {
			return nil, err
		}
		s, err := print.Display(args[0])
		if err != nil {
			return nil, err
		}
		return cell.Nil, p.WriteString(s)
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "newline", Min: 0, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := outPort(m, args, 0)
		if err != nil {
			return nil, err
		}
		return cell.Nil, p.WriteRune('\n')
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "write-char", Min: 1, Max: 2, Types: "co", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := outPort(m, args, 1)
		if err != nil {
			return nil, err
		}
		return cell.Nil, p.WriteRune(rune(args[0].Ival))
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "write-string", Min: 1, Max: 2, Types: "so", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := outPort(m, args, 1)
		if err != nil {
			return nil, err
		}
		return cell.Nil, p.WriteString(cell.StringValue(args[0]))
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "read-char", Min: 0, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := inPort(m, args, 0)
		if err != nil {
			return nil, err
		}
		r, err := p.ReadRune()
		if err == io.EOF {
			return cell.EOF, nil
		}
		if err != nil {
			return nil, err
		}
		return m.Heap.NewChar(r), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "peek-char", Min: 0, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := inPort(m, args, 0)
		if err != nil {
			return nil, err
		}
		r, err := p.PeekRune()
		if err == io.EOF {
			return cell.EOF, nil
		}
		if err != nil {
			return nil, err
		}
		return m.Heap.NewChar(r), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "read-line", Min: 0, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := inPort(m, args, 0)
		if err != nil {
			return nil, err
		}
		var b []rune
		for {
			r, err := p.ReadRune()
			if err == io.EOF {
				if len(b) == 0 {
					return cell.EOF, nil
				}
				break
			}
			if err != nil {
				return nil, err
			}
			if r == '\n' {
				break
			}
			b = append(b, r)
		}
		return m.Heap.NewString(string(b)), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "open-input-string", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewPort(port.NewStringInput(cell.StringValue(args[0]))), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "open-output-string", Min: 0, Max: 0, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.Heap.NewPort(port.NewStringOutput()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "get-output-string", Min: 1, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, ok := args[0].Ext.(*port.Port)
		if !ok {
			return nil, errors.New("get-output-string: not a port")
		}
		return m.Heap.NewImmutableString(p.String()), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "open-input-file", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := port.NewFileInput(cell.StringValue(args[0]))
		if err != nil {
			return nil, err
		}
		return m.Heap.NewPort(p), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "open-output-file", Min: 1, Max: 1, Types: "s", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, err := port.NewFileOutput(cell.StringValue(args[0]))
		if err != nil {
			return nil, err
		}
		return m.Heap.NewPort(p), nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "close-port", Min: 1, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		p, ok := args[0].Ext.(*port.Port)
		if !ok {
			return nil, errors.New("close-port: not a port")
		}
		return cell.Nil, p.Close()
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "close-input-port", Min: 1, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Nil, args[0].Ext.(*port.Port).Close()
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "close-output-port", Min: 1, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return cell.Nil, args[0].Ext.(*port.Port).Close()
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "input-port?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool {
		p, ok := a.Ext.(*port.Port)
		return a.IsPort() && ok && p.IsInput()
	})})
	eval.RegisterPrim(m, eval.Prim{Name: "output-port?", Min: 1, Max: 1, Types: "*", Fn: pred(func(a *cell.Cell) bool {
		p, ok := a.Ext.(*port.Port)
		return a.IsPort() && ok && p.IsOutput()
	})})

	eval.RegisterPrim(m, eval.Prim{Name: "current-input-port", Min: 0, Max: 0, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.CurrentInput, nil
	}})
	eval.RegisterPrim(m, eval.Prim{Name: "current-output-port", Min: 0, Max: 0, Types: "*", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		return m.CurrentOutput, nil
	}})

	eval.RegisterPrim(m, eval.Prim{Name: "read", Min: 0, Max: 1, Types: "o", Fn: func(m *eval.Machine, args []*cell.Cell) (*cell.Cell, error) {
		var src *cell.Cell
		if len(args) == 1 {
			src = args[0]
		} else {
			src = m.CurrentInput
		}
		v, err := m.ReadTopLevel(src)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return cell.EOF, nil
		}
		return v, nil
	}})
}
