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

package main

import (
	"os"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/interp"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func errNoArgs(name string) error {
	return errors.Errorf("%s: expected no arguments", name)
}

// consoleSize reports stdout's terminal width and height, grounded on
// cmd/retro/term.go's ioctl(TIOCGWINSZ) pattern but going through
// golang.org/x/sys/unix.IoctlGetWinsize instead of a hand-rolled
// syscall.Syscall(SYS_IOCTL, ...) call. Returns 0, 0 on any error
// (redirected stdout, non-terminal, unsupported platform).
func consoleSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}

// registerTermPrimitives installs (console-width) and (console-height),
// letting Scheme code query the terminal geometry the REPL itself never
// needs (the REPL stays line-buffered, see repl's doc comment).
func registerTermPrimitives(in *interp.Interpreter) {
	in.RegisterForeign("console-width", func(args *cell.Cell) (*cell.Cell, error) {
		if !args.IsNil() {
			return nil, errNoArgs("console-width")
		}
		w, _ := consoleSize()
		return in.Heap.NewFixnum(int64(w)), nil
	})
	in.RegisterForeign("console-height", func(args *cell.Cell) (*cell.Cell, error) {
		if !args.IsNil() {
			return nil, errNoArgs("console-height")
		}
		_, h := consoleSize()
		return in.Heap.NewFixnum(int64(h)), nil
	})
}
