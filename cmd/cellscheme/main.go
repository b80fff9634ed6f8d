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

// Command cellscheme is a REPL and script runner for the cellscheme
// interpreter, a thin collaborator over package interp the way cmd/retro is
// a thin collaborator over package vm.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/cellscheme/cellscheme/interp"
	"github.com/cellscheme/cellscheme/print"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

func atExit(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "cellscheme: %v\n", err)
	os.Exit(1)
}

func main() {
	var withFiles fileList
	flag.Var(&withFiles, "load", "load `filename` before entering the REPL (can be specified multiple times)")
	allowProcess := flag.Bool("allow-process", false, "register the (cmd ...) process-spawning primitive")
	quiet := flag.Bool("quiet", false, "suppress the startup banner")
	flag.Parse()

	in, err := interp.New()
	if err != nil {
		atExit(err)
	}
	defer in.Close()

	if *allowProcess {
		in.RegisterProcessPrimitive()
	}
	registerTermPrimitives(in)

	args := make([]*cell.Cell, len(flag.Args()))
	for i, a := range flag.Args() {
		args[i] = in.Heap.NewImmutableString(a)
	}
	in.DefineValue("*args*", cell.FromSlice(in.Heap, args))

	for _, f := range withFiles {
		if err := in.LoadFile(f); err != nil {
			atExit(errors.Wrapf(err, "loading %s", f))
		}
	}

	scriptFiles := flag.Args()
	if len(scriptFiles) > 0 {
		for _, f := range scriptFiles {
			if err := in.LoadFile(f); err != nil {
				atExit(errors.Wrapf(err, "running %s", f))
			}
		}
		return
	}

	if !*quiet {
		fmt.Println("cellscheme REPL. Ctrl-D to exit.")
	}
	repl(in)
}

// repl reads directly off in.Machine.CurrentInput (stdin, line-buffered by
// package port's bufio.Reader) rather than bufio.Scanner, so a form
// spanning several lines is read as one S-expression the same way loading
// a file would. `(console-width)` (registered in term.go) lets Scheme code
// query the terminal size for pretty-printing; the REPL itself stays
// unconditionally line-buffered per DESIGN.md's CLI decision.
func repl(in *interp.Interpreter) {
	fmt.Printf("> ")
	for {
		expr, err := in.Machine.ReadTopLevel(in.Machine.CurrentInput)
		if err != nil {
			glog.Warningf("cellscheme: read error: %v", err)
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			fmt.Printf("> ")
			continue
		}
		if expr == nil || expr.IsEOF() {
			break
		}
		v, err := in.Eval(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else if !v.IsNil() {
			s, err := print.Write(v)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			} else {
				fmt.Println(s)
			}
		}
		fmt.Printf("> ")
	}
	fmt.Println()
}
