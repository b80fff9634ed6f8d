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

// Package eval implements the opcode-dispatched, trampolined evaluator of
// spec.md §4.5: a single loop holding registers (op, args, envir, code,
// value) that dispatches on the current opcode, never recursing natively
// on user-supplied S-expressions. Control transfer between opcodes is
// either a tail jump (Goto, no stack growth) or a continuation push
// (Save) that is later resumed by Return.
//
// Grounded on db47h/ngaro's vm/core.go Run loop (switch-dispatched opcode
// interpreter over an explicit register set, defer/recover wrapping errors
// with position context) generalized from ngaro's fixed 32-opcode Forth
// machine to the Scheme opcode set named in spec.md §4.5, and on
// TinyScheme's scheme.c Eval_Cycle for the exact opcode-pair shape of each
// special form (OP_IF0/OP_IF1, OP_LET0/OP_LET1/OP_LET2, and so on).
//
// Reentrant evaluation (map/for-each callbacks, the `apply` primitive,
// force, the error hook, foreign-function callbacks, and quasiquote's nested
// unquote evaluation) goes through Machine.Eval/Machine.Apply, which save
// the current register set on a host-reentry stack and run a fresh
// trampoline to completion - this is spec.md §4.2's "host-reentry chain"
// GC root, and it is the only form of native recursion this package
// performs on user code; every other control transfer uses the dump
// stack.
package eval
