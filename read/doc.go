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

// Package read implements the tokenizer of spec.md §4.3: it turns a
// port.Port's character stream into a single Token at a time (parentheses,
// dot, quote/quasiquote/unquote marks, strings, sharp literals, atoms).
// Assembling tokens into S-expressions is deliberately NOT done here: that
// is the job of package eval's RDSEXPR/RDLIST/... opcodes, which consume
// Tokens one at a time so that reading shares the evaluator's dump stack
// and is interruptible by GC between any two tokens (spec.md §4.3).
//
// Grounded on the TinyScheme token()/readstrexp() state machines in
// original_source/build_tools/scheme.c, reimplemented over port.Port's
// rune reader instead of a raw C stdio FILE*.
package read
