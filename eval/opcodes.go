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

// Op is an evaluator opcode, dispatched by Machine.run.
type Op int

const (
	OpHalt Op = iota // sentinel: pops back out to the host, not to another opcode

	// Reader (spec.md §4.3) - tokens are assembled into S-expressions by
	// these opcodes so that reading shares the dump stack.
	OpRdSexpr
	OpRdList
	OpRdDot
	OpRdQuote
	OpRdQQuote
	OpRdQQuoteVec
	OpRdUnquote
	OpRdUqtSp
	OpRdVec

	// Core evaluation.
	OpEval
	OpE0Args
	OpE1Args
	OpApply
	OpDomacro

	// Special forms (spec.md §4.5), each an (enter, continue...) opcode
	// pair/triple as in TinyScheme's Eval_Cycle.
	OpLambda
	OpQuote
	OpDef0
	OpDef1
	OpSet0
	OpSet1
	OpBegin
	OpIf0
	OpIf1
	OpLet0
	OpLet1
	OpLet2
	OpLet0Ast
	OpLet1Ast
	OpLet2Ast
	OpLet0Rec
	OpLet1Rec
	OpLet2Rec
	OpCond0
	OpCond1
	OpDelay
	OpAnd0
	OpAnd1
	OpOr0
	OpOr1
	OpMacro0
	OpMacro1
	OpCase0
	OpCase1
	OpQuasiquote
)

// Frame is one saved continuation on the dump stack: the registers needed
// to resume evaluation once the pushed computation returns a value.
// Grounded on TinyScheme's struct dump_stack_frame.
type Frame struct {
	Op    Op
	Args  *Cell
	Envir *Cell
	Code  *Cell
}
