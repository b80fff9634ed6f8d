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

// Package prim registers cellscheme's built-in PROC procedures: arithmetic,
// lists, strings, vectors, bytevectors, characters, type predicates, and
// I/O. Each function here is grounded on spec.md §4.6/§4.7 and TinyScheme's
// static opexe dispatch tables (scheme.c), generalized to Prim records
// installed at Machine construction time rather than a compile-time array
// indexed by enum.
package prim

import "github.com/cellscheme/cellscheme/eval"

// Install registers every built-in procedure on m. Called once by
// interp.New after the Machine itself is constructed.
func Install(m *eval.Machine) {
	installArith(m)
	installList(m)
	installString(m)
	installVector(m)
	installBytevector(m)
	installChar(m)
	installPredicates(m)
	installIO(m)
}
