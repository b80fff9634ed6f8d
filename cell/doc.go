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

// Package cell implements the interpreter's heap: the tagged Cell value
// representation, a segmented free-list allocator, mark-sweep garbage
// collection, vector storage, and the symbol interning table (oblist).
//
// Every Scheme value visible to the evaluator is a *Cell or one of the
// permanently-marked singletons (Nil, True, False, EOF). Cells are never
// freed directly by client code; they become eligible for reuse only once
// a collection finds them unreachable from a registered root.
package cell
