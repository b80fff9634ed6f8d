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

// Package port implements the unified port model of spec.md §4.7: file- and
// string-backed input/output ports with EOF tracking, a per-port line
// counter, and a single-slot character pushback for read-char/peek-char.
//
// Grounded on db47h/ngaro's vm/io_helpers.go rune-reader/rune-writer
// adapters (runeReaderWrapper, runeWriterWrapper, multiRuneReader), which
// show the same "wrap whatever io.Reader/io.Writer you were given" pattern;
// here it is generalized to Scheme's single Port type covering both
// directions and both backing stores instead of ngaro's separate VM input
// stack and output writer.
package port
