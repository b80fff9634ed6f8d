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

// Package env implements the environment model of spec.md §4.4: a chain of
// ENVIRONMENT-tagged cells, the global frame a hash vector of slot buckets,
// every other frame a simple association list. Grounded on google/kati's
// var.go frame-chain-with-shadowing pattern for the overall shape, scaled
// to the hash-bucket layout spec.md requires for the global frame.
package env
