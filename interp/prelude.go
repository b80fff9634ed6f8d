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

package interp

// preludeSource is cellscheme's analogue of TinyScheme's init.scm, loaded
// by New before any embedder or TINYSCHEMEINIT source. The bulk of
// TinyScheme's init.scm (list accessors, map/for-each, assoc/member
// variants) is implemented natively in package prim instead of as
// bootstrapped Scheme, so this prelude holds only the when/unless macros
// and a few small procedures (1+, 1-, last-pair, list-copy,
// call-with-output-string).
const preludeSource = `
(macro (when form)
  (list 'if (cadr form) (cons 'begin (cddr form))))

(macro (unless form)
  (list 'if (list 'not (cadr form)) (cons 'begin (cddr form))))

(define (1+ n) (+ n 1))
(define (1- n) (- n 1))

(define (last-pair lst)
  (if (pair? (cdr lst)) (last-pair (cdr lst)) lst))

(define (list-copy lst) (append lst '()))

(define call-with-output-string
  (lambda (proc)
    (let ((port (open-output-string)))
      (proc port)
      (get-output-string port))))
`
