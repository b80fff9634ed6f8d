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

import (
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
)

const (
	defaultSegSize     = 5000
	defaultNumSegments = 10
	defaultEvalLimit   = 0 // 0 means unbounded, matching eval.Machine's zero value
)

// config holds the environment-variable-overridable startup parameters
// TinyScheme's main() reads with getenv before building its heap.
type config struct {
	SegSize     int
	NumSegments int
	EvalLimit   int64
	InitFile    string
}

// loadConfig reads CELL_SEGSIZE, CELL_NSEGMENT, EVAL_LIMIT, and
// TINYSCHEMEINIT, falling back to built-in defaults exactly as TinyScheme's
// getenv block does (SUPPLEMENTED FEATURES point 2).
func loadConfig() config {
	c := config{
		SegSize:     defaultSegSize,
		NumSegments: defaultNumSegments,
		EvalLimit:   defaultEvalLimit,
	}
	if v := os.Getenv("CELL_SEGSIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SegSize = n
		} else {
			glog.Warningf("interp: ignoring malformed CELL_SEGSIZE=%q", v)
		}
	}
	if v := os.Getenv("CELL_NSEGMENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.NumSegments = n
		} else {
			glog.Warningf("interp: ignoring malformed CELL_NSEGMENT=%q", v)
		}
	}
	if v := os.Getenv("EVAL_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			c.EvalLimit = n
		} else {
			glog.Warningf("interp: ignoring malformed EVAL_LIMIT=%q", v)
		}
	}
	c.InitFile = os.Getenv("TINYSCHEMEINIT")
	return c
}

func stdinReader() io.Reader { return os.Stdin }
func stdoutWriter() io.Writer { return os.Stdout }
