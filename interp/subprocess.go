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
	"os/exec"

	"github.com/cellscheme/cellscheme/cell"
	"github.com/pkg/errors"
)

// RegisterProcessPrimitive installs the `cmd` FOREIGN procedure, grounded
// on TinyScheme's do_subprocess: runs its string argument through the
// platform shell, capturing combined stdout+stderr back into a Scheme
// string. Spawning an external process is security-sensitive, so this is
// opt-in — an embedder calls it explicitly rather than getting it from
// interp.New (SUPPLEMENTED FEATURES point 1).
func (in *Interpreter) RegisterProcessPrimitive() {
	in.RegisterForeign("cmd", func(args *cell.Cell) (*cell.Cell, error) {
		if !args.IsPair() || !args.Car.IsString() || !args.Cdr.IsNil() {
			return nil, errors.New("cmd: expected one string argument")
		}
		line := cell.StringValue(args.Car)
		out, err := exec.Command("/bin/sh", "-c", line).CombinedOutput()
		if err != nil {
			return nil, errors.Wrapf(err, "cmd: %q", line)
		}
		return in.Heap.NewString(string(out)), nil
	})
}
