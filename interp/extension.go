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

import "github.com/pkg/errors"

// LoadExtension corresponds to TinyScheme's (load-extension path), which
// dlopens a shared library and calls its init_ptr entry point. Go has no
// portable, unloadable equivalent: the standard library's plugin package is
// Linux/ELF-only, cannot be unloaded once loaded, and panics instead of
// erroring on ABI mismatch. Rather than fake success or silently drop the
// operation, LoadExtension always returns an error naming the limitation,
// keeping the operation present in the host API surface.
func (in *Interpreter) LoadExtension(path string) error {
	return errors.Errorf("interp: load-extension %q: not supported (no portable unloadable dynamic-library loader in Go)", path)
}
