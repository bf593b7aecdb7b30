// This file is part of accelcircle.
//
// accelcircle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// accelcircle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with accelcircle.  If not, see <https://www.gnu.org/licenses/>.

//go:build assertions

package assert

import "fmt"

// Enabled is true when the package was built with the "assertions" tag.
const Enabled = true

// Precondition panics if cond is false.
func Precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("precondition failed: "+format, args...))
	}
}
