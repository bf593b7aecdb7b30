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

package mmio

import "github.com/accelcircle/accelcircle/hardware/memory/addresses"

// Bus defines the operations of the register access layer. Implementations
// must perform exactly one register transaction per call.
type Bus interface {
	Read(reg addresses.Register) uint32
	Write(reg addresses.Register, value uint32)
}
