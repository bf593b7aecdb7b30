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

// Package memory implements the memory mapped I/O window of the simulated
// SoC. The Memory type implements the mmio.Bus interface used by the
// firmware and decodes every access to the peripheral that owns the
// register.
//
// The cycle counter register is owned by the Memory type itself. Every
// access advances the counter by a fixed number of cycles, which is how time
// passes for the firmware. A read of the counter returns the value before
// the access is accounted for.
//
// Accesses that the hardware would not honour (reading a write-only
// register, writing a read-only register, or using an unmapped offset) are
// recorded as faults and logged. They never halt the simulation: a read
// returns zero and a write is discarded.
package memory
