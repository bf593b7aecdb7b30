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

// Package addresses contains the memory map of the SoC: the base of the
// memory mapped I/O window and the offset, access mode and canonical name of
// every peripheral register.
//
// The Register type is used by both the firmware (to address the device) and
// the simulated hardware (to decode accesses). The Canonical map is used for
// logging and for the disassembly of recorded transactions. The Registers
// slice lists every register in ascending offset order.
package addresses
