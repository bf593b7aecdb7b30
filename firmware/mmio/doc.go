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

// Package mmio is the register access layer. Every peripheral register of
// the SoC is reached through the Bus interface, one 32-bit transaction per
// call with no caching and no batching.
//
// On the device the Device type performs volatile loads and stores inside
// the MMIO window. On the host the simulated memory in hardware/memory
// implements Bus, and the Recorder type can wrap any Bus to log the exact
// sequence of transactions for inspection.
package mmio
