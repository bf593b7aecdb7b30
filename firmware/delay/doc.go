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

// Package delay implements the busy-wait timing primitive of the firmware.
//
// The free-running cycle counter of the SoC wraps at the limit of its width.
// A delay is measured by taking the difference between the current count and
// the count at the start of the delay, in unsigned arithmetic of the counter
// width. The end of the delay is never computed as an absolute count, so a
// delay that straddles the wraparound point lasts exactly as long as any
// other.
package delay
