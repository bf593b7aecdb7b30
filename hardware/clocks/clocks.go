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

// Package clocks defines the constant values that describe the speed of the
// SoC. The reference clock of the board is divided by a power of two before
// reaching the processor. The cycle counter runs at the processor clock.
package clocks

import "time"

// Reference is the frequency of the board oscillator in Hz.
const Reference = 100_000_000

// DefaultDivBits is the default number of bits in the clock divider. The
// processor clock is Reference >> DefaultDivBits.
const DefaultDivBits = 5

// Processor returns the processor clock frequency in Hz for the number of
// divider bits.
func Processor(divBits int) float64 {
	if divBits < 0 {
		divBits = 0
	}
	return float64(Reference) / float64(uint64(1)<<uint(divBits))
}

// Duration returns the wall clock time taken by the number of counter cycles.
func Duration(cycles uint64, divBits int) time.Duration {
	if divBits < 0 {
		divBits = 0
	}
	return time.Duration(cycles<<uint(divBits)) * (time.Second / Reference)
}

// Wrap returns the wall clock time taken for a counter of the width to wrap
// around.
func Wrap(width int, divBits int) time.Duration {
	return Duration(uint64(1)<<uint(width), divBits)
}
