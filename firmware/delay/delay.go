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

package delay

import (
	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Counter is a free-running cycle counter.
type Counter interface {
	Cycles() uint32
}

// Elapsed returns the number of cycles between start and now, modulo 2^32.
func Elapsed(start, now uint32) uint32 {
	return now - start
}

// Expired returns true if at least the given number of cycles have passed
// between start and now.
func Expired(start, now, cycles uint32) bool {
	return Elapsed(start, now) >= cycles
}

// Delay busy-waits until the counter has advanced by at least the given
// number of cycles. It never yields and cannot be cancelled. A counter that
// never advances stalls the caller forever.
func Delay(counter Counter, cycles uint32) {
	start := counter.Cycles()
	for !Expired(start, counter.Cycles(), cycles) {
	}
}

// BusCounter reads the cycle counter register of the SoC.
type BusCounter struct {
	Bus mmio.Bus
}

// Cycles implements the Counter interface.
func (c BusCounter) Cycles() uint32 {
	return c.Bus.Read(addresses.CycleCount)
}

// Masked adapts a counter that is narrower than 32 bits. The count is
// shifted to the top of the word so that the wraparound of the narrow
// counter coincides with the wraparound of uint32 arithmetic. Cycles are
// consequently scaled by 2^(32-Width) and a delay with a Masked counter
// should be requested with Scale().
type Masked struct {
	Counter Counter
	Width   int
}

func (m Masked) shift() uint {
	if m.Width <= 0 || m.Width >= 32 {
		return 0
	}
	return uint(32 - m.Width)
}

// Cycles implements the Counter interface.
func (m Masked) Cycles() uint32 {
	return m.Counter.Cycles() << m.shift()
}

// Scale converts a number of counter cycles into the units returned by
// Cycles(). The number of cycles must be less than 2^Width.
func (m Masked) Scale(cycles uint32) uint32 {
	return cycles << m.shift()
}

// Fits returns true if a counter of the given width can measure the number of
// cycles. A width of zero is the same as 32.
func Fits(cycles uint32, width int) bool {
	if width <= 0 || width >= 32 {
		return true
	}
	return cycles < 1<<uint(width)
}

// ElapsedWidth returns the number of cycles between start and now for a
// counter of the given width.
func ElapsedWidth(start, now uint32, width int) uint32 {
	if width <= 0 || width >= 32 {
		return now - start
	}
	return (now - start) & (1<<uint(width) - 1)
}
