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

// Package counter implements the free-running cycle counter of the SoC. The
// counter has a configurable width and wraps to zero after its maximum value.
package counter

import (
	"fmt"

	"github.com/accelcircle/accelcircle/curated"
)

// Sentinal error returned by NewCounter().
const UnsupportedWidth = "counter: unsupported width (%d)"

// Counter is a free-running counter of between 1 and 32 bits.
type Counter struct {
	width int
	mask  uint32
	value uint32

	// total number of cycles since creation. not subject to wraparound
	total uint64
}

// NewCounter is the preferred method of initialisation for the Counter type.
func NewCounter(width int, start uint32) (*Counter, error) {
	if width < 1 || width > 32 {
		return nil, curated.Errorf(UnsupportedWidth, width)
	}

	c := &Counter{width: width}
	if width == 32 {
		c.mask = 0xffffffff
	} else {
		c.mask = 1<<uint(width) - 1
	}
	c.value = start & c.mask

	return c, nil
}

func (c *Counter) String() string {
	return fmt.Sprintf("%0*x", (c.width+3)/4, c.value)
}

// Width returns the width of the counter in bits.
func (c *Counter) Width() int {
	return c.width
}

// Step the counter by n cycles.
func (c *Counter) Step(n uint32) {
	c.value = (c.value + n) & c.mask
	c.total += uint64(n)
}

// Cycles returns the current value of the counter. It implements the
// delay.Counter interface.
func (c *Counter) Cycles() uint32 {
	return c.value
}

// Total returns the number of cycles counted since the counter was created.
func (c *Counter) Total() uint64 {
	return c.total
}

// Reset the counter to the start value.
func (c *Counter) Reset(start uint32) {
	c.value = start & c.mask
	c.total = 0
}
