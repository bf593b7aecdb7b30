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

// Package limiter paces the simulation so that simulated time does not run
// ahead of wall clock time.
//
// The simulation is driven as fast as possible and then stalled with the
// Wait() function. For example (error handling removed for clarity):
//
//	lim := limiter.NewLimiter(clocks.DefaultDivBits)
//	for {
//		fw.Frame()
//		lim.Wait(soc.Counter.Total())
//	}
//
// The limiter can only slow the simulation down. If the host is not fast
// enough the simulation runs behind and Lag() reports by how much.
package limiter

import (
	"time"

	"github.com/accelcircle/accelcircle/hardware/clocks"
)

// Limiter compares the number of simulated counter cycles with the time
// elapsed since the limiter was reset.
type Limiter struct {
	divBits int

	start       time.Time
	startCycles uint64

	// the time functions can be replaced for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The divBits argument is the clock divider of the SoC.
func NewLimiter(divBits int) *Limiter {
	lim := &Limiter{
		divBits: divBits,
		now:     time.Now,
		sleep:   time.Sleep,
	}
	lim.Reset(0)
	return lim
}

// Reset the limiter. The total argument is the current value of the
// counter's cycle total.
func (lim *Limiter) Reset(total uint64) {
	lim.start = lim.now()
	lim.startCycles = total
}

// the difference between simulated time and elapsed wall clock time. a
// positive value means the simulation is ahead
func (lim *Limiter) ahead(total uint64) time.Duration {
	simulated := clocks.Duration(total-lim.startCycles, lim.divBits)
	return simulated - lim.now().Sub(lim.start)
}

// Wait until wall clock time has caught up with the simulation. Returns the
// amount of time spent waiting.
func (lim *Limiter) Wait(total uint64) time.Duration {
	d := lim.ahead(total)
	if d <= 0 {
		return 0
	}
	lim.sleep(d)
	return d
}

// Lag returns by how much the simulation is running behind wall clock time.
// Returns zero if the simulation is not behind.
func (lim *Limiter) Lag(total uint64) time.Duration {
	d := lim.ahead(total)
	if d >= 0 {
		return 0
	}
	return -d
}
