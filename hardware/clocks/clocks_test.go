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

package clocks_test

import (
	"testing"
	"time"

	"github.com/accelcircle/accelcircle/hardware/clocks"
	"github.com/accelcircle/accelcircle/test"
)

func TestClocks(t *testing.T) {
	test.ExpectEquality(t, clocks.Processor(0), 100e6)
	test.ExpectEquality(t, clocks.Processor(clocks.DefaultDivBits), 3.125e6)

	// one million cycles is about a third of a second
	d := clocks.Duration(1000000, clocks.DefaultDivBits)
	test.ExpectEquality(t, d, 320*time.Millisecond)

	// a 32 bit counter at the undivided reference wraps after about 43 seconds
	w := clocks.Wrap(32, 0)
	test.ExpectApproximate(t, w.Seconds(), 42.95, 0.01)
}
