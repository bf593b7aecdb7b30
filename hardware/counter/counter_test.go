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

package counter_test

import (
	"testing"

	"github.com/accelcircle/accelcircle/hardware/counter"
	"github.com/accelcircle/accelcircle/test"
)

func TestWrap(t *testing.T) {
	c, err := counter.NewCounter(32, 0xfffffffc)
	test.DemandSuccess(t, err)
	c.Step(10)
	test.ExpectEquality(t, c.Cycles(), uint32(6))
	test.ExpectEquality(t, c.Total(), uint64(10))
	test.ExpectEquality(t, c.String(), "00000006")

	c, err = counter.NewCounter(8, 0x1fc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Cycles(), uint32(0xfc))
	c.Step(10)
	test.ExpectEquality(t, c.Cycles(), uint32(6))
	test.ExpectEquality(t, c.String(), "06")

	c.Reset(3)
	test.ExpectEquality(t, c.Cycles(), uint32(3))
	test.ExpectEquality(t, c.Total(), uint64(0))
}

func TestWidth(t *testing.T) {
	_, err := counter.NewCounter(0, 0)
	test.ExpectFailure(t, err)
	_, err = counter.NewCounter(33, 0)
	test.ExpectFailure(t, err)

	c, err := counter.NewCounter(1, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Width(), 1)
	c.Step(3)
	test.ExpectEquality(t, c.Cycles(), uint32(1))
}
