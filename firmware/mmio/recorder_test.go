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

package mmio_test

import (
	"strings"
	"testing"

	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/test"
)

// registers is the simplest possible bus. reads return the last value
// written.
type registers map[addresses.Register]uint32

func (r registers) Read(reg addresses.Register) uint32 {
	return r[reg]
}

func (r registers) Write(reg addresses.Register, value uint32) {
	r[reg] = value
}

func TestRecorder(t *testing.T) {
	regs := registers{addresses.AccelData: 0x00100000}
	rec := mmio.NewRecorder(regs)

	v := rec.Read(addresses.AccelData)
	test.ExpectEquality(t, v, uint32(0x00100000))
	rec.Write(addresses.SevenSeg, v)
	rec.Write(addresses.LED, 0xff)

	tr := rec.Transactions()
	test.DemandEquality(t, len(tr), 3)
	test.ExpectEquality(t, tr[0], mmio.Transaction{Register: addresses.AccelData, Value: 0x00100000})
	test.ExpectEquality(t, tr[1], mmio.Transaction{Register: addresses.SevenSeg, Write: true, Value: 0x00100000})
	test.ExpectEquality(t, regs[addresses.LED], uint32(0xff))

	test.ExpectEquality(t, len(rec.Filter(addresses.SevenSeg)), 1)
	test.ExpectSuccess(t, strings.HasPrefix(rec.String(), "ACCEL_DATA"))
	test.ExpectEquality(t, tr[1].String(), "SEVENSEG       <- 00100000")

	rec.Reset()
	test.ExpectEquality(t, len(rec.Transactions()), 0)
}
