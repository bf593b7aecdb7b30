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

package addresses_test

import (
	"testing"

	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/test"
)

func TestMap(t *testing.T) {
	test.ExpectEquality(t, addresses.Base, uint32(0x2400))
	test.ExpectEquality(t, addresses.AccelData.Address(), uint32(0x2430))
	test.ExpectEquality(t, addresses.CycleCount.Address(), uint32(0x241c))

	// registers are word aligned, ascending and inside the window
	prev := -1
	for _, r := range addresses.Registers {
		test.ExpectEquality(t, uint32(r)%4, uint32(0), r)
		test.ExpectSuccess(t, int(r) > prev, r)
		test.ExpectSuccess(t, uint32(r) < addresses.WindowSize, r)
		test.ExpectSuccess(t, r.Mapped(), r)
		prev = int(r)
	}
	test.ExpectEquality(t, len(addresses.Registers), 14)
}

func TestAccess(t *testing.T) {
	test.ExpectEquality(t, addresses.UART.Access(), addresses.ReadWrite)
	test.ExpectEquality(t, addresses.SevenSeg.Access(), addresses.WriteOnly)
	test.ExpectEquality(t, addresses.AccelData.Access(), addresses.ReadOnly)
	test.ExpectEquality(t, addresses.Register(0x38).Access(), addresses.NoAccess)

	test.ExpectSuccess(t, addresses.UART.Access().Readable())
	test.ExpectSuccess(t, addresses.UART.Access().Writable())
	test.ExpectFailure(t, addresses.OLEDCol.Access().Readable())
	test.ExpectFailure(t, addresses.CycleCount.Access().Writable())
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, addresses.UARTTXReady.String(), "UART_TX_READY")
	test.ExpectEquality(t, addresses.Register(0x3c).String(), "MMIO+0x3c")

	r, ok := addresses.Lookup("OLED_CTRL")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, addresses.OLEDCtrl)

	_, ok = addresses.Lookup("oled_ctrl")
	test.ExpectFailure(t, ok)
}
