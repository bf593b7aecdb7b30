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

//go:build tinygo

// Device runs the firmware on the board. Build with tinygo for the target
// processor of the SoC.
package main

import (
	"github.com/accelcircle/accelcircle/firmware"
	"github.com/accelcircle/accelcircle/firmware/mmio"
)

func main() {
	firmware.NewFirmware(mmio.Device{}, firmware.DefaultConfig()).Run(nil)
}
