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

package mmio

import (
	"runtime/volatile"
	"unsafe"

	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Device implements the Bus interface with volatile accesses to the MMIO
// window of the SoC. The zero value is ready to use.
type Device struct{}

func (Device) reg(r addresses.Register) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(r.Address())))
}

// Read implements the Bus interface.
func (d Device) Read(r addresses.Register) uint32 {
	return d.reg(r).Get()
}

// Write implements the Bus interface.
func (d Device) Write(r addresses.Register, value uint32) {
	d.reg(r).Set(value)
}
