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

package addresses

import "fmt"

// memory layout of the SoC. the MMIO window immediately follows data memory.
const (
	DMEMBase = uint32(0x2000)
	DMEMSize = uint32(0x400)
	Base     = DMEMBase + DMEMSize

	// size of the MMIO window in bytes
	WindowSize = uint32(0x40)
)

// Register is the byte offset of a peripheral register from Base. All
// registers are 32 bits wide and word aligned.
type Register uint32

// List of peripheral registers.
const (
	LED         Register = 0x00
	DIP         Register = 0x04
	PB          Register = 0x08
	UART        Register = 0x0c
	UARTRXValid Register = 0x10
	UARTTXReady Register = 0x14
	SevenSeg    Register = 0x18
	CycleCount  Register = 0x1c
	OLEDCol     Register = 0x20
	OLEDRow     Register = 0x24
	OLEDData    Register = 0x28
	OLEDCtrl    Register = 0x2c
	AccelData   Register = 0x30
	AccelDReady Register = 0x34
)

// Registers lists all peripheral registers in ascending offset order.
var Registers = []Register{
	LED, DIP, PB, UART, UARTRXValid, UARTTXReady, SevenSeg, CycleCount,
	OLEDCol, OLEDRow, OLEDData, OLEDCtrl, AccelData, AccelDReady,
}

// Access describes the direction(s) in which a register may be used.
type Access int

// List of valid Access values.
const (
	NoAccess Access = iota
	ReadOnly
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	case ReadWrite:
		return "RW"
	}
	return "--"
}

// Readable returns true if the access mode allows reading.
func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite
}

// Writable returns true if the access mode allows writing.
func (a Access) Writable() bool {
	return a == WriteOnly || a == ReadWrite
}

type info struct {
	name   string
	access Access
}

// Canonical names and access modes for every register.
var canonical = map[Register]info{
	LED:         {"LED", WriteOnly},
	DIP:         {"DIP", ReadOnly},
	PB:          {"PB", ReadOnly},
	UART:        {"UART", ReadWrite},
	UARTRXValid: {"UART_RX_VALID", ReadOnly},
	UARTTXReady: {"UART_TX_READY", ReadOnly},
	SevenSeg:    {"SEVENSEG", WriteOnly},
	CycleCount:  {"CYCLECOUNT", ReadOnly},
	OLEDCol:     {"OLED_COL", WriteOnly},
	OLEDRow:     {"OLED_ROW", WriteOnly},
	OLEDData:    {"OLED_DATA", WriteOnly},
	OLEDCtrl:    {"OLED_CTRL", WriteOnly},
	AccelData:   {"ACCEL_DATA", ReadOnly},
	AccelDReady: {"ACCEL_DREADY", ReadOnly},
}

// Access returns the access mode of the register. Unmapped offsets return
// NoAccess.
func (r Register) Access() Access {
	if i, ok := canonical[r]; ok {
		return i.access
	}
	return NoAccess
}

// Mapped returns true if the offset is a peripheral register.
func (r Register) Mapped() bool {
	_, ok := canonical[r]
	return ok
}

// Address returns the absolute address of the register.
func (r Register) Address() uint32 {
	return Base + uint32(r)
}

func (r Register) String() string {
	if i, ok := canonical[r]; ok {
		return i.name
	}
	return fmt.Sprintf("MMIO+%#02x", uint32(r))
}

// Lookup returns the register with the canonical name. The search is case
// sensitive.
func Lookup(name string) (Register, bool) {
	for r, i := range canonical {
		if i.name == name {
			return r, true
		}
	}
	return 0, false
}
