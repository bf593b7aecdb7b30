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

// Package board simulates the simple peripherals of the development board:
// the LEDs, the DIP switches, the push buttons and the eight digit seven
// segment display.
package board

import (
	"fmt"
	"strings"

	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Board holds the state of the simple peripherals.
type Board struct {
	// written by the processor
	LED      uint32
	SevenSeg uint32

	// set by the host
	DIP uint32
	PB  uint32
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) String() string {
	return fmt.Sprintf("7seg=%s led=%s", b.Digits(), b.LEDs())
}

// Digits returns the seven segment display as eight hexadecimal digits.
func (b *Board) Digits() string {
	return fmt.Sprintf("%08X", b.SevenSeg)
}

// LEDs returns the state of the sixteen LEDs as a string, most significant
// first.
func (b *Board) LEDs() string {
	s := strings.Builder{}
	for i := 15; i >= 0; i-- {
		if b.LED&(1<<uint(i)) != 0 {
			s.WriteRune('*')
		} else {
			s.WriteRune('.')
		}
	}
	return s.String()
}

// Read implements the memory.Peripheral interface.
func (b *Board) Read(reg addresses.Register) (uint32, bool) {
	switch reg {
	case addresses.DIP:
		return b.DIP, true
	case addresses.PB:
		return b.PB, true
	}
	return 0, false
}

// Write implements the memory.Peripheral interface.
func (b *Board) Write(reg addresses.Register, value uint32) bool {
	switch reg {
	case addresses.LED:
		b.LED = value
	case addresses.SevenSeg:
		b.SevenSeg = value
	default:
		return false
	}
	return true
}
