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

// Package oled draws spans on the OLED panel through its row, column, data
// and control registers.
//
// The control register selects which of the three other registers is the
// varying register. A write to the varying register commits a pixel using
// the current values of all three. Spans are drawn by fixing two of the
// registers and writing the varying register once per pixel.
package oled

import (
	"fmt"

	"github.com/accelcircle/accelcircle/assert"
	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Dimensions of the panel in pixels.
const (
	Width  = 96
	Height = 64
)

// Mode is the value written to the control register. The low nibble selects
// the varying register and the high nibble selects the colour depth.
type Mode uint32

// Varying register selection (low nibble).
const (
	VaryData   Mode = 0x00
	VaryColumn Mode = 0x01
	VaryRow    Mode = 0x02
)

// Colour depth selection (high nibble).
const (
	Colour7  Mode = 0x00
	Colour16 Mode = 0x10
	Colour24 Mode = 0x20
)

// DefaultMode is 24-bit colour with a varying column.
const DefaultMode = Colour24 | VaryColumn

// Vary returns the varying register selection of the mode.
func (m Mode) Vary() Mode {
	return m & 0x0f
}

// Depth returns the colour depth selection of the mode.
func (m Mode) Depth() Mode {
	return m & 0xf0
}

// Bits returns the number of bits per pixel for the colour depth.
func (m Mode) Bits() int {
	switch m.Depth() {
	case Colour7:
		return 7
	case Colour16:
		return 16
	case Colour24:
		return 24
	}
	return 0
}

// Valid returns false if either nibble holds an unsupported value.
func (m Mode) Valid() bool {
	return m.Vary() <= VaryRow && m.Depth() <= Colour24 && m&^0xff == 0
}

func (m Mode) String() string {
	var v string
	switch m.Vary() {
	case VaryData:
		v = "data"
	case VaryColumn:
		v = "column"
	case VaryRow:
		v = "row"
	default:
		v = "?"
	}
	return fmt.Sprintf("%d-bit/vary %s", m.Bits(), v)
}

// ParseMode converts a string of the form returned by String() or a number
// into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, d := range []Mode{Colour7, Colour16, Colour24} {
		for _, v := range []Mode{VaryData, VaryColumn, VaryRow} {
			if (d | v).String() == s {
				return d | v, nil
			}
		}
	}

	var n uint32
	if _, err := fmt.Sscanf(s, "%v", &n); err != nil {
		return 0, fmt.Errorf("oled: unrecognised mode (%s)", s)
	}
	m := Mode(n)
	if !m.Valid() {
		return 0, fmt.Errorf("oled: unsupported mode (%#02x)", n)
	}
	return m, nil
}

// Panel implements the raster.SpanDrawer interface for the OLED panel.
type Panel struct {
	Bus  mmio.Bus
	Mode Mode
}

// NewPanel returns a Panel using the default mode.
func NewPanel(bus mmio.Bus) *Panel {
	return &Panel{Bus: bus, Mode: DefaultMode}
}

// DrawSpan implements the raster.SpanDrawer interface. The colour is written
// as is and truncated by the panel to the colour depth of the mode.
func (p *Panel) DrawSpan(startX, endX, y int, colour uint32) {
	assert.Precondition(startX <= endX, "oled: span start (%d) after end (%d)", startX, endX)

	switch p.Mode.Vary() {
	case VaryColumn:
		p.Bus.Write(addresses.OLEDRow, uint32(y))
		p.Bus.Write(addresses.OLEDCtrl, uint32(p.Mode))
		p.Bus.Write(addresses.OLEDData, colour)
		for x := startX; x <= endX; x++ {
			p.Bus.Write(addresses.OLEDCol, uint32(x))
		}

	case VaryRow:
		p.Bus.Write(addresses.OLEDCtrl, uint32(p.Mode))
		p.Bus.Write(addresses.OLEDData, colour)
		for x := startX; x <= endX; x++ {
			p.Bus.Write(addresses.OLEDCol, uint32(x))
			p.Bus.Write(addresses.OLEDRow, uint32(y))
		}

	default:
		p.Bus.Write(addresses.OLEDRow, uint32(y))
		p.Bus.Write(addresses.OLEDCtrl, uint32(p.Mode))
		for x := startX; x <= endX; x++ {
			p.Bus.Write(addresses.OLEDCol, uint32(x))
			p.Bus.Write(addresses.OLEDData, colour)
		}
	}
}

// Clear the panel by filling every row with the colour.
func (p *Panel) Clear(colour uint32) {
	for y := 0; y < Height; y++ {
		p.DrawSpan(0, Width-1, y, colour)
	}
}
