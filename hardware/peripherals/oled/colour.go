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

package oled

import (
	"image/color"

	fwoled "github.com/accelcircle/accelcircle/firmware/oled"
)

// expand an n bit value to 8 bits.
func expand(v uint32, bits uint) uint8 {
	max := uint32(1)<<bits - 1
	return uint8((v & max) * 255 / max)
}

// Decode the data register value according to the colour depth of the mode.
func Decode(mode fwoled.Mode, data uint32) color.RGBA {
	switch mode.Depth() {
	case fwoled.Colour7:
		return color.RGBA{
			R: expand(data>>5, 2),
			G: expand(data>>2, 3),
			B: expand(data, 2),
			A: 0xff,
		}
	case fwoled.Colour16:
		return color.RGBA{
			R: expand(data>>11, 5),
			G: expand(data>>5, 6),
			B: expand(data, 5),
			A: 0xff,
		}
	}

	return color.RGBA{
		R: uint8(data >> 16),
		G: uint8(data >> 8),
		B: uint8(data),
		A: 0xff,
	}
}
