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

package accel

import (
	"fmt"

	"github.com/accelcircle/accelcircle/firmware/uart"
)

// Lane identifies a byte of the accelerometer word by its index, with zero
// being the least significant byte.
type Lane int

// List of valid Lane values.
const (
	Z           Lane = 0
	Y           Lane = 1
	X           Lane = 2
	Temperature Lane = 3
)

func (l Lane) String() string {
	switch l {
	case Z:
		return "Z"
	case Y:
		return "Y"
	case X:
		return "X"
	case Temperature:
		return "T"
	}
	return "?"
}

// Lanes in the order they are decoded and transmitted.
var Lanes = [4]Lane{Temperature, X, Y, Z}

// Reading is a decoded accelerometer word. The Raw and Magnitude arrays are
// ordered most significant lane first.
type Reading struct {
	Word      uint32
	Raw       [4]uint8
	Magnitude [4]uint8

	// sum of the four magnitudes
	Intensity uint32

	// each magnitude left in the position of its lane
	Packed uint32
}

// Decode the accelerometer word.
func Decode(word uint32) Reading {
	r := Reading{Word: word}

	for n, i := 0, 24; i >= 0; n, i = n+1, i-8 {
		r.Raw[n] = uint8(word >> uint(i))

		signed := int32((word << uint(24-i)) & 0xff000000)
		if signed < 0 {
			signed = -signed
		}

		r.Magnitude[n] = uint8(uint32(signed) >> 24)
		r.Intensity += uint32(r.Magnitude[n])
		r.Packed |= uint32(signed) >> uint(24-i)
	}

	return r
}

// Lane returns the raw and magnitude bytes of the lane.
func (r Reading) Lane(l Lane) (raw uint8, magnitude uint8) {
	n := 3 - int(l)
	return r.Raw[n], r.Magnitude[n]
}

// Signed returns the signed value of the lane.
func (r Reading) Signed(l Lane) int8 {
	raw, _ := r.Lane(l)
	return int8(raw)
}

// Serial returns the eight bytes mirrored over the serial link. For each lane
// most significant first, the raw byte is followed by the magnitude byte.
func (r Reading) Serial() [8]uint8 {
	var s [8]uint8
	for n := range r.Raw {
		s[n*2] = r.Raw[n]
		s[n*2+1] = r.Magnitude[n]
	}
	return s
}

func (r Reading) String() string {
	return fmt.Sprintf("%08x T%+d X%+d Y%+d Z%+d (%d)", r.Word,
		r.Signed(Temperature), r.Signed(X), r.Signed(Y), r.Signed(Z), r.Intensity)
}

// Mirror transmits the serial bytes of the reading. The ready flag of the
// transmitter is polled before every byte.
func Mirror(tx uart.Transmitter, r Reading) {
	s := r.Serial()
	uart.SendAll(tx, s[:])
}
