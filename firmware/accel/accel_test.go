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

package accel_test

import (
	"testing"

	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/test"
)

func TestDecodeExtremes(t *testing.T) {
	r := accel.Decode(0x80000000)
	test.ExpectEquality(t, r.Raw, [4]uint8{0x80, 0, 0, 0})
	test.ExpectEquality(t, r.Magnitude, [4]uint8{0x80, 0, 0, 0})
	test.ExpectEquality(t, r.Intensity, uint32(0x80))

	r = accel.Decode(0x7f000000)
	test.ExpectEquality(t, r.Raw[0], uint8(0x7f))
	test.ExpectEquality(t, r.Magnitude[0], uint8(0x7f))
	test.ExpectEquality(t, r.Intensity, uint32(0x7f))

	r = accel.Decode(0xffffffff)
	test.ExpectEquality(t, r.Magnitude, [4]uint8{1, 1, 1, 1})
	test.ExpectEquality(t, r.Intensity, uint32(4))
	test.ExpectEquality(t, r.Packed, uint32(0x01010101))

	r = accel.Decode(0x80808080)
	test.ExpectEquality(t, r.Intensity, uint32(512))

	r = accel.Decode(0)
	test.ExpectEquality(t, r.Intensity, uint32(0))
	test.ExpectEquality(t, r.Serial(), [8]uint8{})
}

func TestDecodeSum(t *testing.T) {
	r := accel.Decode(0x01010101)
	test.ExpectEquality(t, r.Intensity, uint32(4))
	test.ExpectEquality(t, r.Magnitude, [4]uint8{1, 1, 1, 1})

	// negative Y and Z
	r = accel.Decode(0x1a05fef0)
	test.ExpectEquality(t, r.Raw, [4]uint8{0x1a, 0x05, 0xfe, 0xf0})
	test.ExpectEquality(t, r.Magnitude, [4]uint8{0x1a, 0x05, 0x02, 0x10})
	test.ExpectEquality(t, r.Intensity, uint32(0x1a+0x05+0x02+0x10))
	test.ExpectEquality(t, r.Packed, uint32(0x1a050210))
	test.ExpectEquality(t, r.Signed(accel.Y), int8(-2))
	test.ExpectEquality(t, r.Signed(accel.Z), int8(-16))
}

func TestDecodeAllLanes(t *testing.T) {
	// every byte value in every lane
	for _, l := range accel.Lanes {
		for b := 0; b < 256; b++ {
			word := uint32(b) << (uint(l) * 8)
			r := accel.Decode(word)

			raw, mag := r.Lane(l)
			test.ExpectEquality(t, raw, uint8(b), l, b)

			expected := int(int8(b))
			if expected < 0 {
				expected = -expected
			}
			test.ExpectEquality(t, int(mag), expected, l, b)
			test.ExpectEquality(t, r.Intensity, uint32(expected), l, b)
		}
	}
}

func TestSerial(t *testing.T) {
	r := accel.Decode(0x00100000)
	test.ExpectEquality(t, r.Serial(), [8]uint8{0x00, 0x00, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00})
	test.ExpectEquality(t, r.Intensity, uint32(16))

	r = accel.Decode(0x8081ff7f)
	test.ExpectEquality(t, r.Serial(), [8]uint8{0x80, 0x80, 0x81, 0x7f, 0xff, 0x01, 0x7f, 0x7f})
}

func TestString(t *testing.T) {
	r := accel.Decode(0x1a05fef0)
	test.ExpectEquality(t, r.String(), "1a05fef0 T+26 X+5 Y-2 Z-16 (49)")
}

// transmitter is ready on every other poll and records the order of events.
type transmitter struct {
	events []string
	toggle bool
	sent   []uint8
}

func (tx *transmitter) Ready() bool {
	tx.toggle = !tx.toggle
	tx.events = append(tx.events, "poll")
	return !tx.toggle
}

func (tx *transmitter) Transmit(b uint8) {
	tx.events = append(tx.events, "tx")
	tx.sent = append(tx.sent, b)
}

func TestMirror(t *testing.T) {
	tx := &transmitter{}
	accel.Mirror(tx, accel.Decode(0x00100000))

	test.ExpectEquality(t, len(tx.sent), 8)
	test.ExpectEquality(t, [8]uint8(tx.sent), [8]uint8{0x00, 0x00, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00})

	// every transmission is immediately preceded by a successful poll
	test.ExpectEquality(t, len(tx.events), 24)
	for i, e := range tx.events {
		if e == "tx" {
			test.ExpectEquality(t, tx.events[i-1], "poll", i)
		}
	}
}
