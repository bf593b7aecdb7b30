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

package serialterm_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/serialterm"
	"github.com/accelcircle/accelcircle/test"
)

func stream(words ...uint32) []byte {
	var b []byte
	for _, w := range words {
		s := accel.Decode(w).Serial()
		b = append(b, s[:]...)
	}
	return b
}

func TestFramer(t *testing.T) {
	var words []uint32
	f := serialterm.NewFramer(func(r accel.Reading) error {
		words = append(words, r.Word)
		return nil
	})

	b := stream(0x00100000, 0x01fe7f80)

	// bytes arrive in dribs and drabs
	for i := range b {
		n, err := f.Write(b[i : i+1])
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, n, 1)
	}

	test.DemandEquality(t, len(words), 2)
	test.ExpectEquality(t, words[0], uint32(0x00100000))
	test.ExpectEquality(t, words[1], uint32(0x01fe7f80))

	frames, dropped := f.Stats()
	test.ExpectEquality(t, frames, 2)
	test.ExpectEquality(t, dropped, 0)
	test.ExpectEquality(t, f.Pending(), 0)
}

func TestFramerSync(t *testing.T) {
	var words []uint32
	f := serialterm.NewFramer(func(r accel.Reading) error {
		words = append(words, r.Word)
		return nil
	})

	// join the stream part way through a byte pair. lanes are rotated
	// because the stream does not mark the start of a reading
	b := stream(0x05060708, 0x0a0b0c0d, 0x01020304)
	f.Write(b[1:])

	test.DemandEquality(t, len(words), 2)
	test.ExpectEquality(t, words[0], uint32(0x0607080a))
	test.ExpectEquality(t, words[1], uint32(0x0b0c0d01))

	_, dropped := f.Stats()
	test.ExpectEquality(t, dropped, 1)
	test.ExpectEquality(t, f.Pending(), 6)
}

func TestFramerError(t *testing.T) {
	f := serialterm.NewFramer(func(r accel.Reading) error {
		return fmt.Errorf("stop")
	})
	_, err := f.Write(stream(0))
	test.ExpectFailure(t, err)
}

func TestMonitor(t *testing.T) {
	con := serialterm.NewConsole(&bytes.Buffer{})
	f := serialterm.NewFramer(con.Reading)

	err := serialterm.Monitor(context.Background(), bytes.NewReader(stream(1, 2, 3)), f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.Count(), 3)

	// a cancelled context ends the monitor before anything is read
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = serialterm.Monitor(ctx, bytes.NewReader(stream(1, 2, 3)), f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, con.Count(), 3)
}
