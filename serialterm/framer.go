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

package serialterm

import (
	"github.com/accelcircle/accelcircle/firmware/accel"
)

// FrameLength is the number of bytes sent for every reading.
const FrameLength = 8

// Framer is an implementation of io.Writer. It splits the byte stream into
// readings and calls the onFrame function for every one.
//
// A group of bytes is only accepted if every magnitude byte matches the raw
// byte before it. If a group is not valid the first byte is dropped and the
// search continues from the next byte. This synchronises the Framer with the
// byte pairs of a stream that is joined part way through. The stream does not
// mark the start of a reading so lanes will be rotated if the stream is
// joined between pairs.
type Framer struct {
	buf     []byte
	onFrame func(accel.Reading) error

	frames  int
	dropped int
}

// NewFramer is the preferred method of initialisation for the Framer type.
func NewFramer(onFrame func(accel.Reading) error) *Framer {
	return &Framer{
		buf:     make([]byte, 0, FrameLength*2),
		onFrame: onFrame,
	}
}

// Write implements the io.Writer interface.
func (f *Framer) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)

	for len(f.buf) >= FrameLength {
		r, ok := frame(f.buf[:FrameLength])
		if !ok {
			f.buf = f.buf[1:]
			f.dropped++
			continue // for loop
		}

		f.buf = f.buf[FrameLength:]
		f.frames++

		if f.onFrame != nil {
			if err := f.onFrame(r); err != nil {
				return len(p), err
			}
		}
	}

	return len(p), nil
}

// Stats returns the number of readings found and the number of bytes dropped
// while synchronising with the stream.
func (f *Framer) Stats() (frames int, dropped int) {
	return f.frames, f.dropped
}

// Pending returns the number of bytes waiting for the rest of a reading.
func (f *Framer) Pending() int {
	return len(f.buf)
}

// decode eight bytes into a reading. returns false if the bytes are not a
// valid reading.
func frame(b []byte) (accel.Reading, bool) {
	word := uint32(b[0])<<24 | uint32(b[2])<<16 | uint32(b[4])<<8 | uint32(b[6])
	r := accel.Decode(word)
	return r, r.Serial() == [FrameLength]byte(b)
}
