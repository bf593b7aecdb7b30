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

// Package digest is used to create mathematical hashes of the simulated
// board's output. Useful for regression testing.
//
// The Video type chains a SHA-1 value from frame to frame. Each frame's value
// is computed from the previous value, the contents of the panel and the
// bytes sent over the serial line during the frame. Two runs of the firmware
// with the same stimulus and preferences produce the same hash.
package digest

// Digest implementations compute a hash of the simulated output.
type Digest interface {
	Hash() string
	ResetDigest()
}
