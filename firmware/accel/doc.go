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

// Package accel decodes the packed word read from the accelerometer and
// mirrors it over the serial link.
//
// The word carries four signed bytes. From most to least significant they
// are temperature, X, Y and Z. Each byte is converted from two's complement
// to a magnitude by moving it to the top of a 32-bit word and negating it if
// negative. The negation wraps, so a byte of 0x80 has a magnitude of 0x80.
// The intensity of a reading is the sum of the four magnitudes and is in the
// range 0 to 512.
package accel
