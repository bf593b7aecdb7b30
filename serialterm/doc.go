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

// Package serialterm decodes and displays the serial output of the firmware.
//
// The firmware mirrors every accelerometer reading as eight bytes: for each
// lane, most significant first, the raw byte followed by its magnitude. The
// Framer type finds reading boundaries in the byte stream and the Console
// type prints the decoded readings. The Port type opens the serial device of
// a real board.
package serialterm
