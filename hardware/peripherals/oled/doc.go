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

// Package oled simulates the 96x64 colour OLED panel of the board.
//
// The panel has four write-only registers: row, column, data and control.
// The low nibble of the control register selects which of the other three
// registers is the varying register. A write to the varying register
// commits the pixel at the current row and column with the current data. The
// high nibble of the control register selects the colour format of the data
// register: 7-bit RGB 2-3-2, 16-bit RGB 5-6-5 or 24-bit RGB 8-8-8. Data bits
// above the width of the format are ignored.
//
// Pixels outside the panel are ignored. Every committed pixel is forwarded
// to the attached PixelRenderer implementations.
package oled
