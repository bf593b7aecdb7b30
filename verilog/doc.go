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

// Package verilog converts the hex output of the firmware build into a
// Verilog module that initialises the instruction and data memories of the
// SoC for simulation.
//
// The hex file has one 32-bit word per line. The instruction words come
// first and a line containing only DATA separates them from the data
// constants. Blank lines are ignored. For example:
//
//	00000513
//	0040006f
//	DATA
//	00100000
//
// Memory slots after the last word are set to zero by a for loop in the
// generated module.
package verilog
