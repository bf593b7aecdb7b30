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

// Package hardware is the base package for the simulation of the SoC. The
// SoC type composes the cycle counter, the MMIO window and the peripherals,
// and runs the firmware against them one frame at a time.
//
// A frame is one iteration of the firmware main loop. At the end of every
// frame the accelerometer latches its next reading from the stimulus and the
// OLED panel notifies its renderers.
//
// The SoC is not safe for concurrent use. Host tools that run on other
// goroutines (the SDL window, the stats viewer) receive copies of the
// display through the PixelRenderer interface.
package hardware
