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

// Package firmware is the main loop of the accelcircle firmware. Each frame
// reads the accelerometer, shows the raw word on the seven segment display,
// mirrors the decoded bytes over the serial link, fills a circle on the OLED
// panel with a colour derived from the intensity and then waits for a fixed
// number of counter cycles.
//
// The firmware reaches the hardware only through an mmio.Bus. On the device
// this is mmio.Device (see cmd/device). On the host it is the simulated
// memory of the hardware package.
package firmware
