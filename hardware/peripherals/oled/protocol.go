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

package oled

// PixelRenderer implementations display, or otherwise work with, the pixels
// committed to the panel. For example digest.Video and the sdlscreen
// package.
type PixelRenderer interface {
	// NewFrame is called at the start of every frame. The panel retains its
	// contents between frames so renderers should not clear their own
	// copy of the display.
	NewFrame(frameNum int) error

	// SetPixel is called for every committed pixel that is inside the panel.
	SetPixel(x, y int, red, green, blue byte) error

	// EndRendering is called when the simulation is ending. The renderer
	// should release any resources.
	EndRendering() error
}
