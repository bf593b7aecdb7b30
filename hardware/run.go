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

package hardware

import (
	"github.com/accelcircle/accelcircle/firmware"
	"github.com/accelcircle/accelcircle/firmware/accel"
)

// FrameCheck is called at the end of every frame with the number of the new
// frame and the reading used in the frame just completed. Returning false
// ends the run.
type FrameCheck func(frame int, r accel.Reading) (bool, error)

// Run the firmware for the number of frames. If numFrames is zero or less
// the firmware runs until frameCheck returns false. A nil frameCheck with no
// frame limit runs forever, like the device.
func (soc *SoC) Run(fw *firmware.Firmware, numFrames int, frameCheck FrameCheck) error {
	target := soc.frame + numFrames

	for numFrames <= 0 || soc.frame < target {
		r := fw.Frame()

		if err := soc.EndFrame(); err != nil {
			return err
		}

		if frameCheck != nil {
			cont, err := frameCheck(soc.frame, r)
			if err != nil {
				return err
			}
			if !cont {
				break // for loop
			}
		}
	}

	return nil
}
