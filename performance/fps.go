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

package performance

import (
	"time"

	"github.com/accelcircle/accelcircle/hardware/clocks"
)

// CalcSpeed takes the number of frames, the number of counter cycles and the
// wall clock duration and returns the frames-per-second and the speed of the
// simulation as a percentage of the real board's speed.
func CalcSpeed(numFrames int, cycles uint64, divBits int, duration time.Duration) (fps float64, speed float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	speed = 100 * clocks.Duration(cycles, divBits).Seconds() / duration.Seconds()
	return fps, speed
}
