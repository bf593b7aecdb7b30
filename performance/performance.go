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
	"fmt"
	"io"
	"time"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/hardware"
)

// Check the performance of the simulation with the SoC in its current state.
//
// The simulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, soc *hardware.SoC, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	fw, err := soc.NewFirmware()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	divBits := soc.Env.Prefs.ClockDivBits.Get().(int)

	startFrame := soc.CurrentFrame()
	startCycles := soc.Counter.Total()
	start := time.Now()

	runner := func() error {
		return soc.Run(fw, 0, func(_ int, _ accel.Reading) (bool, error) {
			return time.Since(start) < duration, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(start)
	numFrames := soc.CurrentFrame() - startFrame
	cycles := soc.Counter.Total() - startCycles

	fps, speed := CalcSpeed(numFrames, cycles, divBits, elapsed)
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% of board speed\n", fps, numFrames, elapsed.Seconds(), speed)))

	return nil
}
