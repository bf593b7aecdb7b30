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

package stimulus

import (
	"fmt"

	"github.com/accelcircle/accelcircle/environment"
)

// room temperature reported by the walk
const walkTemperature = 25

// the walk is restricted to +/- 1g with the default sensor range
const walkLimit = 64

// RandomWalk moves each axis by a random amount every frame. The sequence
// depends only on the frame number and the random seed of the environment,
// so a normalised environment always produces the same walk.
type RandomWalk struct {
	env   *environment.Environment
	step  int
	frame int
	axes  [3]int
}

// NewRandomWalk is the preferred method of initialisation for the
// RandomWalk type. The step is the largest change of an axis in one frame.
func NewRandomWalk(env *environment.Environment, step int) *RandomWalk {
	if step < 1 {
		step = 1
	}
	return &RandomWalk{
		env:   env,
		step:  step,
		frame: -1,
	}
}

func (w *RandomWalk) String() string {
	return fmt.Sprintf("walk:%d", w.step)
}

// Reading implements the accelerometer.Stimulus interface. Asking for an
// earlier frame than the previous call restarts the walk.
func (w *RandomWalk) Reading(frame int) (uint32, error) {
	if frame < w.frame {
		w.frame = -1
		w.axes = [3]int{}
	}

	for w.frame < frame {
		w.frame++
		for i := range w.axes {
			d := w.env.Random.Intn(w.frame*len(w.axes)+i, 2*w.step+1) - w.step
			w.axes[i] += d
			if w.axes[i] > walkLimit {
				w.axes[i] = walkLimit
			} else if w.axes[i] < -walkLimit {
				w.axes[i] = -walkLimit
			}
		}
	}

	return Pack(walkTemperature, clamp(w.axes[0]), clamp(w.axes[1]), clamp(w.axes[2])), nil
}
