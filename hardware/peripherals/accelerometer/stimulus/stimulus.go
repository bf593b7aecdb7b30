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
	"strconv"
	"strings"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/hardware/peripherals/accelerometer"
)

// Sentinal error patterns.
const (
	UnknownStimulus = "stimulus: unknown stimulus (%s)"
	BadStimulus     = "stimulus: %s: %v"
)

// Pack four signed lane values into an accelerometer word.
func Pack(temperature, x, y, z int8) uint32 {
	return uint32(uint8(temperature))<<24 | uint32(uint8(x))<<16 | uint32(uint8(y))<<8 | uint32(uint8(z))
}

// clamp a value to the range of a signed byte.
func clamp(v int) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

// Parse a stimulus description. See the package documentation for the
// format.
func Parse(env *environment.Environment, description string) (accelerometer.Stimulus, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(description), ":")

	switch strings.ToLower(kind) {
	case "constant":
		w, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return nil, curated.Errorf(BadStimulus, kind, err)
		}
		return NewConstant(uint32(w)), nil

	case "walk":
		step := 4
		if arg != "" {
			var err error
			step, err = strconv.Atoi(arg)
			if err != nil {
				return nil, curated.Errorf(BadStimulus, kind, err)
			}
		}
		return NewRandomWalk(env, step), nil

	case "trace":
		fn, rate, found := strings.Cut(arg, "@")
		var fps float64
		if found {
			var err error
			fps, err = strconv.ParseFloat(rate, 64)
			if err != nil {
				return nil, curated.Errorf(BadStimulus, kind, err)
			}
		}
		return NewTrace(env, fn, fps)

	case "script":
		return NewScript(env, arg)
	}

	return nil, curated.Errorf(UnknownStimulus, description)
}
