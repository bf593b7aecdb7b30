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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Frames is the source of the time component of the random seed.
type Frames interface {
	CurrentFrame() int
}

// Random is a random number generator that is sensitive to the current frame
// of the simulation.
type Random struct {
	frames Frames

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frames Frames) *Random {
	return &Random{
		frames: frames,
	}
}

func (rnd *Random) rand(salt int) *rand.Rand {
	seed := int64(rnd.frames.CurrentFrame())<<16 + int64(salt)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0,n). The number is the same
// for every call in the same frame with the same salt.
func (rnd *Random) Intn(salt int, n int) int {
	return rnd.rand(salt).Intn(n)
}

// NoRewind returns a random number in the range [0,n) that is not tied to
// the frame. It should only be used for values that do not affect the
// outcome of a run.
func (rnd *Random) NoRewind(n int) int {
	return rand.Intn(n)
}
