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

// Package accelerometer simulates the accelerometer of the board. The
// current reading is a packed word of four signed bytes (temperature, X, Y
// and Z from most to least significant) that changes once per frame when the
// next value is latched from a Stimulus.
package accelerometer

import (
	"fmt"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/logger"
)

// Stimulus is the source of accelerometer readings.
type Stimulus interface {
	fmt.Stringer

	// Reading returns the packed word for the frame.
	Reading(frame int) (uint32, error)
}

// Sentinal error returned by Latch().
const StimulusError = "accelerometer: %v"

// Accelerometer is the simulated sensor.
type Accelerometer struct {
	env      logger.Permission
	stimulus Stimulus
	word     uint32
}

// NewAccelerometer is the preferred method of initialisation for the
// Accelerometer type.
func NewAccelerometer(env logger.Permission, stimulus Stimulus) *Accelerometer {
	return &Accelerometer{
		env:      env,
		stimulus: stimulus,
	}
}

func (acc *Accelerometer) String() string {
	return fmt.Sprintf("%08x [%v]", acc.word, acc.stimulus)
}

// Stimulus returns the current stimulus.
func (acc *Accelerometer) Stimulus() Stimulus {
	return acc.stimulus
}

// AttachStimulus replaces the current stimulus. The current reading is
// unchanged until the next call to Latch().
func (acc *Accelerometer) AttachStimulus(stimulus Stimulus) {
	acc.stimulus = stimulus
	logger.Logf(acc.env, "accelerometer", "stimulus: %v", stimulus)
}

// Latch the reading for the frame from the stimulus. If there is no
// stimulus the reading is unchanged.
func (acc *Accelerometer) Latch(frame int) error {
	if acc.stimulus == nil {
		return nil
	}
	w, err := acc.stimulus.Reading(frame)
	if err != nil {
		return curated.Errorf(StimulusError, err)
	}
	acc.word = w
	return nil
}

// Data returns the current reading.
func (acc *Accelerometer) Data() uint32 {
	return acc.word
}

// Read implements the memory.Peripheral interface. Data is always ready.
func (acc *Accelerometer) Read(reg addresses.Register) (uint32, bool) {
	switch reg {
	case addresses.AccelData:
		return acc.word, true
	case addresses.AccelDReady:
		return 1, true
	}
	return 0, false
}

// Write implements the memory.Peripheral interface. The accelerometer has no
// writable registers.
func (acc *Accelerometer) Write(reg addresses.Register, value uint32) bool {
	return false
}
