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

// Package environment provides the context for a single simulation of the
// SoC. More than one simulation can exist at once, for example when a
// regression test is run alongside an interactive session.
package environment

import (
	"github.com/accelcircle/accelcircle/hardware/preferences"
	"github.com/accelcircle/accelcircle/random"
)

// Label is used to name the environment.
type Label string

// MainSimulation is the label of the interactive (or only) simulation.
const MainSimulation = Label("")

// Environment is used to provide context for a simulation.
type Environment struct {
	Label Label

	// any randomisation required by the simulation should be retrieved
	// through this structure
	Random *random.Random

	// the simulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// is created from the global preferences file.
func NewEnvironment(label Label, frames random.Frames, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(frames),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Used for
// regression and digest runs where every run must produce the same output.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// simulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainSimulation)
}
