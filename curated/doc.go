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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf().
//
// The pattern is remembered, which means an error can be identified later
// without resorting to string comparison of the formatted message:
//
//	const UnwritableRegister = "memory: register is not writable (%s)"
//
//	err := curated.Errorf(UnwritableRegister, "CYCLECOUNT")
//	if curated.Is(err, UnwritableRegister) {
//		...
//	}
//
// Has() is similar to Is() but looks for the pattern anywhere in the chain of
// wrapped curated errors.
//
// When an error message is produced, adjacent duplicate parts of the chain
// are removed. Parts are separated by the ": " sub-string. This means that a
// function can prefix its own context without worrying whether the error it
// received was already prefixed with the same context:
//
//	err := curated.Errorf("regression: %v", curated.Errorf("regression: entry not found"))
//
// will print as
//
//	regression: entry not found
//
// Sentinel patterns should be exported as const strings from the package that
// creates the error.
package curated
