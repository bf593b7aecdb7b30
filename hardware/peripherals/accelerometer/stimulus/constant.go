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

import "fmt"

// Constant returns the same reading every frame.
type Constant struct {
	word uint32
}

// NewConstant is the preferred method of initialisation for the Constant
// type.
func NewConstant(word uint32) *Constant {
	return &Constant{word: word}
}

func (c *Constant) String() string {
	return fmt.Sprintf("constant:%#08x", c.word)
}

// Reading implements the accelerometer.Stimulus interface.
func (c *Constant) Reading(_ int) (uint32, error) {
	return c.word, nil
}
