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

// Package assert checks preconditions that the firmware documents but does not
// validate at runtime. When compiled with the "assertions" build tag a failed
// precondition panics. Otherwise the functions are stubbed and cost nothing,
// which is what the device build wants.
package assert
