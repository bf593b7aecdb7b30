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

// Package prefs facilitates the storage of preferential values in the
// accelcircle host tools. Firmware geometry, the simulated panel, stimulus
// selection and serial settings are all stored as preference values.
//
// Preference values are created by declaring a variable of one of the types
// in this package (Bool, String, Int, Float) and adding it to a Disk
// instance with Add(). The value can then be saved to and loaded from the
// file given to NewDisk().
//
//	dsk, _ := prefs.NewDisk(fn)
//
//	var radius prefs.Int
//	_ = dsk.Add("firmware.radius", &radius)
//	_ = radius.Set(28)
//	_ = dsk.Save()
//
// Values can be overridden for a single session with the command line stack.
// A group of "key::value" pairs separated by semicolons is pushed with
// PushCommandLineStack() and consulted by Disk.Load() before the values on
// disk.
//
// Hook functions can be registered with SetHookPre() and SetHookPost(). They
// are called on every Set() whether or not the value has changed.
package prefs
