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

// Package regression facilitates the regression testing of the firmware and
// the simulated hardware. By adding test results to a database, the tests
// can be rerun automatically and checked for consistency.
//
// Two types of test are supported. The frame test runs the firmware with a
// stimulus for a set number of frames and saves the digest of the panel and
// serial output to the database. The serial test saves the complete serial
// output to a log file and compares it byte for byte when the test is rerun.
// The serial test is useful when a failure needs to be explained because the
// log can be inspected directly.
//
// Entries are stored in a bolt database in the resource directory. Keys of
// tests that fail are remembered and can be rerun with the special FAILS
// key.
package regression
