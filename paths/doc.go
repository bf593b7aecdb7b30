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

// Package paths contains functions to prepare paths for accelcircle
// resources: the preferences file, the regression database, screenshots,
// captured serial streams and intensity recordings.
//
// The ResourcePath() function returns the correct path to the resource
// directory or file specified in the arguments. It handles the creation of
// directories as required.
//
// In development builds the resource directory is ".accelcircle" in the
// current working directory. Release builds (built with the "release" tag)
// use the user's configuration directory as returned by os.UserConfigDir().
package paths
