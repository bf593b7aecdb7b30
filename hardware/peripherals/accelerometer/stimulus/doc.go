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

// Package stimulus provides the sources of readings for the simulated
// accelerometer.
//
// Constant returns the same word every frame. RandomWalk moves each axis by
// a small random amount every frame. Trace plays back samples from a WAV or
// MP3 file, one channel per lane. Script calls the function "reading" in a
// Lua script.
//
// A stimulus can be described by a string, which is how it is stored in the
// preferences file and given on the command line:
//
//	constant:0x00100000
//	walk
//	walk:8
//	trace:/path/to/file.wav
//	trace:/path/to/file.mp3@50
//	script:/path/to/file.lua
//
// The number after a walk is the largest step in one frame. The number after
// the @ of a trace is the number of frames per second; without it one sample
// is used per frame.
package stimulus
