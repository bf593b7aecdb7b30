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

// Package ansi defines the small set of ANSI control sequences used when
// printing serial traffic and log entries to a terminal.
package ansi

import "fmt"

// ansi colours.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// NormalPen resets all attributes.
const NormalPen = "\033[0m"

// ClearLine erases the current line and returns the cursor to column zero.
const ClearLine = "\033[2K\r"

// Pens is the table of bright colours used for text.
var Pens map[string]string

// DimPens is the table of normal intensity colours used for text.
var DimPens map[string]string

func pen(col int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[1;3%dm", col)
	}
	return fmt.Sprintf("\033[3%dm", col)
}

func init() {
	cols := map[string]int{
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	}

	Pens = make(map[string]string, len(cols))
	DimPens = make(map[string]string, len(cols))
	for k, c := range cols {
		Pens[k] = pen(c, true)
		DimPens[k] = pen(c, false)
	}
}
