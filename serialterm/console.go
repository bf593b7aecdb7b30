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

package serialterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/serialterm/ansi"
	"golang.org/x/term"
)

// the width of the intensity bar at maximum intensity.
const barWidth = 64

// maximum possible intensity. four lanes of magnitude 128.
const maxIntensity = 512

// Console prints decoded readings, one per line. Colour is used only when
// the output is a terminal.
type Console struct {
	out    io.Writer
	colour bool
	hex    bool
	count  int
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(out io.Writer) *Console {
	con := &Console{out: out}
	if f, ok := out.(*os.File); ok {
		con.colour = term.IsTerminal(int(f.Fd()))
	}
	return con
}

// SetColour overrides the use of colour.
func (con *Console) SetColour(colour bool) {
	con.colour = colour
}

// SetHex sets whether the serial bytes of the reading are also printed.
func (con *Console) SetHex(hex bool) {
	con.hex = hex
}

// Count returns the number of readings printed.
func (con *Console) Count() int {
	return con.count
}

func (con *Console) pen(col string) string {
	if !con.colour {
		return ""
	}
	return ansi.Pens[col]
}

func (con *Console) dimPen(col string) string {
	if !con.colour {
		return ""
	}
	return ansi.DimPens[col]
}

func (con *Console) normal() string {
	if !con.colour {
		return ""
	}
	return ansi.NormalPen
}

// lane colours in transmission order.
var laneCols = [4]string{"red", "green", "yellow", "cyan"}

// Reading prints the reading. It has the correct signature for the onFrame
// argument of NewFramer().
func (con *Console) Reading(r accel.Reading) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%s%6d%s %08x", con.dimPen("white"), con.count, con.normal(), r.Word))

	for i, l := range accel.Lanes {
		s.WriteString(fmt.Sprintf(" %s%s%+4d%s", con.pen(laneCols[i]), l, r.Signed(l), con.normal()))
	}

	s.WriteString(fmt.Sprintf(" %3d ", r.Intensity))

	n := int(r.Intensity) * barWidth / maxIntensity
	s.WriteString(con.pen("blue"))
	s.WriteString(strings.Repeat("#", n))
	s.WriteString(con.normal())

	if con.hex {
		ser := r.Serial()
		s.WriteString(fmt.Sprintf(" %s[% x]%s", con.dimPen("white"), ser[:], con.normal()))
	}

	s.WriteString("\n")
	con.count++

	_, err := io.WriteString(con.out, s.String())
	return err
}
