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

package raster

import (
	"fmt"

	"github.com/accelcircle/accelcircle/assert"
)

// SpanDrawer is the sink for horizontal spans. The span covers columns
// startX to endX inclusive on row y. The value of startX is never greater
// than endX.
type SpanDrawer interface {
	DrawSpan(startX, endX, y int, colour uint32)
}

// SpanFunc allows a function to be used as a SpanDrawer.
type SpanFunc func(startX, endX, y int, colour uint32)

// DrawSpan implements the SpanDrawer interface.
func (f SpanFunc) DrawSpan(startX, endX, y int, colour uint32) {
	f(startX, endX, y, colour)
}

// Span is a single horizontal run of pixels.
type Span struct {
	StartX int
	EndX   int
	Y      int
	Colour uint32
}

// Width returns the number of pixels in the span.
func (s Span) Width() int {
	return s.EndX - s.StartX + 1
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d @ %d", s.StartX, s.EndX, s.Y)
}

// Circle describes a filled circle.
type Circle struct {
	CentreX int
	CentreY int
	Radius  int
	Colour  uint32
}

// Fill the circle with spans sent to the SpanDrawer.
func (c Circle) Fill(d SpanDrawer) {
	FillCircle(c.CentreX, c.CentreY, c.Radius, c.Colour, d)
}

// Spans returns the spans of the circle in the order they are emitted.
func Spans(c Circle) []Span {
	spans := make([]Span, 0, 2*c.Radius+1)
	c.Fill(SpanFunc(func(startX, endX, y int, colour uint32) {
		spans = append(spans, Span{StartX: startX, EndX: endX, Y: y, Colour: colour})
	}))
	return spans
}

// FillCircle fills the circle at the centre point with the colour. The
// radius must not be negative. A radius of zero results in a single span of
// one pixel.
func FillCircle(centreX, centreY, radius int, colour uint32, d SpanDrawer) {
	assert.Precondition(radius >= 0, "raster: negative radius (%d)", radius)

	x := radius
	y := 0
	radiusError := 1 - x

	for x >= y {
		// the diameter row is drawn once
		d.DrawSpan(centreX-x, centreX+x, centreY+y, colour)
		if y != 0 {
			d.DrawSpan(centreX-x, centreX+x, centreY-y, colour)
		}

		y++

		if radiusError < 0 {
			radiusError += 2*y + 1
		} else {
			// x is about to step inwards. the column just completed is
			// drawn as the cap rows beyond the diagonal
			if x >= y {
				d.DrawSpan(centreX-y+1, centreX+y-1, centreY+x, colour)
				d.DrawSpan(centreX-y+1, centreX+y-1, centreY-x, colour)
			}
			x--
			radiusError += 2 * (y - x + 1)
		}
	}
}
