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

// Package raster fills a circle with horizontal spans using the midpoint
// circle algorithm.
//
// The algorithm sweeps the octant between the horizontal diameter and the
// diagonal, emitting the full-width span for the current row and its mirror.
// Whenever the x cursor steps inwards the rows at the top and bottom caps,
// which the diagonal sweep never reaches, are filled with the columns
// completed so far. The result is exactly one span per row of the circle,
// 2*radius+1 spans in total, with no pixel visited twice.
//
// Spans are delivered to a SpanDrawer as soon as they are computed. Nothing
// is stored and nothing is clipped.
package raster
