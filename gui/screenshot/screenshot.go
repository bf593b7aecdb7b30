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

// Package screenshot saves the contents of the panel as a PNG file. The
// panel is small so the image is scaled up with nearest neighbour sampling,
// keeping the edges of every pixel sharp.
package screenshot

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/paths"
)

// DefaultScale is the scaling used by the PLAY mode screenshot key.
const DefaultScale = 4

// Scale returns a copy of the image, scaled by an integer amount.
func Scale(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save the image to the named file.
func Save(img image.Image, scale int, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	if err := png.Encode(f, Scale(img, scale)); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

// SaveUnique saves the image to a uniquely named file in the screenshots
// directory of the resource path. Returns the name of the file.
func SaveUnique(img image.Image, scale int, label string) (string, error) {
	fn, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", label)+".png")
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	// more than one screenshot can be taken in the same second
	if _, err := os.Stat(fn); err == nil {
		fn, err = paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", label+"_1")+".png")
		if err != nil {
			return "", curated.Errorf("screenshot: %v", err)
		}
	}

	return fn, Save(img, scale, fn)
}
