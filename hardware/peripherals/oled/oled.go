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

package oled

import (
	"fmt"
	"image"
	"image/color"

	fwoled "github.com/accelcircle/accelcircle/firmware/oled"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/logger"
)

// Dimensions of the panel.
const (
	Width  = fwoled.Width
	Height = fwoled.Height
)

// Panel is the simulated OLED panel.
type Panel struct {
	env logger.Permission

	row  uint32
	col  uint32
	data uint32
	mode fwoled.Mode

	fb *image.RGBA

	renderers []PixelRenderer

	// number of pixels committed inside and outside the panel
	commits    int
	outOfRange int
}

// NewPanel is the preferred method of initialisation for the Panel type. The
// panel is black at power on.
func NewPanel(env logger.Permission) *Panel {
	pnl := &Panel{
		env:  env,
		mode: fwoled.DefaultMode,
		fb:   image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	pnl.Reset()
	return pnl
}

func (pnl *Panel) String() string {
	return fmt.Sprintf("row=%d col=%d data=%06x mode=%v", pnl.row, pnl.col, pnl.data, pnl.mode)
}

// Reset the panel to black and the registers to zero.
func (pnl *Panel) Reset() {
	for i := 0; i < len(pnl.fb.Pix); i += 4 {
		pnl.fb.Pix[i] = 0
		pnl.fb.Pix[i+1] = 0
		pnl.fb.Pix[i+2] = 0
		pnl.fb.Pix[i+3] = 0xff
	}
	pnl.row = 0
	pnl.col = 0
	pnl.data = 0
	pnl.mode = fwoled.DefaultMode
	pnl.commits = 0
	pnl.outOfRange = 0
}

// AddPixelRenderer adds a renderer to the list of renderers.
func (pnl *Panel) AddPixelRenderer(r PixelRenderer) {
	for _, x := range pnl.renderers {
		if x == r {
			return
		}
	}
	pnl.renderers = append(pnl.renderers, r)
}

// RemovePixelRenderer removes a renderer from the list of renderers.
func (pnl *Panel) RemovePixelRenderer(r PixelRenderer) {
	for i, x := range pnl.renderers {
		if x == r {
			pnl.renderers = append(pnl.renderers[:i], pnl.renderers[i+1:]...)
			return
		}
	}
}

// NewFrame notifies all renderers of a new frame.
func (pnl *Panel) NewFrame(frameNum int) error {
	for _, r := range pnl.renderers {
		if err := r.NewFrame(frameNum); err != nil {
			return fmt.Errorf("oled: %w", err)
		}
	}
	return nil
}

// EndRendering notifies all renderers that the simulation is ending.
func (pnl *Panel) EndRendering() error {
	for _, r := range pnl.renderers {
		if err := r.EndRendering(); err != nil {
			return fmt.Errorf("oled: %w", err)
		}
	}
	return nil
}

// Mode returns the current value of the control register.
func (pnl *Panel) Mode() fwoled.Mode {
	return pnl.mode
}

// Pixel returns the colour of the pixel. Pixels outside the panel are
// transparent.
func (pnl *Panel) Pixel(x, y int) color.RGBA {
	return pnl.fb.RGBAAt(x, y)
}

// Snapshot returns a copy of the panel contents.
func (pnl *Panel) Snapshot() *image.RGBA {
	img := image.NewRGBA(pnl.fb.Rect)
	copy(img.Pix, pnl.fb.Pix)
	return img
}

// Pix returns the underlying pixel data. The slice should not be modified.
func (pnl *Panel) Pix() []uint8 {
	return pnl.fb.Pix
}

// Commits returns the number of pixels committed inside the panel and the
// number committed outside it.
func (pnl *Panel) Commits() (int, int) {
	return pnl.commits, pnl.outOfRange
}

func (pnl *Panel) commit() {
	x := int(pnl.col)
	y := int(pnl.row)

	if x >= Width || y >= Height {
		pnl.outOfRange++
		logger.Logf(pnl.env, "oled", "pixel out of range (%d, %d)", x, y)
		return
	}

	c := Decode(pnl.mode, pnl.data)
	pnl.fb.SetRGBA(x, y, c)
	pnl.commits++

	for _, r := range pnl.renderers {
		if err := r.SetPixel(x, y, c.R, c.G, c.B); err != nil {
			logger.Log(pnl.env, "oled", err)
		}
	}
}

// Read implements the memory.Peripheral interface. The panel has no readable
// registers.
func (pnl *Panel) Read(reg addresses.Register) (uint32, bool) {
	return 0, false
}

// Write implements the memory.Peripheral interface.
func (pnl *Panel) Write(reg addresses.Register, value uint32) bool {
	var vary fwoled.Mode

	switch reg {
	case addresses.OLEDRow:
		pnl.row = value
		vary = fwoled.VaryRow
	case addresses.OLEDCol:
		pnl.col = value
		vary = fwoled.VaryColumn
	case addresses.OLEDData:
		pnl.data = value
		vary = fwoled.VaryData
	case addresses.OLEDCtrl:
		m := fwoled.Mode(value)
		if !m.Valid() {
			logger.Logf(pnl.env, "oled", "unsupported control value (%#02x)", value)
		}
		pnl.mode = m
		return true
	default:
		return false
	}

	if pnl.mode.Vary() == vary {
		pnl.commit()
	}

	return true
}
