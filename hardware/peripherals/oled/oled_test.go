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

package oled_test

import (
	"image/color"
	"testing"

	fwoled "github.com/accelcircle/accelcircle/firmware/oled"
	"github.com/accelcircle/accelcircle/firmware/raster"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/hardware/peripherals/oled"
	"github.com/accelcircle/accelcircle/logger"
	"github.com/accelcircle/accelcircle/test"
)

// bus forwards writes directly to the panel.
type bus struct {
	pnl *oled.Panel
}

func (b bus) Read(reg addresses.Register) uint32 {
	v, _ := b.pnl.Read(reg)
	return v
}

func (b bus) Write(reg addresses.Register, value uint32) {
	b.pnl.Write(reg, value)
}

type renderer struct {
	frames int
	pixels int
	ended  bool
}

func (r *renderer) NewFrame(_ int) error {
	r.frames++
	return nil
}

func (r *renderer) SetPixel(_, _ int, _, _, _ byte) error {
	r.pixels++
	return nil
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, oled.Decode(fwoled.Colour24, 0x123456), color.RGBA{0x12, 0x34, 0x56, 0xff})
	test.ExpectEquality(t, oled.Decode(fwoled.Colour24, 32), color.RGBA{0, 0, 32, 0xff})

	// data above the colour depth is ignored
	test.ExpectEquality(t, oled.Decode(fwoled.Colour24, 0xff000400), color.RGBA{0, 4, 0, 0xff})

	test.ExpectEquality(t, oled.Decode(fwoled.Colour16, 0xffff), color.RGBA{0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, oled.Decode(fwoled.Colour16, 0xf800), color.RGBA{0xff, 0, 0, 0xff})
	test.ExpectEquality(t, oled.Decode(fwoled.Colour16, 0x07e0), color.RGBA{0, 0xff, 0, 0xff})

	test.ExpectEquality(t, oled.Decode(fwoled.Colour7, 0x7f), color.RGBA{0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, oled.Decode(fwoled.Colour7, 0x03), color.RGBA{0, 0, 0xff, 0xff})
	test.ExpectEquality(t, oled.Decode(fwoled.Colour7, 0x60), color.RGBA{0xff, 0, 0, 0xff})

	// maximum intensity with the default colour shift does not fit 7-bit colour
	test.ExpectEquality(t, oled.Decode(fwoled.Colour7, 512<<1), color.RGBA{0, 0, 0, 0xff})
}

func TestCircle(t *testing.T) {
	pnl := oled.NewPanel(logger.Allow)
	r := &renderer{}
	pnl.AddPixelRenderer(r)
	pnl.AddPixelRenderer(r)

	fw := fwoled.NewPanel(bus{pnl})
	c := raster.Circle{CentreX: 48, CentreY: 32, Radius: 28, Colour: 32}
	c.Fill(fw)

	var expected int
	for _, s := range raster.Spans(c) {
		expected += s.Width()
	}

	in, out := pnl.Commits()
	test.ExpectEquality(t, in, expected)
	test.ExpectEquality(t, out, 0)
	test.ExpectEquality(t, r.pixels, expected)

	test.ExpectEquality(t, pnl.Pixel(48, 32), color.RGBA{0, 0, 32, 0xff})
	test.ExpectEquality(t, pnl.Pixel(20, 32), color.RGBA{0, 0, 32, 0xff})
	test.ExpectEquality(t, pnl.Pixel(19, 32), color.RGBA{0, 0, 0, 0xff})
	test.ExpectEquality(t, pnl.Pixel(48, 3), color.RGBA{0, 0, 0, 0xff})
	test.ExpectEquality(t, pnl.Pixel(48, 4), color.RGBA{0, 0, 32, 0xff})

	// snapshot is a copy
	img := pnl.Snapshot()
	pnl.Reset()
	test.ExpectEquality(t, img.RGBAAt(48, 32), color.RGBA{0, 0, 32, 0xff})
	test.ExpectEquality(t, pnl.Pixel(48, 32), color.RGBA{0, 0, 0, 0xff})

	test.ExpectSuccess(t, pnl.NewFrame(1))
	test.ExpectSuccess(t, pnl.EndRendering())
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectSuccess(t, r.ended)

	pnl.RemovePixelRenderer(r)
	fw.DrawSpan(0, 0, 0, 1)
	test.ExpectEquality(t, r.pixels, expected)
}

func TestClipping(t *testing.T) {
	pnl := oled.NewPanel(logger.Allow)
	fw := fwoled.NewPanel(bus{pnl})

	// circle overlapping the bottom right corner
	raster.FillCircle(90, 60, 10, 0xffffff, fw)
	in, out := pnl.Commits()
	test.ExpectSuccess(t, in > 0)
	test.ExpectSuccess(t, out > 0)
	test.ExpectEquality(t, pnl.Pixel(95, 63), color.RGBA{0xff, 0xff, 0xff, 0xff})
}

func TestVaryModes(t *testing.T) {
	for _, m := range []fwoled.Mode{fwoled.VaryData, fwoled.VaryColumn, fwoled.VaryRow} {
		pnl := oled.NewPanel(logger.Allow)
		fw := &fwoled.Panel{Bus: bus{pnl}, Mode: fwoled.Colour16 | m}
		fw.DrawSpan(10, 19, 5, 0xf800)

		in, _ := pnl.Commits()
		test.ExpectEquality(t, in, 10, m)
		test.ExpectEquality(t, pnl.Mode(), fwoled.Colour16|m, m)
		for x := 10; x < 20; x++ {
			test.ExpectEquality(t, pnl.Pixel(x, 5), color.RGBA{0xff, 0, 0, 0xff}, m, x)
		}
		test.ExpectEquality(t, pnl.Pixel(20, 5), color.RGBA{0, 0, 0, 0xff}, m)
	}
}

func TestRegisters(t *testing.T) {
	pnl := oled.NewPanel(logger.Allow)
	_, ok := pnl.Read(addresses.OLEDRow)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, pnl.Write(addresses.LED, 1))
	test.ExpectSuccess(t, pnl.Write(addresses.OLEDCtrl, 0x22))
	test.ExpectEquality(t, pnl.Mode(), fwoled.Colour24|fwoled.VaryRow)

	// unsupported control values are accepted but logged
	test.ExpectSuccess(t, pnl.Write(addresses.OLEDCtrl, 0x33))
}
