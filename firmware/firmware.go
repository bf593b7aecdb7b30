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

package firmware

import (
	"fmt"

	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/firmware/delay"
	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/firmware/oled"
	"github.com/accelcircle/accelcircle/firmware/raster"
	"github.com/accelcircle/accelcircle/firmware/uart"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// ColourSource selects the value of a reading used as the circle colour.
type ColourSource int

// List of valid ColourSource values.
const (
	// the sum of the lane magnitudes
	Intensity ColourSource = iota

	// the lane magnitudes left in lane position. with 24-bit colour the X, Y
	// and Z axes become the red, green and blue channels
	Axes
)

func (c ColourSource) String() string {
	switch c {
	case Intensity:
		return "intensity"
	case Axes:
		return "axes"
	}
	return "unknown"
}

// ParseColourSource is the inverse of ColourSource.String().
func ParseColourSource(s string) (ColourSource, error) {
	switch s {
	case "intensity":
		return Intensity, nil
	case "axes":
		return Axes, nil
	}
	return 0, fmt.Errorf("firmware: unrecognised colour source (%s)", s)
}

// Config is the fixed configuration of the firmware.
type Config struct {
	CentreX int
	CentreY int
	Radius  int

	// number of counter cycles to wait at the end of every frame
	DelayCycles uint32

	// width of the hardware cycle counter in bits. zero is the same as 32
	CounterWidth int

	// the colour value is shifted left by this amount
	ColourShift  uint
	ColourSource ColourSource

	PanelMode oled.Mode
}

// DefaultConfig returns the configuration of the device firmware. A delay of
// one million cycles is about a third of a second with the default clock
// divider.
func DefaultConfig() Config {
	return Config{
		CentreX:      48,
		CentreY:      32,
		Radius:       28,
		DelayCycles:  1000000,
		CounterWidth: 32,
		ColourShift:  1,
		ColourSource: Intensity,
		PanelMode:    oled.DefaultMode,
	}
}

// Validate returns an error if the configuration cannot be run. The delay
// must be shorter than the period of the cycle counter.
func (c Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("firmware: negative radius (%d)", c.Radius)
	}
	if !delay.Fits(c.DelayCycles, c.CounterWidth) {
		return fmt.Errorf("firmware: delay of %d cycles does not fit a %d-bit counter", c.DelayCycles, c.CounterWidth)
	}
	return nil
}

// Firmware runs the main loop over a Bus.
type Firmware struct {
	bus     mmio.Bus
	cfg     Config
	panel   *oled.Panel
	tx      uart.Transmitter
	counter delay.Counter
	cycles  uint32
}

// NewFirmware is the preferred method of initialisation for the Firmware
// type.
func NewFirmware(bus mmio.Bus, cfg Config) *Firmware {
	fw := &Firmware{
		bus:   bus,
		cfg:   cfg,
		panel: &oled.Panel{Bus: bus, Mode: cfg.PanelMode},
		tx:    uart.Bus{Bus: bus},
	}

	if cfg.CounterWidth > 0 && cfg.CounterWidth < 32 {
		m := delay.Masked{Counter: delay.BusCounter{Bus: bus}, Width: cfg.CounterWidth}
		fw.counter = m
		fw.cycles = m.Scale(cfg.DelayCycles)
	} else {
		fw.counter = delay.BusCounter{Bus: bus}
		fw.cycles = cfg.DelayCycles
	}

	return fw
}

// Config returns the configuration of the firmware.
func (fw *Firmware) Config() Config {
	return fw.cfg
}

// Colour returns the circle colour for the reading.
func (fw *Firmware) Colour(r accel.Reading) uint32 {
	switch fw.cfg.ColourSource {
	case Axes:
		return r.Packed << fw.cfg.ColourShift
	}
	return r.Intensity << fw.cfg.ColourShift
}

// Circle returns the circle drawn for the reading.
func (fw *Firmware) Circle(r accel.Reading) raster.Circle {
	return raster.Circle{
		CentreX: fw.cfg.CentreX,
		CentreY: fw.cfg.CentreY,
		Radius:  fw.cfg.Radius,
		Colour:  fw.Colour(r),
	}
}

// Frame runs a single iteration of the main loop. The reading taken from the
// accelerometer is returned.
func (fw *Firmware) Frame() accel.Reading {
	word := fw.bus.Read(addresses.AccelData)
	fw.bus.Write(addresses.SevenSeg, word)

	r := accel.Decode(word)
	accel.Mirror(fw.tx, r)

	fw.Circle(r).Fill(fw.panel)

	delay.Delay(fw.counter, fw.cycles)

	return r
}

// Run the main loop. The continueCheck function is called before every frame
// with the number of frames completed so far. The loop ends when it returns
// false. A nil continueCheck runs the loop forever.
func (fw *Firmware) Run(continueCheck func(frame int) bool) {
	for frame := 0; continueCheck == nil || continueCheck(frame); frame++ {
		fw.Frame()
	}
}
