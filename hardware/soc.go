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

package hardware

import (
	"fmt"
	"io"

	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/firmware"
	"github.com/accelcircle/accelcircle/hardware/counter"
	"github.com/accelcircle/accelcircle/hardware/memory"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/hardware/peripherals/accelerometer"
	"github.com/accelcircle/accelcircle/hardware/peripherals/accelerometer/stimulus"
	"github.com/accelcircle/accelcircle/hardware/peripherals/board"
	"github.com/accelcircle/accelcircle/hardware/peripherals/oled"
	"github.com/accelcircle/accelcircle/hardware/peripherals/uart"
	"github.com/accelcircle/accelcircle/hardware/preferences"
	"github.com/accelcircle/accelcircle/logger"
)

// SoC is the main container for the simulated components of the board.
type SoC struct {
	Env *environment.Environment

	Counter *counter.Counter
	Mem     *memory.Memory

	UART  *uart.UART
	Accel *accelerometer.Accelerometer
	OLED  *oled.Panel
	Board *board.Board

	// the current frame. incremented by EndFrame()
	frame int
}

// NewSoC creates a new SoC and everything associated with the hardware. The
// prefs argument can be nil, in which case the global preferences are used.
func NewSoC(label environment.Label, prefs *preferences.Preferences) (*SoC, error) {
	soc := &SoC{}

	var err error
	soc.Env, err = environment.NewEnvironment(label, soc, prefs)
	if err != nil {
		return nil, err
	}

	soc.Board = board.NewBoard()
	soc.OLED = oled.NewPanel(soc.Env)
	soc.Accel = accelerometer.NewAccelerometer(soc.Env, nil)

	if err := soc.Reset(); err != nil {
		return nil, err
	}

	return soc, nil
}

func (soc *SoC) String() string {
	return fmt.Sprintf("frame=%d counter=%v %v accel=%v", soc.frame, soc.Counter, soc.Board, soc.Accel)
}

// CurrentFrame implements the random.Frames interface.
func (soc *SoC) CurrentFrame() int {
	return soc.frame
}

// Normalise the environment and reset the SoC. Used for regression and
// digest runs.
func (soc *SoC) Normalise() error {
	soc.Env.Normalise()
	return soc.Reset()
}

// Reset the SoC to its power on state using the current preferences. The
// stimulus is recreated from the preferences and the panel is cleared. A
// sink attached to the UART is kept.
func (soc *SoC) Reset() error {
	p := soc.Env.Prefs

	var err error
	soc.Counter, err = counter.NewCounter(p.CounterWidth.Get().(int), uint32(p.CounterStart.Get().(int)))
	if err != nil {
		return err
	}

	byteCycles, err := p.ByteCycles()
	if err != nil {
		return err
	}

	soc.Mem = memory.NewMemory(soc.Env, soc.Counter, uint32(p.CyclesPerAccess.Get().(int)))

	sink := soc.uartSink()
	soc.UART = uart.NewUART(soc.Env, soc.Counter, byteCycles)
	soc.UART.AttachSink(sink)

	soc.Mem.Map(soc.Board, addresses.LED, addresses.DIP, addresses.PB, addresses.SevenSeg)
	soc.Mem.Map(soc.UART, addresses.UART, addresses.UARTRXValid, addresses.UARTTXReady)
	soc.Mem.Map(soc.OLED, addresses.OLEDCol, addresses.OLEDRow, addresses.OLEDData, addresses.OLEDCtrl)
	soc.Mem.Map(soc.Accel, addresses.AccelData, addresses.AccelDReady)

	soc.OLED.Reset()
	soc.frame = 0

	if err := soc.AttachStimulus(p.Stimulus.String()); err != nil {
		return err
	}

	return nil
}

// the sink of the current UART, if there is one.
func (soc *SoC) uartSink() io.Writer {
	if soc.UART == nil {
		return nil
	}
	return soc.UART.Sink()
}

// AttachStimulus replaces the stimulus of the accelerometer with the one
// described by the string and latches the reading for the current frame.
// See the stimulus package for the format of the description.
func (soc *SoC) AttachStimulus(description string) error {
	s, err := stimulus.Parse(soc.Env, description)
	if err != nil {
		return err
	}
	soc.closeStimulus()
	soc.Accel.AttachStimulus(s)
	return soc.Accel.Latch(soc.frame)
}

func (soc *SoC) closeStimulus() {
	if c, ok := soc.Accel.Stimulus().(interface{ Close() }); ok {
		c.Close()
	}
}

// NewFirmware returns the firmware configured by the preferences, running
// over the SoC memory.
func (soc *SoC) NewFirmware() (*firmware.Firmware, error) {
	cfg, err := soc.Env.Prefs.FirmwareConfig()
	if err != nil {
		return nil, err
	}
	return firmware.NewFirmware(soc.Mem, cfg), nil
}

// EndFrame advances the SoC to the next frame. The accelerometer latches its
// next reading and renderers are notified of the new frame.
func (soc *SoC) EndFrame() error {
	soc.frame++

	if err := soc.Accel.Latch(soc.frame); err != nil {
		return err
	}

	return soc.OLED.NewFrame(soc.frame)
}

// End the simulation. Renderers are notified and the stimulus is closed.
func (soc *SoC) End() error {
	soc.closeStimulus()
	if err := soc.OLED.EndRendering(); err != nil {
		return err
	}
	logger.Logf(soc.Env, "soc", "ended after %d frames", soc.frame)
	return nil
}
