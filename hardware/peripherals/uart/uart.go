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

// Package uart simulates the serial transmitter of the SoC. A byte written
// to the data register is sent immediately. The transmitter is not ready
// again until a fixed number of counter cycles have passed.
//
// Transmitted bytes are written to an optional sink, for example a terminal
// or a file, and are kept in a capture buffer for inspection. The receive
// side is not connected: the data register reads as zero and the receive
// valid flag is never set.
package uart

import (
	"io"

	"github.com/accelcircle/accelcircle/firmware/delay"
	"github.com/accelcircle/accelcircle/hardware/counter"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/logger"
)

// UART is the simulated transmitter.
type UART struct {
	env     logger.Permission
	counter *counter.Counter

	// number of counter cycles required to send a single byte
	cyclesPerByte uint32

	busy   bool
	lastTx uint32

	sink    io.Writer
	capture []uint8

	// number of bytes written while the transmitter was not ready
	overruns int
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(env logger.Permission, cnt *counter.Counter, cyclesPerByte uint32) *UART {
	return &UART{
		env:           env,
		counter:       cnt,
		cyclesPerByte: cyclesPerByte,
	}
}

// AttachSink sets the writer that transmitted bytes are sent to. A nil
// writer detaches the current sink.
func (u *UART) AttachSink(w io.Writer) {
	u.sink = w
}

// Ready returns true if the transmitter can accept a new byte.
func (u *UART) Ready() bool {
	if !u.busy {
		return true
	}
	if delay.ElapsedWidth(u.lastTx, u.counter.Cycles(), u.counter.Width()) >= u.cyclesPerByte {
		u.busy = false
	}
	return !u.busy
}

// Transmit a byte. A byte sent while the transmitter is not ready is still
// transmitted but counted as an overrun.
func (u *UART) Transmit(b uint8) {
	if !u.Ready() {
		u.overruns++
		logger.Logf(u.env, "uart", "overrun: byte %#02x sent while busy", b)
	}

	u.capture = append(u.capture, b)
	if u.sink != nil {
		if _, err := u.sink.Write([]byte{b}); err != nil {
			logger.Log(u.env, "uart", err)
		}
	}

	u.busy = u.cyclesPerByte > 0
	u.lastTx = u.counter.Cycles()
}

// Sink returns the writer attached with AttachSink().
func (u *UART) Sink() io.Writer {
	return u.sink
}

// Captured returns all bytes transmitted since the last call to
// ResetCapture(). The returned slice should not be modified.
func (u *UART) Captured() []uint8 {
	return u.capture
}

// ResetCapture empties the capture buffer.
func (u *UART) ResetCapture() {
	u.capture = u.capture[:0]
}

// Overruns returns the number of bytes sent while the transmitter was busy.
func (u *UART) Overruns() int {
	return u.overruns
}

// Read implements the memory.Peripheral interface.
func (u *UART) Read(reg addresses.Register) (uint32, bool) {
	switch reg {
	case addresses.UART:
		return 0, true
	case addresses.UARTRXValid:
		return 0, true
	case addresses.UARTTXReady:
		if u.Ready() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Write implements the memory.Peripheral interface.
func (u *UART) Write(reg addresses.Register, value uint32) bool {
	if reg == addresses.UART {
		u.Transmit(uint8(value))
		return true
	}
	return false
}
