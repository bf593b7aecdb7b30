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

// Package uart is the transmit side of the serial link as seen by the
// firmware: write one byte, observe a ready flag.
package uart

import (
	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Transmitter is a byte-at-a-time serial transmitter.
type Transmitter interface {
	// Ready returns true if the transmitter can accept a byte.
	Ready() bool

	// Transmit a single byte. Ready() must have returned true immediately
	// beforehand.
	Transmit(b uint8)
}

// Send busy-polls the ready flag of the transmitter and then transmits the
// byte. There is no timeout. A transmitter that never becomes ready stalls
// the caller forever.
func Send(tx Transmitter, b uint8) {
	for !tx.Ready() {
	}
	tx.Transmit(b)
}

// SendAll sends each byte in turn. The ready flag is polled before every
// byte.
func SendAll(tx Transmitter, p []uint8) {
	for _, b := range p {
		Send(tx, b)
	}
}

// Bus implements the Transmitter interface with the UART registers of the
// SoC.
type Bus struct {
	Bus mmio.Bus
}

// Ready implements the Transmitter interface.
func (u Bus) Ready() bool {
	return u.Bus.Read(addresses.UARTTXReady) != 0
}

// Transmit implements the Transmitter interface.
func (u Bus) Transmit(b uint8) {
	u.Bus.Write(addresses.UART, uint32(b))
}
