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

package mmio

import (
	"fmt"
	"strings"

	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
)

// Transaction is a single access recorded by the Recorder type.
type Transaction struct {
	Register addresses.Register
	Write    bool
	Value    uint32
}

func (t Transaction) String() string {
	if t.Write {
		return fmt.Sprintf("%-14s <- %08x", t.Register, t.Value)
	}
	return fmt.Sprintf("%-14s -> %08x", t.Register, t.Value)
}

// Recorder wraps a Bus and records every transaction that passes through it.
type Recorder struct {
	bus          Bus
	transactions []Transaction
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder(bus Bus) *Recorder {
	return &Recorder{bus: bus}
}

// Read implements the Bus interface.
func (rec *Recorder) Read(reg addresses.Register) uint32 {
	v := rec.bus.Read(reg)
	rec.transactions = append(rec.transactions, Transaction{Register: reg, Value: v})
	return v
}

// Write implements the Bus interface.
func (rec *Recorder) Write(reg addresses.Register, value uint32) {
	rec.bus.Write(reg, value)
	rec.transactions = append(rec.transactions, Transaction{Register: reg, Write: true, Value: value})
}

// Transactions returns the recorded transactions in the order they
// occurred. The returned slice should not be modified.
func (rec *Recorder) Transactions() []Transaction {
	return rec.transactions
}

// Filter returns the recorded transactions that involve the register.
func (rec *Recorder) Filter(reg addresses.Register) []Transaction {
	var f []Transaction
	for _, t := range rec.transactions {
		if t.Register == reg {
			f = append(f, t)
		}
	}
	return f
}

// Reset forgets all recorded transactions.
func (rec *Recorder) Reset() {
	rec.transactions = rec.transactions[:0]
}

func (rec *Recorder) String() string {
	s := strings.Builder{}
	for _, t := range rec.transactions {
		s.WriteString(t.String())
		s.WriteString("\n")
	}
	return s.String()
}
