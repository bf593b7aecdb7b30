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

package memory

import (
	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/hardware/counter"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/logger"
)

// Sentinal error patterns for faults.
const (
	UnreadableRegister = "memory: read of write-only register (%v)"
	UnwritableRegister = "memory: write of read-only register (%v)"
	UnmappedRegister   = "memory: access of unmapped offset (%v)"
	UnhandledRegister  = "memory: no peripheral for register (%v)"
)

// maximum number of faults kept by the Memory type
const maxFaults = 100

// Peripheral is implemented by all peripherals attached to the memory. The
// boolean return values are false if the register is not handled by the
// peripheral.
type Peripheral interface {
	Read(reg addresses.Register) (uint32, bool)
	Write(reg addresses.Register, value uint32) bool
}

// Stats counts the accesses made through the Memory type.
type Stats struct {
	Reads  map[addresses.Register]int
	Writes map[addresses.Register]int
	Faults int
}

// Memory is the simulated MMIO window.
type Memory struct {
	env     logger.Permission
	counter *counter.Counter

	// number of counter cycles taken by a single access
	cyclesPerAccess uint32

	// peripheral for every register
	mapped map[addresses.Register]Peripheral

	faults []error
	stats  Stats
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Peripherals are attached with Map().
func NewMemory(env logger.Permission, cnt *counter.Counter, cyclesPerAccess uint32) *Memory {
	return &Memory{
		env:             env,
		counter:         cnt,
		cyclesPerAccess: cyclesPerAccess,
		mapped:          make(map[addresses.Register]Peripheral),
		stats: Stats{
			Reads:  make(map[addresses.Register]int),
			Writes: make(map[addresses.Register]int),
		},
	}
}

// Map the peripheral to the registers. A register mapped more than once is
// handled by the most recent peripheral.
func (mem *Memory) Map(p Peripheral, regs ...addresses.Register) {
	for _, r := range regs {
		mem.mapped[r] = p
	}
}

// Counter returns the cycle counter.
func (mem *Memory) Counter() *counter.Counter {
	return mem.counter
}

func (mem *Memory) fault(err error) {
	mem.stats.Faults++
	if len(mem.faults) < maxFaults {
		mem.faults = append(mem.faults, err)
	}
	logger.Log(mem.env, "memory", err)
}

// Faults returns the faults recorded since the last call to ClearFaults().
// The number of faults kept is limited. Stats().Faults is the total.
func (mem *Memory) Faults() []error {
	return mem.faults
}

// ClearFaults forgets all recorded faults.
func (mem *Memory) ClearFaults() {
	mem.faults = mem.faults[:0]
}

// Stats returns the access counts.
func (mem *Memory) Stats() Stats {
	return mem.stats
}

// Read implements the mmio.Bus interface.
func (mem *Memory) Read(reg addresses.Register) uint32 {
	defer mem.counter.Step(mem.cyclesPerAccess)
	mem.stats.Reads[reg]++

	acc := reg.Access()
	if acc == addresses.NoAccess {
		mem.fault(curated.Errorf(UnmappedRegister, reg))
		return 0
	}
	if !acc.Readable() {
		mem.fault(curated.Errorf(UnreadableRegister, reg))
		return 0
	}

	if reg == addresses.CycleCount {
		return mem.counter.Cycles()
	}

	if p, ok := mem.mapped[reg]; ok {
		if v, ok := p.Read(reg); ok {
			return v
		}
	}

	mem.fault(curated.Errorf(UnhandledRegister, reg))
	return 0
}

// Write implements the mmio.Bus interface.
func (mem *Memory) Write(reg addresses.Register, value uint32) {
	defer mem.counter.Step(mem.cyclesPerAccess)
	mem.stats.Writes[reg]++

	acc := reg.Access()
	if acc == addresses.NoAccess {
		mem.fault(curated.Errorf(UnmappedRegister, reg))
		return
	}
	if !acc.Writable() {
		mem.fault(curated.Errorf(UnwritableRegister, reg))
		return
	}

	if p, ok := mem.mapped[reg]; ok {
		if p.Write(reg, value) {
			return
		}
	}

	mem.fault(curated.Errorf(UnhandledRegister, reg))
}
