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

package delay_test

import (
	"math"
	"testing"

	"github.com/accelcircle/accelcircle/firmware/delay"
	"github.com/accelcircle/accelcircle/firmware/mmio"
	"github.com/accelcircle/accelcircle/hardware/memory/addresses"
	"github.com/accelcircle/accelcircle/test"
)

// stepper advances by step on every read and counts the reads.
type stepper struct {
	count uint32
	step  uint32
	reads int
}

func (s *stepper) Cycles() uint32 {
	v := s.count
	s.count += s.step
	s.reads++
	return v
}

func TestElapsed(t *testing.T) {
	test.ExpectEquality(t, delay.Elapsed(10, 15), uint32(5))
	test.ExpectEquality(t, delay.Elapsed(math.MaxUint32-3, 6), uint32(10))
	test.ExpectEquality(t, delay.Elapsed(5, 5), uint32(0))

	test.ExpectSuccess(t, delay.Expired(math.MaxUint32-3, 6, 10))
	test.ExpectFailure(t, delay.Expired(math.MaxUint32-3, 5, 10))

	// a naive absolute comparison would overflow here
	start := uint32(math.MaxUint32 - 3)
	test.ExpectFailure(t, delay.Expired(start, math.MaxUint32, 10))
}

func TestDelayAcrossWrap(t *testing.T) {
	s := &stepper{count: math.MaxUint32 - 3, step: 1}
	delay.Delay(s, 10)

	// the final read returned 6 and the counter has moved on by one
	test.ExpectEquality(t, s.count, uint32(7))
	test.ExpectEquality(t, s.reads, 11)
}

func TestDelayZero(t *testing.T) {
	s := &stepper{count: 100, step: 1}
	delay.Delay(s, 0)
	test.ExpectEquality(t, s.reads, 2)
}

func TestDelayCoarseCounter(t *testing.T) {
	// counter moves in large steps and overshoots the wrap point
	s := &stepper{count: math.MaxUint32 - 100, step: 64}
	delay.Delay(s, 200)
	test.ExpectEquality(t, s.reads, 5)
}

type registers map[addresses.Register]uint32

func (r registers) Read(reg addresses.Register) uint32 {
	v := r[reg]
	if reg == addresses.CycleCount {
		r[reg]++
	}
	return v
}

func (r registers) Write(reg addresses.Register, value uint32) {
	r[reg] = value
}

func TestBusCounter(t *testing.T) {
	regs := registers{addresses.CycleCount: 0xfffffffe}
	rec := mmio.NewRecorder(regs)
	delay.Delay(delay.BusCounter{Bus: rec}, 4)

	tr := rec.Transactions()
	test.ExpectEquality(t, len(tr), 5)
	for _, x := range tr {
		test.ExpectEquality(t, x.Register, addresses.CycleCount)
		test.ExpectFailure(t, x.Write)
	}
	test.ExpectEquality(t, tr[len(tr)-1].Value, uint32(2))
}

func TestMasked(t *testing.T) {
	// 8 bit counter wrapping from 0xfc to 0x06
	s := &stepper{count: 0xfc, step: 1}
	narrow := &wrapping{s: s, width: 8}
	m := delay.Masked{Counter: narrow, Width: 8}

	delay.Delay(m, m.Scale(10))
	test.ExpectEquality(t, s.count&0xff, uint32(0x07))

	test.ExpectEquality(t, delay.ElapsedWidth(0xfc, 0x06, 8), uint32(10))
	test.ExpectEquality(t, delay.ElapsedWidth(0xfffffffc, 6, 32), uint32(10))
}

// wrapping truncates a counter to a width.
type wrapping struct {
	s     delay.Counter
	width int
}

func (w *wrapping) Cycles() uint32 {
	return w.s.Cycles() & (1<<uint(w.width) - 1)
}

func TestFits(t *testing.T) {
	test.ExpectSuccess(t, delay.Fits(255, 8))
	test.ExpectFailure(t, delay.Fits(256, 8))
	test.ExpectSuccess(t, delay.Fits(math.MaxUint32, 32))
	test.ExpectSuccess(t, delay.Fits(math.MaxUint32, 0))
	test.ExpectFailure(t, delay.Fits(1000000, 16))

	// the longest delay an 8-bit counter can measure
	m := delay.Masked{Counter: &stepper{step: 1}, Width: 8}
	s := m.Counter.(*stepper)
	delay.Delay(m, m.Scale(255))
	test.ExpectSuccess(t, s.count-1 >= 255)
}
