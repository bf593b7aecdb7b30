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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/modalflag"
	"github.com/accelcircle/accelcircle/test"
)

// preferences and regression files are created relative to the working
// directory in development builds.
func chdirTemp(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	return dir
}

// a mainSync that accepts state requests without a main thread
func drainedSync(t *testing.T) *mainSync {
	t.Helper()
	sync := newMainSync()
	done := make(chan bool)
	go func() {
		for {
			select {
			case <-sync.state:
			case <-done:
				return
			}
		}
	}()
	t.Cleanup(func() {
		close(done)
	})
	return sync
}

func newModes(args ...string) (*modalflag.Modes, *test.CompareWriter) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return md, w
}

func TestRunDigest(t *testing.T) {
	dir := chdirTemp(t)
	sync := drainedSync(t)

	args := []string{"-frames", "4", "-serial=false", "-digest", "-normalise", "constant:0x00100000"}

	md, w := newModes(args...)
	test.DemandSuccess(t, run(md, sync))
	first := strings.TrimSpace(w.String())
	test.ExpectEquality(t, len(first), 40)

	md, w = newModes(args...)
	test.DemandSuccess(t, run(md, sync))
	test.ExpectEquality(t, strings.TrimSpace(w.String()), first)

	md, w = newModes("-frames", "4", "-serial=false", "-digest", "-normalise", "constant:0x00200000")
	test.DemandSuccess(t, run(md, sync))
	test.ExpectInequality(t, strings.TrimSpace(w.String()), first)

	png := filepath.Join(dir, "panel.png")
	md, _ = newModes("-frames", "1", "-serial=false", "-png", png, "walk")
	test.DemandSuccess(t, run(md, sync))
	_, err := os.Stat(png)
	test.ExpectSuccess(t, err)
}

func TestRunSerial(t *testing.T) {
	chdirTemp(t)
	sync := drainedSync(t)

	md, w := newModes("-frames", "3", "constant:0x00100000")
	test.DemandSuccess(t, run(md, sync))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.ExpectEquality(t, len(lines), 3)
	for _, l := range lines {
		test.ExpectSuccess(t, strings.Contains(l, "00100000"), l)
	}

	md, _ = newModes("constant:0x00100000", "walk")
	test.ExpectFailure(t, run(md, sync))

	md, _ = newModes("-wavmode", "stereo", "-wav", "out.wav", "-frames", "1")
	test.ExpectFailure(t, run(md, sync))
}

func TestRunWavOnError(t *testing.T) {
	dir := chdirTemp(t)
	sync := drainedSync(t)

	// the firmware cannot be created but the wav file is still finished
	fn := filepath.Join(dir, "out.wav")
	md, _ := newModes("-prefs", "firmware.radius::-1", "-wav", fn, "-frames", "1")
	test.ExpectFailure(t, run(md, sync))

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() >= 44)
}

func TestConvertHex(t *testing.T) {
	dir := chdirTemp(t)

	hex := filepath.Join(dir, "firmware.hex")
	test.DemandSuccess(t, os.WriteFile(hex, []byte("00000513\n0040006f\nDATA\n00100000\n"), 0o600))

	out := filepath.Join(dir, "mem.v")
	md, w := newModes("-o", out, "-slots", "2", "-instr", "IMEM", hex)
	test.DemandSuccess(t, convertHex(md))
	test.ExpectSuccess(t, strings.Contains(w.String(), out))

	b, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	s := string(b)
	test.ExpectSuccess(t, strings.HasPrefix(s, "module memory_initialization;\n"))
	test.ExpectSuccess(t, strings.Contains(s, "\tIMEM[1] = 32'h0040006f;\n\n"))
	test.ExpectSuccess(t, strings.Contains(s, "\tfor (i = 1; i < 2; i = i + 1) begin\n\t\tDATA_CONST_MEM[i] = 32'h0;"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "endmodule"))

	// no DATA line
	test.DemandSuccess(t, os.WriteFile(hex, []byte("00000513\n"), 0o600))
	md, _ = newModes("-o", out, hex)
	test.ExpectFailure(t, convertHex(md))

	md, _ = newModes()
	test.ExpectFailure(t, convertHex(md))
}

func TestMonitorFile(t *testing.T) {
	dir := chdirTemp(t)
	sync := drainedSync(t)

	a := accel.Decode(0x00100000).Serial()
	b := accel.Decode(0x05f0fb0a).Serial()

	// a partial reading at the end of the capture
	var capture []byte
	capture = append(capture, a[:]...)
	capture = append(capture, b[:]...)
	capture = append(capture, a[:3]...)

	fn := filepath.Join(dir, "capture.bin")
	test.DemandSuccess(t, os.WriteFile(fn, capture, 0o600))

	md, w := newModes("-colour", "off", fn)
	test.DemandSuccess(t, monitor(md, sync))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.Contains(lines[0], "00100000"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "05f0fb0a"))
	test.ExpectSuccess(t, strings.Contains(lines[2], "3 bytes incomplete"))

	md, _ = newModes("-colour", "sometimes", fn)
	test.ExpectFailure(t, monitor(md, sync))

	md, _ = newModes(filepath.Join(dir, "missing.bin"))
	test.ExpectFailure(t, monitor(md, sync))
}

func TestRegressModes(t *testing.T) {
	chdirTemp(t)
	sync := drainedSync(t)

	md, w := newModes("ADD", "-frames", "2", "-notes", "centre", "constant:0x00100000")
	test.DemandSuccess(t, regress(md, sync))
	test.ExpectSuccess(t, strings.Contains(w.String(), "added: 001"))

	md, _ = newModes("ADD", "-mode", "SERIAL", "-frames", "2", "walk")
	test.DemandSuccess(t, regress(md, sync))

	md, _ = newModes("ADD", "-mode", "AUDIO", "walk")
	test.ExpectFailure(t, regress(md, sync))

	md, w = newModes("LIST")
	test.DemandSuccess(t, regress(md, sync))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 2"))

	md, w = newModes("RUN")
	test.DemandSuccess(t, regress(md, sync))
	test.ExpectSuccess(t, strings.Contains(w.String(), "2 succeed, 0 fail"))

	md, _ = newModes("DELETE", "-yes", "1")
	test.DemandSuccess(t, regress(md, sync))

	md, w = newModes("LIST")
	test.DemandSuccess(t, regress(md, sync))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 1"))
}
