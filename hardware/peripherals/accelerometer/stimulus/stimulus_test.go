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

package stimulus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/hardware/peripherals/accelerometer/stimulus"
	"github.com/accelcircle/accelcircle/hardware/preferences"
	"github.com/accelcircle/accelcircle/test"
)

type frames struct {
	frame int
}

func (f *frames) CurrentFrame() int {
	return f.frame
}

func newEnv(t *testing.T, f *frames) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", f, p)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

func TestPack(t *testing.T) {
	test.ExpectEquality(t, stimulus.Pack(0, 0x10, 0, 0), uint32(0x00100000))
	test.ExpectEquality(t, stimulus.Pack(-1, -1, -1, -128), uint32(0xffffff80))
}

func TestConstant(t *testing.T) {
	env := newEnv(t, &frames{})
	s, err := stimulus.Parse(env, "constant:0x00100000")
	test.DemandSuccess(t, err)
	w, err := s.Reading(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x00100000))
	test.ExpectEquality(t, s.String(), "constant:0x00100000")

	_, err = stimulus.Parse(env, "constant:banana")
	test.ExpectFailure(t, err)
	_, err = stimulus.Parse(env, "noise")
	test.ExpectFailure(t, err)
}

func TestWalk(t *testing.T) {
	fa := &frames{}
	fb := &frames{}
	a, err := stimulus.Parse(newEnv(t, fa), "walk:8")
	test.DemandSuccess(t, err)
	b := stimulus.NewRandomWalk(newEnv(t, fb), 8)

	var prev uint32
	for i := 0; i < 200; i++ {
		fa.frame = i
		fb.frame = i
		wa, err := a.Reading(i)
		test.ExpectSuccess(t, err)
		wb, _ := b.Reading(i)

		// normalised environments produce the same walk
		test.ExpectEquality(t, wa, wb, i)

		// temperature is constant and each axis moves by at most the step
		test.ExpectEquality(t, wa>>24, uint32(25), i)
		if i > 0 {
			for s := 0; s < 24; s += 8 {
				d := int(int8(wa>>uint(s))) - int(int8(prev>>uint(s)))
				test.ExpectSuccess(t, d >= -8 && d <= 8, i, s, d)
			}
		}
		for s := 0; s < 24; s += 8 {
			v := int(int8(wa >> uint(s)))
			test.ExpectSuccess(t, v >= -64 && v <= 64, i, s, v)
		}
		prev = wa
	}
}

func writeWAV(t *testing.T, fn string, chans int, data []int) {
	t.Helper()
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 1000, 16, chans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: 1000},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestTrace(t *testing.T) {
	env := newEnv(t, &frames{})
	fn := filepath.Join(t.TempDir(), "trace.wav")
	writeWAV(t, fn, 2, []int{
		0x1000, -0x0800,
		0x7fff, -0x8000,
		0x0000, 0x0100,
	})

	s, err := stimulus.Parse(env, "trace:"+fn)
	test.DemandSuccess(t, err)
	tr := s.(*stimulus.Trace)
	test.ExpectEquality(t, tr.Len(), 3)
	test.ExpectEquality(t, tr.Channels(), 2)

	w, err := tr.Reading(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, stimulus.Pack(0, 0x10, -8, 0))

	w, _ = tr.Reading(1)
	test.ExpectEquality(t, w, stimulus.Pack(0, 127, -128, 0))

	// recording loops
	w, _ = tr.Reading(5)
	test.ExpectEquality(t, w, stimulus.Pack(0, 0, 1, 0))
	w, _ = tr.Reading(3)
	test.ExpectEquality(t, w, stimulus.Pack(0, 0x10, -8, 0))

	// 500 frames per second at 1000Hz uses every other sample
	s, err = stimulus.Parse(env, "trace:"+fn+"@500")
	test.DemandSuccess(t, err)
	w, _ = s.Reading(1)
	test.ExpectEquality(t, w, stimulus.Pack(0, 0, 1, 0))
}

func TestTraceErrors(t *testing.T) {
	env := newEnv(t, &frames{})
	_, err := stimulus.NewTrace(env, filepath.Join(t.TempDir(), "missing.wav"), 0)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "trace.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("OggS"), 0o600))
	_, err = stimulus.NewTrace(env, fn, 0)
	test.ExpectFailure(t, err)

	fn = filepath.Join(t.TempDir(), "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o600))
	_, err = stimulus.NewTrace(env, fn, 0)
	test.ExpectFailure(t, err)
}

func TestScript(t *testing.T) {
	env := newEnv(t, &frames{})

	sc, err := stimulus.NewScriptFromString(env, `
function reading(frame)
	if frame % 2 == 0 then
		return pack(25, frame, -frame, 0)
	end
	return {x = 16, z = -2}
end
`)
	test.DemandSuccess(t, err)
	defer sc.Close()

	w, err := sc.Reading(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, stimulus.Pack(25, 4, -4, 0))

	w, err = sc.Reading(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, stimulus.Pack(0, 16, 0, -2))

	// values are clamped to the range of a signed byte
	w, _ = sc.Reading(200)
	test.ExpectEquality(t, w, stimulus.Pack(25, 127, -128, 0))
}

func TestScriptErrors(t *testing.T) {
	env := newEnv(t, &frames{})

	_, err := stimulus.NewScriptFromString(env, `x = 1`)
	test.ExpectFailure(t, err)

	_, err = stimulus.NewScriptFromString(env, `function reading(`)
	test.ExpectFailure(t, err)

	sc, err := stimulus.NewScriptFromString(env, `function reading(frame) return "hello" end`)
	test.DemandSuccess(t, err)
	_, err = sc.Reading(0)
	test.ExpectFailure(t, err)
	sc.Close()

	sc, err = stimulus.NewScriptFromString(env, `function reading(frame) error("boom") end`)
	test.DemandSuccess(t, err)
	_, err = sc.Reading(0)
	test.ExpectFailure(t, err)
	sc.Close()

	fn := filepath.Join(t.TempDir(), "walk.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`function reading(frame) return 0x00100000 end`), 0o600))
	s, err := stimulus.Parse(env, "script:"+fn)
	test.DemandSuccess(t, err)
	w, err := s.Reading(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x00100000))
}
