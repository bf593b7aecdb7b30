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

// Package wavwriter records accelerometer readings to disk as a WAV file.
// One sample is recorded for every frame. Note that the samples are buffered
// in memory in their entirety and written to disk when End() is called.
//
// A recording of the lanes can be played back with the trace stimulus.
package wavwriter

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/logger"
)

// Mode selects what is recorded.
type Mode int

// List of valid Mode values.
const (
	// intensity as a single channel
	Intensity Mode = iota

	// the signed value of each lane. channels are in the order X, Y, Z and
	// temperature
	Lanes
)

func (m Mode) String() string {
	switch m {
	case Intensity:
		return "intensity"
	case Lanes:
		return "lanes"
	}
	return "unknown"
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intensity":
		return Intensity, nil
	case "lanes":
		return Lanes, nil
	}
	return Intensity, curated.Errorf("wavwriter: unknown mode (%s)", s)
}

const bitDepth = 16

// intensity is scaled so that the maximum intensity fills the sample range.
const intensityScale = 64

// lane order of the recorded channels.
var laneOrder = []accel.Lane{accel.X, accel.Y, accel.Z, accel.Temperature}

// WavWriter records readings and writes them to a WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	mode       Mode
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate should be the number of frames per second of the simulation.
func New(filename string, sampleRate int, mode Mode) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", fmt.Sprintf("sample rate must be positive (%d)", sampleRate))
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		mode:       mode,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

func (aw *WavWriter) numChans() int {
	if aw.mode == Lanes {
		return len(laneOrder)
	}
	return 1
}

// AddReading records the reading as the next sample.
func (aw *WavWriter) AddReading(r accel.Reading) {
	switch aw.mode {
	case Lanes:
		for _, l := range laneOrder {
			aw.buffer = append(aw.buffer, int(r.Signed(l))<<(bitDepth-8))
		}
	default:
		v := int(r.Intensity) * intensityScale
		if v > 32767 {
			v = 32767
		}
		aw.buffer = append(aw.buffer, v)
	}
}

// Len returns the number of samples recorded.
func (aw *WavWriter) Len() int {
	return len(aw.buffer) / aw.numChans()
}

// End writes the recorded samples to disk.
func (aw *WavWriter) End(env logger.Permission) (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, aw.numChans(), 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: aw.numChans(),
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(env, "wavwriter", "writing %d %s samples to %s", aw.Len(), aw.mode, aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
