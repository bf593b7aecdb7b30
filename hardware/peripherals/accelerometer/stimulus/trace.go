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

package stimulus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/logger"
)

const traceLogTag = "trace"

// Trace plays back a recording. Each channel of the recording drives one
// lane: the first channel is X, then Y, then Z and then temperature.
// Samples are scaled to signed bytes. The recording loops when it reaches
// the end.
type Trace struct {
	filename   string
	sampleRate float64

	// frames per second of the simulation. zero means one sample per frame
	fps float64

	// one slice of samples per channel
	channels [][]int8
}

// NewTrace loads a WAV or MP3 file. MP3 files are always decoded as two
// channels.
func NewTrace(env *environment.Environment, filename string, fps float64) (*Trace, error) {
	tr := &Trace{
		filename: filename,
		fps:      fps,
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(BadStimulus, "trace", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		err = tr.loadWAV(env, f)
	case ".mp3":
		err = tr.loadMP3(env, f)
	default:
		err = fmt.Errorf("unsupported file type (%s)", filepath.Ext(filename))
	}
	if err != nil {
		return nil, curated.Errorf(BadStimulus, "trace", err)
	}

	if len(tr.channels) == 0 || len(tr.channels[0]) == 0 {
		return nil, curated.Errorf(BadStimulus, "trace", "no samples")
	}

	logger.Logf(env, traceLogTag, "%s: %d channels, %d samples at %0.2fHz", filepath.Base(filename),
		len(tr.channels), len(tr.channels[0]), tr.sampleRate)

	return tr, nil
}

func (tr *Trace) loadWAV(env *environment.Environment, r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		return fmt.Errorf("wav: no channels")
	}
	if numChans > 4 {
		logger.Logf(env, traceLogTag, "wav: using first 4 of %d channels", numChans)
	}

	// 8 bit wav data is unsigned. wider data is signed and reduced to the
	// top 8 bits
	bitDepth := int(dec.BitDepth)
	scale := func(s int) int8 {
		if bitDepth <= 8 {
			return int8(s - 128)
		}
		return clamp(s >> uint(bitDepth-8))
	}

	used := numChans
	if used > 4 {
		used = 4
	}
	tr.channels = make([][]int8, used)
	for i := 0; i+numChans <= len(buf.Data); i += numChans {
		for c := 0; c < used; c++ {
			tr.channels[c] = append(tr.channels[c], scale(buf.Data[i+c]))
		}
	}

	tr.sampleRate = float64(dec.SampleRate)
	return nil
}

func (tr *Trace) loadMP3(env *environment.Environment, r io.Reader) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16 bit little endian stereo
	tr.channels = make([][]int8, 2)

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+3 < n; i += 4 {
			left := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			right := int16(uint16(chunk[i+2]) | uint16(chunk[i+3])<<8)
			tr.channels[0] = append(tr.channels[0], int8(left>>8))
			tr.channels[1] = append(tr.channels[1], int8(right>>8))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break // for loop
		}
		if err != nil {
			return fmt.Errorf("mp3: %w", err)
		}
	}

	tr.sampleRate = float64(dec.SampleRate())
	logger.Log(env, traceLogTag, "loaded from mp3 file")

	return nil
}

func (tr *Trace) String() string {
	if tr.fps > 0 {
		return fmt.Sprintf("trace:%s@%g", tr.filename, tr.fps)
	}
	return fmt.Sprintf("trace:%s", tr.filename)
}

// Len returns the number of samples in the recording.
func (tr *Trace) Len() int {
	return len(tr.channels[0])
}

// Channels returns the number of channels in use.
func (tr *Trace) Channels() int {
	return len(tr.channels)
}

// index of the sample for the frame
func (tr *Trace) index(frame int) int {
	idx := frame
	if tr.fps > 0 && tr.sampleRate > 0 {
		idx = int(float64(frame) * tr.sampleRate / tr.fps)
	}
	idx %= tr.Len()
	if idx < 0 {
		idx += tr.Len()
	}
	return idx
}

// Reading implements the accelerometer.Stimulus interface.
func (tr *Trace) Reading(frame int) (uint32, error) {
	idx := tr.index(frame)

	var lanes [4]int8
	for c := range tr.channels {
		lanes[c] = tr.channels[c][idx]
	}

	return Pack(lanes[3], lanes[0], lanes[1], lanes[2]), nil
}
