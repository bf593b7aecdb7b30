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

package regression

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/regression/database"
	"sigs.k8s.io/yaml"
)

const serialEntryID = "serial"

// number of bytes mirrored over the serial line every frame.
const serialFrameLength = 8

// SerialEntry stores the complete serial output of the simulation in a log
// file. The log is compared byte for byte when the test is rerun.
type SerialEntry struct {
	key int

	Setup

	LogFile string    `json:"log"`
	Created time.Time `json:"created"`
	Notes   string    `json:"notes,omitempty"`
}

// NewSerialEntry is the preferred method of initialisation for the
// SerialEntry type. The log file is created by RegressAdd().
func NewSerialEntry(setup Setup, notes string) (*SerialEntry, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}
	return &SerialEntry{
		Setup:   setup,
		Created: time.Now(),
		Notes:   notes,
	}, nil
}

func deserialiseSerialEntry(key int, data []byte) (database.Entry, error) {
	ent := &SerialEntry{key: key}
	if err := yaml.Unmarshal(data, ent); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	return ent, nil
}

// ID implements the database.Entry interface.
func (ent SerialEntry) ID() string {
	return serialEntryID
}

// Key implements the database.Entry interface.
func (ent SerialEntry) Key() int {
	return ent.key
}

// SetKey implements the database.Entry interface.
func (ent *SerialEntry) SetKey(key int) {
	ent.key = key
}

func (ent SerialEntry) String() string {
	s := fmt.Sprintf("[%s] %s", ent.ID(), ent.Setup)
	if ent.Notes != "" {
		s = fmt.Sprintf("%s (%s)", s, ent.Notes)
	}
	return s
}

// regress implements the regression.Regressor interface.
func (ent *SerialEntry) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	var serial bytes.Buffer
	_, err := ent.run(output, msg, &serial)
	if err != nil {
		return false, "", err
	}

	if newRegression {
		ent.LogFile, err = uniqueFilename(serialEntryID, ent.Stimulus)
		if err != nil {
			return false, "", curated.Errorf(RegressionError, err)
		}
		if err := os.WriteFile(ent.LogFile, serial.Bytes(), 0o600); err != nil {
			return false, "", curated.Errorf(RegressionError, err)
		}
		return true, "", nil
	}

	expected, err := os.ReadFile(ent.LogFile)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	got := serial.Bytes()
	for i := 0; i < len(got) && i < len(expected); i++ {
		if got[i] != expected[i] {
			return false, fmt.Sprintf("serial mismatch in frame %d at byte %d (%02x != %02x)",
				i/serialFrameLength, i%serialFrameLength, got[i], expected[i]), nil
		}
	}
	if len(got) != len(expected) {
		return false, fmt.Sprintf("serial length mismatch (%d != %d)", len(got), len(expected)), nil
	}

	return true, "", nil
}

// remove the log file when the entry is deleted from the database.
func (ent *SerialEntry) cleanUp() error {
	if ent.LogFile == "" {
		return nil
	}
	if err := os.Remove(ent.LogFile); err != nil && !os.IsNotExist(err) {
		return curated.Errorf(RegressionError, err)
	}
	return nil
}
