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
	"fmt"
	"io"
	"time"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/regression/database"
	"sigs.k8s.io/yaml"
)

const frameEntryID = "frame"

// FrameEntry is the simplest regression database entry type. It stores the
// digest of the simulation after a number of frames.
type FrameEntry struct {
	key int

	Setup

	Digest  string    `json:"digest"`
	Created time.Time `json:"created"`
	Notes   string    `json:"notes,omitempty"`
}

// NewFrameEntry is the preferred method of initialisation for the FrameEntry
// type. The digest is filled in by RegressAdd().
func NewFrameEntry(setup Setup, notes string) (*FrameEntry, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}
	return &FrameEntry{
		Setup:   setup,
		Created: time.Now(),
		Notes:   notes,
	}, nil
}

func deserialiseFrameEntry(key int, data []byte) (database.Entry, error) {
	ent := &FrameEntry{key: key}
	if err := yaml.Unmarshal(data, ent); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	return ent, nil
}

// ID implements the database.Entry interface.
func (ent FrameEntry) ID() string {
	return frameEntryID
}

// Key implements the database.Entry interface.
func (ent FrameEntry) Key() int {
	return ent.key
}

// SetKey implements the database.Entry interface.
func (ent *FrameEntry) SetKey(key int) {
	ent.key = key
}

func (ent FrameEntry) String() string {
	s := fmt.Sprintf("[%s] %s", ent.ID(), ent.Setup)
	if ent.Notes != "" {
		s = fmt.Sprintf("%s (%s)", s, ent.Notes)
	}
	return s
}

// regress implements the regression.Regressor interface.
func (ent *FrameEntry) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	dig, err := ent.run(output, msg, nil)
	if err != nil {
		return false, "", err
	}

	if newRegression {
		ent.Digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != ent.Digest {
		return false, fmt.Sprintf("digest mismatch (%s != %s)", dig.Hash(), ent.Digest), nil
	}

	return true, "", nil
}
