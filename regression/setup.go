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

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/digest"
	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/hardware"
	"github.com/accelcircle/accelcircle/serialterm/ansi"
)

// Setup describes how the simulation is prepared for a regression test.
// Empty preference fields leave the default value in place.
type Setup struct {
	Stimulus     string `json:"stimulus"`
	NumFrames    int    `json:"frames"`
	PanelMode    string `json:"panelMode,omitempty"`
	ColourSource string `json:"colourSource,omitempty"`
}

func (set Setup) String() string {
	s := fmt.Sprintf("%s frames=%d", set.Stimulus, set.NumFrames)
	if set.PanelMode != "" {
		s = fmt.Sprintf("%s mode=%s", s, set.PanelMode)
	}
	if set.ColourSource != "" {
		s = fmt.Sprintf("%s colour=%s", s, set.ColourSource)
	}
	return s
}

func (set Setup) validate() error {
	if set.Stimulus == "" {
		return curated.Errorf(RegressionError, "no stimulus")
	}
	if set.NumFrames <= 0 {
		return curated.Errorf(RegressionError, fmt.Sprintf("number of frames must be positive (%d)", set.NumFrames))
	}
	return nil
}

// run the firmware on a normalised SoC. The serial writer can be nil. The
// returned digest includes both the panel and the serial output.
func (set Setup) run(output io.Writer, message string, serial io.Writer) (*digest.Video, error) {
	if err := set.validate(); err != nil {
		return nil, err
	}

	soc, err := hardware.NewSoC("regression", nil)
	if err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	if err := soc.Normalise(); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	if set.PanelMode != "" {
		if err := soc.Env.Prefs.PanelMode.Set(set.PanelMode); err != nil {
			return nil, curated.Errorf(RegressionError, err)
		}
	}
	if set.ColourSource != "" {
		if err := soc.Env.Prefs.ColourSource.Set(set.ColourSource); err != nil {
			return nil, curated.Errorf(RegressionError, err)
		}
	}

	if err := soc.AttachStimulus(set.Stimulus); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	dig := digest.NewVideo(soc.OLED)
	if serial != nil {
		soc.UART.AttachSink(io.MultiWriter(dig, serial))
	} else {
		soc.UART.AttachSink(dig)
	}

	fw, err := soc.NewFirmware()
	if err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	err = soc.Run(fw, set.NumFrames, func(frame int, _ accel.Reading) (bool, error) {
		if frame%10 == 0 {
			output.Write([]byte(fmt.Sprintf("%s%s [%d/%d]", ansi.ClearLine, message, frame, set.NumFrames)))
		}
		return true, nil
	})
	if err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	if err := soc.End(); err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}

	return dig, nil
}
