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

package preferences

import (
	"fmt"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/firmware"
	"github.com/accelcircle/accelcircle/firmware/delay"
	"github.com/accelcircle/accelcircle/firmware/oled"
	"github.com/accelcircle/accelcircle/hardware/clocks"
	"github.com/accelcircle/accelcircle/paths"
	"github.com/accelcircle/accelcircle/prefs"
)

// Sentinal errors returned when the preferences do not describe a runnable
// simulation.
const (
	ConfigError     = "preferences: %v"
	ByteCyclesError = "preferences: uart byte time of %d cycles does not fit a %d-bit counter"
)

// Preferences defines and collates all the preference values used by the
// simulated hardware and the firmware.
type Preferences struct {
	dsk *prefs.Disk

	// firmware configuration
	CentreX      prefs.Int
	CentreY      prefs.Int
	Radius       prefs.Int
	DelayCycles  prefs.Int
	ColourShift  prefs.Int
	ColourSource prefs.String
	PanelMode    prefs.String

	// hardware
	ClockDivBits      prefs.Int
	CounterWidth      prefs.Int
	CounterStart      prefs.Int
	CyclesPerAccess   prefs.Int
	UARTCyclesPerByte prefs.Int

	// the accelerometer stimulus. see the stimulus package for the format
	Stimulus prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but uses the named file
// rather than the global preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.PanelMode.SetHookPre(func(v prefs.Value) error {
		_, err := oled.ParseMode(v.(string))
		return err
	})
	p.ColourSource.SetHookPre(func(v prefs.Value) error {
		_, err := firmware.ParseColourSource(v.(string))
		return err
	})
	p.CounterWidth.SetHookPre(func(v prefs.Value) error {
		if w := v.(int); w < 1 || w > 32 {
			return fmt.Errorf("counter width must be between 1 and 32")
		}
		return nil
	})
	p.CyclesPerAccess.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("cycles per access must be at least 1")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		val interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"firmware.centrex", &p.CentreX},
		{"firmware.centrey", &p.CentreY},
		{"firmware.radius", &p.Radius},
		{"firmware.delaycycles", &p.DelayCycles},
		{"firmware.colourshift", &p.ColourShift},
		{"firmware.coloursource", &p.ColourSource},
		{"firmware.panelmode", &p.PanelMode},
		{"hardware.clockdivbits", &p.ClockDivBits},
		{"hardware.counterwidth", &p.CounterWidth},
		{"hardware.counterstart", &p.CounterStart},
		{"hardware.cyclesperaccess", &p.CyclesPerAccess},
		{"hardware.uartcyclesperbyte", &p.UARTCyclesPerByte},
		{"hardware.stimulus", &p.Stimulus},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.val); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	cfg := firmware.DefaultConfig()
	_ = p.CentreX.Set(cfg.CentreX)
	_ = p.CentreY.Set(cfg.CentreY)
	_ = p.Radius.Set(cfg.Radius)
	_ = p.DelayCycles.Set(int(cfg.DelayCycles))
	_ = p.ColourShift.Set(int(cfg.ColourShift))
	_ = p.ColourSource.Set(cfg.ColourSource.String())
	_ = p.PanelMode.Set(fmt.Sprintf("%#02x", uint32(cfg.PanelMode)))

	_ = p.ClockDivBits.Set(clocks.DefaultDivBits)
	_ = p.CounterWidth.Set(32)
	_ = p.CounterStart.Set(0)
	_ = p.CyclesPerAccess.Set(1)

	// ten bits at 115200 baud with the default processor clock
	_ = p.UARTCyclesPerByte.Set(272)

	_ = p.Stimulus.Set("constant:0x00100000")
}

// FirmwareConfig returns the firmware configuration described by the
// preferences.
func (p *Preferences) FirmwareConfig() (firmware.Config, error) {
	cfg := firmware.Config{
		CentreX:      p.CentreX.Get().(int),
		CentreY:      p.CentreY.Get().(int),
		Radius:       p.Radius.Get().(int),
		DelayCycles:  uint32(p.DelayCycles.Get().(int)),
		CounterWidth: p.CounterWidth.Get().(int),
		ColourShift:  uint(p.ColourShift.Get().(int)),
	}

	var err error

	cfg.ColourSource, err = firmware.ParseColourSource(p.ColourSource.String())
	if err != nil {
		return cfg, curated.Errorf(ConfigError, err)
	}

	cfg.PanelMode, err = oled.ParseMode(p.PanelMode.String())
	if err != nil {
		return cfg, curated.Errorf(ConfigError, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, curated.Errorf(ConfigError, err)
	}

	return cfg, nil
}

// ByteCycles returns the number of counter cycles taken to transmit a byte
// over the UART. The number must be measurable by the cycle counter or the
// transmitter would never become ready again.
func (p *Preferences) ByteCycles() (uint32, error) {
	cycles := p.UARTCyclesPerByte.Get().(int)
	width := p.CounterWidth.Get().(int)
	if cycles < 1 || !delay.Fits(uint32(cycles), width) {
		return 0, curated.Errorf(ByteCyclesError, cycles, width)
	}
	return uint32(cycles), nil
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
