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

package performance_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/accelcircle/accelcircle/hardware"
	"github.com/accelcircle/accelcircle/hardware/preferences"
	"github.com/accelcircle/accelcircle/performance"
	"github.com/accelcircle/accelcircle/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("gpu")
	test.ExpectFailure(t, err)
}

func TestCalcSpeed(t *testing.T) {
	// one second of simulated time at the default clock in two seconds
	fps, speed := performance.CalcSpeed(100, 3125000, 5, 2*time.Second)
	test.ExpectApproximate(t, fps, 50.0, 0.001)
	test.ExpectApproximate(t, speed, 50.0, 0.001)

	fps, speed = performance.CalcSpeed(100, 3125000, 5, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, speed, 0.0)
}

func TestCheck(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.DelayCycles.Set(1000))

	soc, err := hardware.NewSoC("performance", p)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, performance.Check(w, performance.ProfileNone, soc, 50*time.Millisecond))
	test.ExpectSuccess(t, strings.Contains(w.String(), "fps"))
	test.ExpectSuccess(t, soc.CurrentFrame() > 0)

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, soc, 0))
}
