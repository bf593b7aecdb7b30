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

//go:build !release

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accelcircle/accelcircle/paths"
	"github.com/accelcircle/accelcircle/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".accelcircle", "foo", "bar", "baz"))

	info, err := os.Stat(filepath.Join(".accelcircle", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".accelcircle", "baz"))

	pth, err = paths.ResourcePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".accelcircle")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", " disk ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_disk_"))

	fn = paths.UniqueFilename("serial", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "serial_2"))
}
