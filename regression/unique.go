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
	"os"
	"strings"

	"github.com/accelcircle/accelcircle/paths"
)

// create a unique filename for a stimulus description. used when saving
// serial logs into the regressionLogs directory. calls paths.UniqueFilename()
// to maintain common formatting used in the project.
func uniqueFilename(prepend string, stimulus string) (string, error) {
	label, _, _ := strings.Cut(stimulus, ":")
	f := paths.UniqueFilename(prepend, label)

	pth, err := paths.ResourcePath(regressionPath, regressionLogs, f)
	if err != nil {
		return "", err
	}

	// more than one log can be created in the same second
	unique := pth
	for i := 1; ; i++ {
		if _, err := os.Stat(unique); os.IsNotExist(err) {
			break // for loop
		}
		unique = fmt.Sprintf("%s_%d", pth, i)
	}

	return unique, nil
}
