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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/accelcircle/accelcircle/curated"
)

// FailsKey can be given in place of, or as well as, the keys of entries to
// run. It stands for the entries that failed the last time RegressRun() was
// called.
const FailsKey = "FAILS"

// Sentinel errors returned when handling the list of failed entries.
const (
	NoPreviousFails = "regression: no previous fails"
	FailsError      = "regression: fails: %v"
)

// the list of failed entries is kept in the same directory as the database.
func failsPath() (string, error) {
	pth, err := dbPath()
	if err != nil {
		return "", curated.Errorf(FailsError, err)
	}
	return filepath.Join(filepath.Dir(pth), fails), nil
}

// save the keys of failed entries, one per line. an empty list leaves an empty
// file so that a later FAILS key reports that there is nothing to rerun.
func saveFails(keys []int) error {
	pth, err := failsPath()
	if err != nil {
		return err
	}

	slices.Sort(keys)
	keys = slices.Compact(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%d\n", k))
	}

	if err := os.WriteFile(pth, []byte(s.String()), 0o644); err != nil {
		return curated.Errorf(FailsError, err)
	}

	return nil
}

// load the keys saved by saveFails(). a missing file is the same as an empty
// list.
func loadFails() ([]int, error) {
	pth, err := failsPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, curated.Errorf(FailsError, err)
	}
	defer f.Close()

	var keys []int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue // for loop
		}
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, curated.Errorf(FailsError, curated.Errorf(InvalidKey, s))
		}
		keys = append(keys, k)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FailsError, err)
	}

	return keys, nil
}

// expandKeys converts the keys given to RegressRun() into a sorted list of
// entry keys without duplicates. FailsKey is replaced with the keys saved by
// the previous run. NoPreviousFails is returned if FailsKey is the only key
// and there were no failures.
func expandKeys(keys []string) ([]int, error) {
	var expanded []int
	var withFails bool

	for _, k := range keys {
		if strings.ToUpper(k) == FailsKey {
			withFails = true
			continue // for loop
		}
		v, err := strconv.Atoi(k)
		if err != nil {
			return nil, curated.Errorf(InvalidKey, k)
		}
		expanded = append(expanded, v)
	}

	if withFails {
		prev, err := loadFails()
		if err != nil {
			return nil, err
		}
		if len(prev) == 0 && len(expanded) == 0 {
			return nil, curated.Errorf(NoPreviousFails)
		}
		expanded = append(expanded, prev...)
	}

	slices.Sort(expanded)
	return slices.Compact(expanded), nil
}
