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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/accelcircle/accelcircle/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. use the -prefs flag or the preferences mode ***"

// separator between key and value on each line of a prefs file.
const separator = " :: "

// Sentinal errors returned by the Disk type.
const (
	DiskNoEntry  = "prefs: no entry for key (%s)"
	DiskDupEntry = "prefs: duplicate entry for key (%s)"
	DiskLoad     = "prefs: load: %v"
	DiskSave     = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// Path returns the file the Disk instance loads from and saves to.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// value is the string that is written to the file and must be unique. The
// pref argument must be one of the types defined in this package.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskDupEntry, key)
	}
	dsk.entries[key] = p
	return nil
}

// Get returns the pref for the key.
func (dsk *Disk) Get(key string) (pref, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, curated.Errorf(DiskNoEntry, key)
	}
	return p, nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// readFile returns the key/value pairs in the prefs file. A missing file is
// not an error and results in an empty map.
func (dsk *Disk) readFile() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue // for loop
		}

		kv := strings.SplitN(line, separator, 2)
		if len(kv) != 2 {
			continue // for loop
		}

		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Entries in the file that are not
// managed by this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		return curated.Errorf(DiskSave, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskSave, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over the values in the file. If saveOnFail is true then the file
// is rewritten when it contained a value that could not be set.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.readFile()
	if err != nil {
		return curated.Errorf(DiskLoad, err)
	}

	var failed bool

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskLoad, err)
			}
			continue // for loop
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				failed = true
			}
		}
	}

	if failed && saveOnFail {
		return dsk.Save()
	}

	return nil
}
