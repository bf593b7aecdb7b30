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
	"strconv"
	"strings"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/paths"
	"github.com/accelcircle/accelcircle/regression/database"
	"github.com/accelcircle/accelcircle/serialterm/ansi"
)

// Sentinel errors for the regression package.
const (
	RegressionError = "regression: %v"
	InvalidKey      = "regression: invalid key (%s)"
)

// locations of regression files in the resource directory.
const (
	regressionPath = "regression"
	regressionDB   = "regression.db"
	regressionLogs = "logs"
	fails          = "fails"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is set when the entry is being added to the database
	//
	// message is the string that is to be printed during the regression
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	if err := db.AddEntryType(frameEntryID, deserialiseFrameEntry); err != nil {
		return err
	}

	if err := db.AddEntryType(serialEntryID, deserialiseSerialEntry); err != nil {
		return err
	}

	return nil
}

// location of the regression database.
func dbPath() (string, error) {
	return paths.ResourcePath(regressionPath, regressionDB)
}

func startSession(activity database.Activity) (*database.Session, error) {
	pth, err := dbPath()
	if err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	return database.StartSession(pth, activity, initDBSession)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return fmt.Errorf("regression: list: io.Writer should not be nil (use a nopWriter)")
	}

	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession()

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation through the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return fmt.Errorf("regression: delete: io.Writer should not be nil (use a nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return err
	}
	defer db.EndSession()

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}

		if c, ok := ent.(interface{ cleanUp() error }); ok {
			if err := c.cleanUp(); err != nil {
				return err
			}
		}

		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new regression handler to the database. The test is run
// once to establish the expected result.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return fmt.Errorf("regression: add: io.Writer should not be nil (use a nopWriter)")
	}

	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession()

	msg := fmt.Sprintf("adding: %s", reg)
	ok, _, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(RegressionError, "test failed to run")
	}

	if err := db.Add(reg); err != nil {
		return err
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("added: %03d %s\n", reg.Key(), reg)))

	return nil
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested. The special key FAILS adds the keys of tests that failed
// the last time RegressRun() was called.
func RegressRun(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return fmt.Errorf("regression: run: io.Writer should not be nil (use a nopWriter)")
	}

	keysV, err := expandKeys(filterKeys)
	if err != nil {
		if curated.Is(err, NoPreviousFails) {
			output.Write([]byte("no previous fails to rerun\n"))
			return nil
		}
		return err
	}

	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession()

	filterIdx := 0

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	var failed []int

	onSelect := func(ent database.Entry) (bool, error) {
		key := ent.Key()

		// if a list of keys has been supplied then check key in the database
		// against that list (both lists are sorted)
		if len(keysV) > 0 {
			for filterIdx < len(keysV) && keysV[filterIdx] < key {
				filterIdx++
			}

			if filterIdx >= len(keysV) || keysV[filterIdx] != key {
				numSkipped++
				return true, nil
			}
		}

		// database entry should also satisfy Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(RegressionError, "database entry does not satisfy Regressor interface")
		}

		// run regress() function with message. message does not have a
		// trailing newline
		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, failm, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		// print completion message depending on result of regress()
		if err != nil {
			numError++
			failed = append(failed, key)
			output.Write([]byte(fmt.Sprintf("  ERROR: %03d %s\n", key, reg)))

			// output any error message on following line
			if verbose {
				output.Write([]byte(fmt.Sprintf("  ^^ %s\n", err)))
			}

			if failOnError {
				return false, nil
			}
		} else if !ok {
			numFail++
			failed = append(failed, key)
			output.Write([]byte(fmt.Sprintf("failure: %03d %s\n", key, reg)))

			if verbose && failm != "" {
				output.Write([]byte(fmt.Sprintf("  ^^ %s\n", failm)))
			}
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("succeed: %03d %s\n", key, reg)))
		}

		return true, nil
	}

	err = db.SelectAll(onSelect)

	output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)))
	if numError > 0 {
		output.Write([]byte(fmt.Sprintf(" [%d with errors]", numError)))
	}
	output.Write([]byte("\n"))

	if err != nil {
		return err
	}

	return saveFails(failed)
}

// ParseKeys splits the list of arguments into keys. Keys can be separated by
// spaces or commas.
func ParseKeys(args []string) []string {
	var keys []string
	for _, a := range args {
		for _, k := range strings.Split(a, ",") {
			k = strings.TrimSpace(k)
			if k != "" {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
