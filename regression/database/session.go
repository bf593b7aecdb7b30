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

// Package database is a simple way of storing structured entries in a bolt
// database. Entries are encoded as YAML and stored under a numeric key in a
// single bucket.
//
// Entry types must be registered with AddEntryType() before the session can
// return entries of that type.
package database

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/accelcircle/accelcircle/curated"
	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"
)

// Sentinel errors for the database package.
const (
	DatabaseError   = "database: %v"
	NoEntry         = "database: no entry with key (%d)"
	UnknownType     = "database: unrecognised entry type (%s)"
	ReadOnlySession = "database: session is read only"
)

// BucketName is the name of the bucket used to store entries.
const BucketName = "entries"

// Activity specifies the type of database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Entry represents the generic entry in the database.
type Entry interface {
	// ID returns the string used to identify the entry type
	ID() string

	// Key returns the key assigned to the entry
	Key() int

	// SetKey is called by the session when the entry is added
	SetKey(int)

	// String implements the Stringer interface
	String() string
}

// Deserialiser creates an entry from the stored data.
type Deserialiser func(key int, data []byte) (Entry, error)

// record is how every entry is stored.
type record struct {
	ID    string      `json:"id"`
	Entry interface{} `json:"entry"`
}

// storedRecord is used to peek at the entry type before passing the
// remainder of the data to the correct deserialiser.
type storedRecord struct {
	ID    string          `json:"id"`
	Entry json.RawMessage `json:"entry"`
}

// Session represents an open database.
type Session struct {
	db       *bbolt.DB
	activity Activity

	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new database session. The init function
// is called once the database has been successfully opened, and is the
// place to register entry types.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	ses := &Session{
		db:         db,
		activity:   activity,
		entryTypes: make(map[string]Deserialiser),
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, curated.Errorf(DatabaseError, err)
	}

	if init != nil {
		if err := init(ses); err != nil {
			db.Close()
			return nil, err
		}
	}

	return ses, nil
}

// EndSession closes the database. Changes are committed as they are made so
// there is nothing else to do.
func (ses *Session) EndSession() error {
	if ses.db == nil {
		return nil
	}
	err := ses.db.Close()
	ses.db = nil
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	return nil
}

// AddEntryType tells the session how to deserialise entries of the type.
func (ses *Session) AddEntryType(id string, des Deserialiser) error {
	if _, ok := ses.entryTypes[id]; ok {
		return curated.Errorf(DatabaseError, fmt.Sprintf("entry type (%s) already registered", id))
	}
	ses.entryTypes[id] = des
	return nil
}

func keyBytes(key int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key))
	return b
}

func (ses *Session) deserialise(k, v []byte) (Entry, error) {
	key := int(binary.BigEndian.Uint64(k))

	var rec storedRecord
	if err := yaml.Unmarshal(v, &rec); err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	des, ok := ses.entryTypes[rec.ID]
	if !ok {
		return nil, curated.Errorf(UnknownType, rec.ID)
	}

	ent, err := des(key, rec.Entry)
	if err != nil {
		return nil, err
	}
	ent.SetKey(key)

	return ent, nil
}

// Add an entry to the database. The entry is given the next available key.
func (ses *Session) Add(ent Entry) error {
	if ses.activity == ActivityReading {
		return curated.Errorf(ReadOnlySession)
	}

	if _, ok := ses.entryTypes[ent.ID()]; !ok {
		return curated.Errorf(UnknownType, ent.ID())
	}

	err := ses.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		ent.SetKey(int(seq))

		data, err := yaml.Marshal(record{ID: ent.ID(), Entry: ent})
		if err != nil {
			return err
		}

		return b.Put(keyBytes(ent.Key()), data)
	})
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// Delete the entry with the key.
func (ses *Session) Delete(key int) error {
	if ses.activity == ActivityReading {
		return curated.Errorf(ReadOnlySession)
	}

	return ses.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		k := keyBytes(key)
		if b.Get(k) == nil {
			return curated.Errorf(NoEntry, key)
		}
		return b.Delete(k)
	})
}

// Update the stored data for an entry that is already in the database.
func (ses *Session) Update(ent Entry) error {
	if ses.activity == ActivityReading {
		return curated.Errorf(ReadOnlySession)
	}

	return ses.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		k := keyBytes(ent.Key())
		if b.Get(k) == nil {
			return curated.Errorf(NoEntry, ent.Key())
		}

		data, err := yaml.Marshal(record{ID: ent.ID(), Entry: ent})
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		return b.Put(k, data)
	})
}

// Get the entry with the key.
func (ses *Session) Get(key int) (Entry, error) {
	var ent Entry

	err := ses.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return curated.Errorf(NoEntry, key)
		}

		k := keyBytes(key)
		v := b.Get(k)
		if v == nil {
			return curated.Errorf(NoEntry, key)
		}

		var err error
		ent, err = ses.deserialise(k, v)
		return err
	})
	if err != nil {
		return nil, err
	}

	return ent, nil
}

// NumEntries returns the number of entries in the database.
func (ses *Session) NumEntries() int {
	n := 0
	_ = ses.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket([]byte(BucketName)); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n
}

// SelectAll entries in the database in key order. The onSelect function is
// called for every entry. Returning false from onSelect ends the selection
// early.
func (ses *Session) SelectAll(onSelect func(Entry) (bool, error)) error {
	return ses.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			ent, err := ses.deserialise(k, v)
			if err != nil {
				return err
			}

			cont, err := onSelect(ent)
			if err != nil {
				return err
			}
			if !cont {
				break // for loop
			}
		}

		return nil
	})
}

// List all entries in the database to the io.Writer.
func (ses *Session) List(output io.Writer) error {
	n := 0
	err := ses.SelectAll(func(ent Entry) (bool, error) {
		fmt.Fprintf(output, "%03d %s\n", ent.Key(), ent)
		n++
		return true, nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "Total: %d\n", n)
	return nil
}
