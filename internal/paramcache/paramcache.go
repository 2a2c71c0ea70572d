// Package paramcache is developer tooling for lukechampine.com/cauchyrs's
// search command: it persists already-computed (k, m) parameter rows in a
// small bbolt-backed store so re-running a large sweep doesn't
// recompute rows that haven't changed. It has nothing to do with the
// erasure-coding core's runtime path — create/Encode never open this
// store (spec §6.4: the core has no persisted state).
package paramcache

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"gitlab.com/NebulousLabs/encoding"
	"go.etcd.io/bbolt"
)

var bucketName = []byte("params")

// Row mirrors one entry of the parameter table: the best (w, p, x, y, b)
// found for a given (k, m).
type Row struct {
	K, M, W, P, X, Y, B int
}

// Store wraps a bbolt database of cached Rows, keyed by (k, m).
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if necessary) a parameter cache at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not open parameter cache")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not initialize parameter cache bucket")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(k, m int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(k))
	binary.BigEndian.PutUint32(buf[4:8], uint32(m))
	return buf[:]
}

// Get returns the cached row for (k, m), if any.
func (s *Store) Get(k, m int) (Row, bool, error) {
	var row Row
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key(k, m))
		if v == nil {
			return nil
		}
		found = true
		return encoding.Unmarshal(v, &row)
	})
	if err != nil {
		return Row{}, false, errors.Wrapf(err, "could not read cached row for (k=%d, m=%d)", k, m)
	}
	return row, found, nil
}

// Put stores (overwriting any existing entry) the row for (k, m).
func (s *Store) Put(row Row) error {
	v := encoding.Marshal(row)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key(row.K, row.M), v)
	})
	if err != nil {
		return errors.Wrapf(err, "could not cache row for (k=%d, m=%d)", row.K, row.M)
	}
	return nil
}

// String renders a Row as {k, m, w, p, x, y, b}; its last five fields are
// the entry cauchyrs.PrintTable writes for (k, m), for diffing a cached
// run's output against params.go by eye.
func (r Row) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d, %d, %d, %d}", r.K, r.M, r.W, r.P, r.X, r.Y, r.B)
}
