// Package benchstore wraps github.com/cockroachdb/pebble as the baseline
// comparison store the benchmark harness measures the elastic binary trees
// against: same Create/Read/Update/Delete shape as
// github.com/ssargent/freyjadb's pkg/storage.DefaultStorage, but keyed by
// the caller's own raw bytes instead of a minted KSUID, so the same key
// sequence can drive both a Store and an ebindex tree for a fair
// comparison.
package benchstore

import "github.com/cockroachdb/pebble"

// Store is a durable key/value store backed by a pebble LSM tree.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a Store rooted at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Set writes data under key, overwriting any previous value.
func (s *Store) Set(key, data []byte) error {
	return s.db.Set(key, data, pebble.NoSync)
}

// Get returns the data stored under key.
func (s *Store) Get(key []byte) ([]byte, error) {
	data, closer, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes key. It is not an error to delete a key that is not
// present.
func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, pebble.NoSync)
}

// NewIter returns an iterator over the store's keys in sorted order,
// mirroring the in-order traversal the tree packages expose via
// First/Next, so a benchmark can walk both stores identically.
func (s *Store) NewIter() (*pebble.Iterator, error) {
	return s.db.NewIter(nil)
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
