package ratelimit

import (
	"errors"
	"strconv"
	"time"

	"github.com/tidwall/buntdb"
)

// BuntStore is an AttemptStore backed by buntdb, so attempt counts
// survive process restarts when the database is file-backed. Keys
// expire via buntdb's TTL support.
type BuntStore struct {
	db *buntdb.DB
}

// NewBuntStore opens a buntdb-backed attempt store. Use ":memory:" for
// an ephemeral store.
func NewBuntStore(path string) (*BuntStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	return &BuntStore{db: db}, nil
}

// Increment implements AttemptStore. The TTL is set on the first
// attempt and carried over on later ones, so the window runs from the
// first attempt rather than sliding.
func (s *BuntStore) Increment(key string, window time.Duration) (int, error) {
	count := 0
	err := s.db.Update(func(tx *buntdb.Tx) error {
		ttl := window

		v, err := tx.Get(key)
		if err == nil {
			count, err = strconv.Atoi(v)
			if err != nil {
				return err
			}
			remaining, err := tx.TTL(key)
			if err != nil {
				return err
			}
			if remaining > 0 {
				ttl = remaining
			}
		} else if !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}

		count++
		_, _, err = tx.Set(key, strconv.Itoa(count), &buntdb.SetOptions{Expires: true, TTL: ttl})
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the underlying database.
func (s *BuntStore) Close() error {
	return s.db.Close()
}
