// Package pebble keeps the spent set in a Pebble database so replay
// protection survives restarts.
package pebble

import (
	"encoding/binary"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"github.com/TheusHen/mimc52/mimc52/store"
)

const spentPrefix byte = 0x01

// Store is a spent set backed by Pebble. Keys are 0x01 || challenge, values
// the big-endian expiry.
type Store struct {
	// mu serializes MarkSpent so the read-then-write is atomic.
	mu sync.Mutex
	db *pebble.DB
}

func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open spent set")
	}
	return &Store{db: db}, nil
}

func spentKey(challenge [32]byte) []byte {
	key := make([]byte, 0, 1+len(challenge))
	key = append(key, spentPrefix)
	return append(key, challenge[:]...)
}

func (s *Store) MarkSpent(challenge [32]byte, expiresAt int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return false, store.ErrClosed
	}

	key := spentKey(challenge)
	_, closer, err := s.db.Get(key)
	if err == nil {
		_ = closer.Close()
		return false, nil
	}
	if !errors.Is(err, pebble.ErrNotFound) {
		return false, errors.Wrap(err, "mark spent")
	}

	var value [8]byte
	binary.BigEndian.PutUint64(value[:], uint64(expiresAt))
	if err := s.db.Set(key, value[:], &pebble.WriteOptions{Sync: true}); err != nil {
		return false, errors.Wrap(err, "mark spent")
	}
	return true, nil
}

func (s *Store) Prune(now int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, store.ErrClosed
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{spentPrefix},
		UpperBound: []byte{spentPrefix + 1},
	})
	if err != nil {
		return 0, errors.Wrap(err, "prune")
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	removed := 0
	for iter.First(); iter.Valid(); iter.Next() {
		value := iter.Value()
		if len(value) != 8 || int64(binary.BigEndian.Uint64(value)) < now {
			if err := batch.Delete(iter.Key(), nil); err != nil {
				_ = iter.Close()
				return 0, errors.Wrap(err, "prune")
			}
			removed++
		}
	}
	if err := iter.Close(); err != nil {
		return 0, errors.Wrap(err, "prune")
	}
	if err := batch.Commit(&pebble.WriteOptions{Sync: true}); err != nil {
		return 0, errors.Wrap(err, "prune")
	}
	return removed, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

var _ store.SpentSet = (*Store)(nil)
