package memory

import (
	"sync"

	"github.com/TheusHen/mimc52/mimc52/store"
)

// Store is an in-memory spent set.
// It is useful for tests, examples and single-process servers.
type Store struct {
	mu     sync.Mutex
	spent  map[[32]byte]int64
	closed bool
}

func New() *Store {
	return &Store{spent: map[[32]byte]int64{}}
}

func (s *Store) MarkSpent(challenge [32]byte, expiresAt int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, store.ErrClosed
	}
	if _, ok := s.spent[challenge]; ok {
		return false, nil
	}
	s.spent[challenge] = expiresAt
	return true, nil
}

func (s *Store) Prune(now int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, store.ErrClosed
	}
	removed := 0
	for c, exp := range s.spent {
		if exp < now {
			delete(s.spent, c)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of tracked challenges.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.spent)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.spent = nil
	return nil
}

var _ store.SpentSet = (*Store)(nil)
