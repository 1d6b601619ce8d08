package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheusHen/mimc52/mimc52/store"
)

func TestMarkSpentOnce(t *testing.T) {
	s := New()
	var c [32]byte
	c[3] = 9

	first, err := s.MarkSpent(c, 100)
	require.NoError(t, err)
	require.True(t, first)

	again, err := s.MarkSpent(c, 100)
	require.NoError(t, err)
	require.False(t, again)
	require.Equal(t, 1, s.Len())
}

func TestPrune(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		var c [32]byte
		c[0] = byte(i)
		_, err := s.MarkSpent(c, int64(i))
		require.NoError(t, err)
	}

	removed, err := s.Prune(4)
	require.NoError(t, err)
	require.Equal(t, 4, removed)
	require.Equal(t, 6, s.Len())
}

func TestConcurrentMarkSpentSingleWinner(t *testing.T) {
	s := New()
	var c [32]byte

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			first, err := s.MarkSpent(c, 1)
			if err == nil && first {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}

func TestClosed(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())
	_, err := s.MarkSpent([32]byte{}, 1)
	require.ErrorIs(t, err, store.ErrClosed)
	_, err = s.Prune(1)
	require.ErrorIs(t, err, store.ErrClosed)
}
