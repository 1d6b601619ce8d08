package pebble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheusHen/mimc52/mimc52/store"
)

func challenge(b byte) [32]byte {
	var c [32]byte
	c[0] = b
	c[31] = ^b
	return c
}

func TestMarkSpentOnce(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	first, err := s.MarkSpent(challenge(1), 100)
	require.NoError(t, err)
	require.True(t, first)

	again, err := s.MarkSpent(challenge(1), 200)
	require.NoError(t, err)
	require.False(t, again)

	other, err := s.MarkSpent(challenge(2), 100)
	require.NoError(t, err)
	require.True(t, other)
}

func TestSpentSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.MarkSpent(challenge(7), 100)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()
	first, err := s.MarkSpent(challenge(7), 100)
	require.NoError(t, err)
	require.False(t, first)
}

func TestPrune(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	for i := byte(0); i < 10; i++ {
		_, err := s.MarkSpent(challenge(i), int64(i)*10)
		require.NoError(t, err)
	}

	removed, err := s.Prune(50)
	require.NoError(t, err)
	require.Equal(t, 5, removed)

	first, err := s.MarkSpent(challenge(2), 1000)
	require.NoError(t, err)
	require.True(t, first)
	first, err = s.MarkSpent(challenge(5), 1000)
	require.NoError(t, err)
	require.False(t, first)
}

func TestClosed(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.MarkSpent(challenge(1), 1)
	require.ErrorIs(t, err, store.ErrClosed)
	_, err = s.Prune(1)
	require.ErrorIs(t, err, store.ErrClosed)
}
