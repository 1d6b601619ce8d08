package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPuzzleSolutionEncoding(t *testing.T) {
	var c Challenge
	for i := range c {
		c[i] = byte(i)
	}
	p := Puzzle{Challenge: c, Rounds: 1000, IssuedAt: 10, ExpiresAt: 70, Nonce: []byte{1, 2, 3}}

	encoded, err := EncodePuzzle(p)
	require.NoError(t, err)
	require.Contains(t, string(encoded), c.String())

	decoded, err := DecodePuzzle(encoded)
	require.NoError(t, err)
	require.Equal(t, p, decoded)

	sol := Solution{Puzzle: p, Proof: 0x7f66392142918}
	encoded, err = EncodeSolution(sol)
	require.NoError(t, err)
	decodedSol, err := DecodeSolution(encoded)
	require.NoError(t, err)
	require.Equal(t, sol, decodedSol)
}

func TestChallengeRejectsBadHex(t *testing.T) {
	_, err := DecodePuzzle([]byte(`{"challenge":"abcd"}`))
	require.ErrorIs(t, err, ErrInvalidChallenge)

	bad := make([]byte, 64)
	for i := range bad {
		bad[i] = 'z'
	}
	_, err = DecodePuzzle([]byte(`{"challenge":"` + string(bad) + `"}`))
	require.ErrorIs(t, err, ErrInvalidChallenge)
}

func TestRejectEncoding(t *testing.T) {
	encoded, err := EncodeReject(Reject{Reason: "expired"})
	require.NoError(t, err)
	r, err := DecodeReject(encoded)
	require.NoError(t, err)
	require.Equal(t, "expired", r.Reason)

	_, err = DecodeReject([]byte(`{}`))
	require.ErrorIs(t, err, ErrMissingReason)
}

func TestWelcomeRequiresHello(t *testing.T) {
	_, err := DecodeWelcome([]byte(`{"pass":"AAAA"}`))
	require.ErrorIs(t, err, ErrHelloMissingKey)
}
