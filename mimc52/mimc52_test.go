package mimc52

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func getChallenge(seed string) [ChallengeSize]byte {
	return sha3.Sum256([]byte(seed))
}

func TestKnownAnswers(t *testing.T) {
	var zero [ChallengeSize]byte
	require.Equal(t, uint64(0xfffffffff85c1), Prime(zero))
	require.Equal(t, uint64(0xbf6199f43d209a55), fillK(&zero)[primeSelector])

	vectors := []struct {
		rounds uint64
		proof  uint64
	}{
		{0, 0x7f66392142918},
		{1, 0xbd4f3952dcbed},
		{4, 0x4e6db0157c4cd},
		{5, 0x7271e70a47d60},
		{100, 0x47f751a0e4096},
	}
	for _, v := range vectors {
		require.Equal(t, v.proof, Delay(zero, v.rounds), "rounds=%d", v.rounds)
		require.True(t, Verify(zero, v.rounds, v.proof), "rounds=%d", v.rounds)
	}

	seeded := getChallenge("mimc52")
	require.Equal(t, uint64(0xfffffffff9977), Prime(seeded))
	require.Equal(t, uint64(0x33653c5268bc9), Delay(seeded, 64))
}

func TestZeroChallengeFourRounds(t *testing.T) {
	var challenge [ChallengeSize]byte
	proof := Delay(challenge, 4)
	require.True(t, Verify(challenge, 4, proof))
	require.False(t, Verify(challenge, 5, proof))

	challenge[0] = 1
	require.False(t, Verify(challenge, 4, proof))
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		challenge := getChallenge(fmt.Sprintf("roundtrip-%d", i))
		for _, rounds := range []uint64{0, 1, 2, 31, 32, 33, 100} {
			proof := Delay(challenge, rounds)
			require.LessOrEqual(t, proof, Mask52)
			require.True(t, Verify(challenge, rounds, proof), "seed %d rounds %d", i, rounds)
		}
	}
}

func TestZeroRoundsIsAnchor(t *testing.T) {
	challenge := getChallenge("TestZeroRoundsIsAnchor")
	k := fillK(&challenge)
	anchor := k[anchorWord] % Prime(challenge)

	require.Equal(t, anchor, Delay(challenge, 0))
	require.True(t, Verify(challenge, 0, anchor))
	require.False(t, Verify(challenge, 0, anchor^1))
}

func TestTamperedProofRejected(t *testing.T) {
	for i := 0; i < 4; i++ {
		challenge := getChallenge(fmt.Sprintf("tamper-%d", i))
		proof := Delay(challenge, 8)
		require.True(t, Verify(challenge, 8, proof))
		for bit := 0; bit < 52; bit++ {
			require.False(t, Verify(challenge, 8, proof^(1<<bit)), "seed %d bit %d", i, bit)
		}
	}
}

func TestOtherChallengeRejected(t *testing.T) {
	for i := 0; i < 4; i++ {
		challenge := getChallenge(fmt.Sprintf("tamper-%d", i))
		proof := Delay(challenge, 8)
		for pos := 0; pos < ChallengeSize; pos++ {
			other := challenge
			other[pos] ^= 1
			require.False(t, Verify(other, 8, proof), "seed %d byte %d", i, pos)
		}
	}
}

func TestOtherRoundCountRejected(t *testing.T) {
	for i := 0; i < 4; i++ {
		challenge := getChallenge(fmt.Sprintf("tamper-%d", i))
		proof := Delay(challenge, 8)
		for _, rounds := range []uint64{0, 7, 9, 16, 40} {
			require.False(t, Verify(challenge, rounds, proof), "seed %d rounds %d", i, rounds)
		}
	}
}

func TestNonCanonicalProofRejected(t *testing.T) {
	challenge := getChallenge("TestNonCanonicalProofRejected")
	proof := Delay(challenge, 3)
	p := Prime(challenge)

	require.True(t, Verify(challenge, 3, proof))
	require.False(t, Verify(challenge, 3, proof|1<<60))
	require.False(t, Verify(challenge, 3, p))
	if proof+p <= Mask52 {
		require.False(t, Verify(challenge, 3, proof+p))
	}
}

func TestDelayDeterministic(t *testing.T) {
	challenge := getChallenge("TestDelayDeterministic")
	require.Equal(t, Delay(challenge, 50), Delay(challenge, 50))
}

func TestKeyScheduleDeterministic(t *testing.T) {
	challenge := getChallenge("TestKeyScheduleDeterministic")
	k1 := fillK(&challenge)
	k2 := fillK(&challenge)
	require.Equal(t, k1, k2)

	other := challenge
	other[31] ^= 0x80
	k3 := fillK(&other)
	require.NotEqual(t, k1[primeSelector:], k3[primeSelector:])
}

func TestDelayContextMatchesDelay(t *testing.T) {
	challenge := getChallenge("TestDelayContextMatchesDelay")
	proof, err := DelayContext(context.Background(), challenge, 40)
	require.NoError(t, err)
	require.Equal(t, Delay(challenge, 40), proof)
}

func TestDelayContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DelayContext(ctx, getChallenge("TestDelayContextCancelled"), 1<<40)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDelayContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := DelayContext(ctx, getChallenge("TestDelayContextDeadline"), 1<<40)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestVerifyContextMatchesVerify(t *testing.T) {
	challenge := getChallenge("TestVerifyContextMatchesVerify")
	proof := Delay(challenge, 40)

	ok, err := VerifyContext(context.Background(), challenge, 40, proof)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyContext(context.Background(), challenge, 41, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	ok, err := VerifyContext(ctx, getChallenge("TestVerifyContextDeadline"), 1<<40, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, ok)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestConcurrentCallsAgree(t *testing.T) {
	challenge := getChallenge("TestConcurrentCallsAgree")
	want := Delay(challenge, 64)

	var wg sync.WaitGroup
	results := make([]uint64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Delay(challenge, 64)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestVerifyMuchCheaperThanDelay(t *testing.T) {
	if testing.Short() {
		t.Skip("timing comparison")
	}
	challenge := getChallenge("TestVerifyMuchCheaperThanDelay")
	const rounds = 20000

	start := time.Now()
	proof := Delay(challenge, rounds)
	delayTime := time.Since(start)

	start = time.Now()
	ok := Verify(challenge, rounds, proof)
	verifyTime := time.Since(start)

	require.True(t, ok)
	require.Less(t, verifyTime*5, delayTime, "delay %v verify %v", delayTime, verifyTime)
}

func benchmarkDelay(b *testing.B, rounds uint64) {
	challenge := getChallenge("BenchmarkDelay")
	for i := 0; i < b.N; i++ {
		challenge[0] = byte(i)
		_ = Delay(challenge, rounds)
	}
}

func BenchmarkDelay1K(b *testing.B)  { benchmarkDelay(b, 1000) }
func BenchmarkDelay10K(b *testing.B) { benchmarkDelay(b, 10000) }

func BenchmarkVerify10K(b *testing.B) {
	challenge := getChallenge("BenchmarkVerify")
	proof := Delay(challenge, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(challenge, 10000, proof) {
			b.Fatal("verification failed")
		}
	}
}
