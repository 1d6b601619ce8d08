package puzzle

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/protocol"
	"github.com/TheusHen/mimc52/mimc52/store/memory"
)

const testRounds = 48

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fixture struct {
	clock   *clock.Mock
	spent   *memory.Store
	metrics *Metrics
	issuer  *Issuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{clock: clock.NewMock(), spent: memory.New()}
	f.clock.Set(time.Unix(1_700_000_000, 0))

	var err error
	f.metrics, err = NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	f.issuer, err = NewIssuer(IssuerConfig{
		Secret:  testSecret,
		Rounds:  testRounds,
		TTL:     time.Minute,
		Clock:   f.clock,
		Spent:   f.spent,
		Metrics: f.metrics,
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) checks(result string) float64 {
	return testutil.ToFloat64(f.metrics.checks.WithLabelValues(result))
}

const addr = identity.Address(0x0a0b0c0d0e)

func TestIssueSolveCheck(t *testing.T) {
	f := newFixture(t)

	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(testRounds), p.Rounds)
	require.Equal(t, f.clock.Now().Add(time.Minute).Unix(), p.ExpiresAt)
	require.Len(t, p.Nonce, NonceSize)

	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.NoError(t, f.issuer.Check(addr, sol))

	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.issued))
	require.Equal(t, 1.0, f.checks(ResultOK))
	require.Equal(t, 1, f.spent.Len())
}

func TestIssueIsStatelessAcrossIssuers(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	other, err := NewIssuer(IssuerConfig{Secret: testSecret, Rounds: testRounds, Clock: f.clock})
	require.NoError(t, err)
	require.NoError(t, other.Check(addr, sol))
}

func TestCheckRejectsReplay(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	require.NoError(t, f.issuer.Check(addr, sol))
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrReplayed)
	require.Equal(t, 1.0, f.checks(ResultReplayed))
}

func TestCheckRejectsOtherAddress(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	require.ErrorIs(t, f.issuer.Check(addr+1, sol), ErrForged)
	require.Equal(t, 1.0, f.checks(ResultForged))
}

func TestCheckRejectsEditedPuzzle(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)

	easier := p
	easier.Rounds = 1
	sol, err := Solve(context.Background(), easier)
	require.NoError(t, err)
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrForged)

	extended := p
	extended.ExpiresAt += 3600
	sol, err = Solve(context.Background(), extended)
	require.NoError(t, err)
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrForged)

	shortNonce := p
	shortNonce.Nonce = p.Nonce[:4]
	require.ErrorIs(t, f.issuer.Check(addr, protocol.Solution{Puzzle: shortNonce}), ErrForged)
}

func TestCheckRejectsWrongSecret(t *testing.T) {
	f := newFixture(t)
	other, err := NewIssuer(IssuerConfig{Secret: []byte("another secret, also long enough"), Rounds: testRounds, Clock: f.clock})
	require.NoError(t, err)

	p, err := other.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrForged)
}

func TestCheckRejectsExpired(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	f.clock.Add(time.Minute + time.Second)
	err = f.issuer.Check(addr, sol)
	require.ErrorIs(t, err, ErrExpired)
	require.Equal(t, 1.0, f.checks(ResultExpired))
	require.Zero(t, f.spent.Len())
}

func TestCheckAcceptsAtExpiry(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	f.clock.Add(time.Minute)
	require.NoError(t, f.issuer.Check(addr, sol))
}

func TestCheckRejectsBadProof(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)

	sol.Proof ^= 1 << 7
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrBadProof)
	require.Equal(t, 1.0, f.checks(ResultBadProof))
	require.Zero(t, f.spent.Len())
}

func TestCheckRejectsPuzzleFromEasierConfig(t *testing.T) {
	f := newFixture(t)
	easy, err := NewIssuer(IssuerConfig{Secret: testSecret, Rounds: testRounds / 2, Clock: f.clock})
	require.NoError(t, err)

	p, err := easy.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.ErrorIs(t, f.issuer.Check(addr, sol), ErrTooEasy)
	require.Equal(t, 1.0, f.checks(ResultTooEasy))
}

func TestSolveCancelled(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	p.Rounds = 1 << 40

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Solve(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewIssuerShortSecret(t *testing.T) {
	_, err := NewIssuer(IssuerConfig{Secret: []byte("short")})
	require.ErrorIs(t, err, ErrShortSecret)
}

func TestNewIssuerDefaults(t *testing.T) {
	iss, err := NewIssuer(IssuerConfig{Secret: testSecret})
	require.NoError(t, err)
	require.Equal(t, uint64(DefaultRounds), iss.Rounds())
	require.Equal(t, DefaultTTL, iss.ttl)
}

func TestPrune(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		p, err := f.issuer.Issue(addr)
		require.NoError(t, err)
		sol, err := Solve(context.Background(), p)
		require.NoError(t, err)
		require.NoError(t, f.issuer.Check(addr, sol))
	}

	n, err := f.issuer.Prune()
	require.NoError(t, err)
	require.Zero(t, n)

	f.clock.Add(2 * time.Minute)
	n, err = f.issuer.Prune()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Zero(t, f.spent.Len())
}

func TestPruneLoop(t *testing.T) {
	f := newFixture(t)
	p, err := f.issuer.Issue(addr)
	require.NoError(t, err)
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.NoError(t, f.issuer.Check(addr, sol))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.issuer.PruneLoop(ctx, 30*time.Second)
		close(done)
	}()

	require.Eventually(t, func() bool {
		f.clock.Add(30 * time.Second)
		return f.spent.Len() == 0
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
