package puzzle

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newPassKeeper(t *testing.T, clk clock.Clock, m *Metrics) *PassKeeper {
	t.Helper()
	pk, err := NewPassKeeper(PassConfig{Secret: testSecret, Lifetime: time.Hour, Clock: clk, Metrics: m})
	require.NoError(t, err)
	return pk
}

func TestPassIssueOpen(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	pk := newPassKeeper(t, clk, m)

	data, err := pk.Issue(addr)
	require.NoError(t, err)
	require.Len(t, data, passSize)

	p, err := pk.Open(data, addr)
	require.NoError(t, err)
	require.Equal(t, addr, p.Address)
	require.Equal(t, clk.Now().Unix(), p.IssuedAt)
	require.Equal(t, clk.Now().Add(time.Hour).Unix(), p.ExpiresAt)

	require.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues(PassIssued)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues(PassAccepted)))
}

func TestPassBoundToAddress(t *testing.T) {
	pk := newPassKeeper(t, clock.NewMock(), nil)
	data, err := pk.Issue(addr)
	require.NoError(t, err)

	_, err = pk.Open(data, addr+1)
	require.ErrorIs(t, err, ErrPassInvalid)
}

func TestPassExpires(t *testing.T) {
	clk := clock.NewMock()
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	pk := newPassKeeper(t, clk, m)
	data, err := pk.Issue(addr)
	require.NoError(t, err)

	clk.Add(time.Hour)
	_, err = pk.Open(data, addr)
	require.NoError(t, err)

	clk.Add(time.Second)
	_, err = pk.Open(data, addr)
	require.ErrorIs(t, err, ErrPassExpired)
	require.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues(PassExpired)))
}

func TestPassTampered(t *testing.T) {
	clk := clock.NewMock()
	pk := newPassKeeper(t, clk, nil)
	data, err := pk.Issue(addr)
	require.NoError(t, err)

	for _, i := range []int{0, 23, 24, len(data) - 1} {
		bad := append([]byte(nil), data...)
		bad[i] ^= 0x01
		_, err := pk.Open(bad, addr)
		require.ErrorIs(t, err, ErrPassInvalid, "byte %d", i)
	}

	_, err = pk.Open(data[:len(data)-1], addr)
	require.ErrorIs(t, err, ErrPassInvalid)
	_, err = pk.Open(nil, addr)
	require.ErrorIs(t, err, ErrPassInvalid)
}

func TestPassFromOtherSecretRejected(t *testing.T) {
	clk := clock.NewMock()
	pk := newPassKeeper(t, clk, nil)
	other, err := NewPassKeeper(PassConfig{Secret: []byte("a different secret of some length"), Clock: clk})
	require.NoError(t, err)

	data, err := other.Issue(addr)
	require.NoError(t, err)
	_, err = pk.Open(data, addr)
	require.ErrorIs(t, err, ErrPassInvalid)
}

func TestPassKeyDiffersFromMACKey(t *testing.T) {
	mac, err := deriveKey(testSecret, macKeyInfo, 32)
	require.NoError(t, err)
	seal, err := deriveKey(testSecret, passKeyInfo, 32)
	require.NoError(t, err)
	require.NotEqual(t, mac, seal)
}

func TestMetricsRegisterTwiceFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.puzzleIssued()
	m.checked(ResultOK)
	m.pass(PassIssued)
}
