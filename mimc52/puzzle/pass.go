package puzzle

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/TheusHen/mimc52/mimc52/identity"
)

// DefaultPassLifetime is how long a pass lets an address skip puzzles.
const DefaultPassLifetime = time.Hour

var (
	ErrPassInvalid = errors.New("puzzle: pass invalid")
	ErrPassExpired = errors.New("puzzle: pass expired")
)

const (
	passPlainSize = identity.AddressLength + 8 + 8
	passSize      = chacha20poly1305.NonceSizeX + passPlainSize + chacha20poly1305.Overhead
)

var passAD = []byte("mimc52 pass v1")

type PassConfig struct {
	Secret   []byte
	Lifetime time.Duration
	Clock    clock.Clock
	Metrics  *Metrics
}

// PassKeeper seals and opens reconnect passes. A pass is opaque to the
// client; only a keeper holding the same secret can open it.
type PassKeeper struct {
	aead     cipher.AEAD
	lifetime time.Duration
	clock    clock.Clock
	metrics  *Metrics
}

// Pass is the content of an opened pass.
type Pass struct {
	Address   identity.Address
	IssuedAt  int64
	ExpiresAt int64
}

func NewPassKeeper(cfg PassConfig) (*PassKeeper, error) {
	key, err := deriveKey(cfg.Secret, passKeyInfo, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	pk := &PassKeeper{aead: aead, lifetime: cfg.Lifetime, clock: cfg.Clock, metrics: cfg.Metrics}
	if pk.lifetime <= 0 {
		pk.lifetime = DefaultPassLifetime
	}
	if pk.clock == nil {
		pk.clock = clock.New()
	}
	return pk, nil
}

// Issue seals a pass for addr.
// Format: nonce (24) || sealed(address (5) || issuedAt (8) || expiresAt (8)) || tag (16)
func (pk *PassKeeper) Issue(addr identity.Address) ([]byte, error) {
	now := pk.clock.Now()
	var plain [passPlainSize]byte
	a := addr.Bytes()
	copy(plain[:identity.AddressLength], a[:])
	binary.BigEndian.PutUint64(plain[identity.AddressLength:], uint64(now.Unix()))
	binary.BigEndian.PutUint64(plain[identity.AddressLength+8:], uint64(now.Add(pk.lifetime).Unix()))

	out := make([]byte, chacha20poly1305.NonceSizeX, passSize)
	if _, err := rand.Read(out); err != nil {
		return nil, errors.Wrap(err, "puzzle: pass nonce")
	}
	out = pk.aead.Seal(out, out, plain[:], passAD)
	pk.metrics.pass(PassIssued)
	return out, nil
}

// Open returns the pass if it was issued to addr and has not expired.
func (pk *PassKeeper) Open(data []byte, addr identity.Address) (Pass, error) {
	p, err := pk.open(data, addr)
	switch {
	case err == nil:
		pk.metrics.pass(PassAccepted)
	case errors.Is(err, ErrPassExpired):
		pk.metrics.pass(PassExpired)
	default:
		pk.metrics.pass(PassInvalid)
	}
	return p, err
}

func (pk *PassKeeper) open(data []byte, addr identity.Address) (Pass, error) {
	if len(data) != passSize {
		return Pass{}, ErrPassInvalid
	}
	nonce, sealed := data[:chacha20poly1305.NonceSizeX], data[chacha20poly1305.NonceSizeX:]
	plain, err := pk.aead.Open(nil, nonce, sealed, passAD)
	if err != nil {
		return Pass{}, ErrPassInvalid
	}

	var raw [identity.AddressLength]byte
	copy(raw[:], plain)
	p := Pass{
		Address:   identity.AddressFromBytes(raw),
		IssuedAt:  int64(binary.BigEndian.Uint64(plain[identity.AddressLength:])),
		ExpiresAt: int64(binary.BigEndian.Uint64(plain[identity.AddressLength+8:])),
	}
	if p.Address != addr {
		return Pass{}, ErrPassInvalid
	}
	if now := pk.clock.Now().Unix(); now > p.ExpiresAt {
		return Pass{}, errors.Wrapf(ErrPassExpired, "%ds ago", now-p.ExpiresAt)
	}
	return p, nil
}
