package puzzle

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/TheusHen/mimc52/mimc52"
	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/protocol"
	"github.com/TheusHen/mimc52/mimc52/store"
	"github.com/TheusHen/mimc52/mimc52/store/memory"
)

const (
	// DefaultRounds is the puzzle difficulty when none is configured.
	DefaultRounds = 50000

	// DefaultTTL is how long a puzzle stays solvable.
	DefaultTTL = 2 * time.Minute

	// NonceSize is the length of the random nonce in every puzzle.
	NonceSize = 16
)

var (
	ErrForged   = errors.New("puzzle: challenge was not issued here")
	ErrExpired  = errors.New("puzzle: expired")
	ErrTooEasy  = errors.New("puzzle: fewer rounds than required")
	ErrBadProof = errors.New("puzzle: proof does not verify")
	ErrReplayed = errors.New("puzzle: solution already redeemed")
)

type IssuerConfig struct {
	// Secret keys the challenge MAC. Every server that should accept the
	// same puzzles must share it.
	Secret []byte
	Rounds uint64
	TTL    time.Duration

	// Clock defaults to the wall clock.
	Clock clock.Clock
	// Spent defaults to an in-memory set.
	Spent   store.SpentSet
	Metrics *Metrics
	Logger  *zap.Logger
}

// Issuer creates and checks puzzles.
type Issuer struct {
	macKey  []byte
	rounds  uint64
	ttl     time.Duration
	clock   clock.Clock
	spent   store.SpentSet
	metrics *Metrics
	logger  *zap.Logger
}

func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	macKey, err := deriveKey(cfg.Secret, macKeyInfo, blake2b.Size256)
	if err != nil {
		return nil, err
	}
	iss := &Issuer{
		macKey:  macKey,
		rounds:  cfg.Rounds,
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
		spent:   cfg.Spent,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
	if iss.rounds == 0 {
		iss.rounds = DefaultRounds
	}
	if iss.ttl <= 0 {
		iss.ttl = DefaultTTL
	}
	if iss.clock == nil {
		iss.clock = clock.New()
	}
	if iss.spent == nil {
		iss.spent = memory.New()
	}
	if iss.logger == nil {
		iss.logger = zap.NewNop()
	}
	return iss, nil
}

// Rounds returns the difficulty of newly issued puzzles.
func (i *Issuer) Rounds() uint64 { return i.rounds }

func (i *Issuer) challenge(addr identity.Address, p protocol.Puzzle) protocol.Challenge {
	mac, _ := blake2b.New256(i.macKey)
	a := addr.Bytes()
	mac.Write(a[:])
	var u [8]byte
	binary.BigEndian.PutUint64(u[:], p.Rounds)
	mac.Write(u[:])
	binary.BigEndian.PutUint64(u[:], uint64(p.IssuedAt))
	mac.Write(u[:])
	binary.BigEndian.PutUint64(u[:], uint64(p.ExpiresAt))
	mac.Write(u[:])
	mac.Write(p.Nonce)

	var c protocol.Challenge
	copy(c[:], mac.Sum(nil))
	return c
}

// Issue creates a puzzle bound to addr.
func (i *Issuer) Issue(addr identity.Address) (protocol.Puzzle, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return protocol.Puzzle{}, errors.Wrap(err, "puzzle: nonce")
	}
	now := i.clock.Now()
	p := protocol.Puzzle{
		Rounds:    i.rounds,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(i.ttl).Unix(),
		Nonce:     nonce,
	}
	p.Challenge = i.challenge(addr, p)
	i.metrics.puzzleIssued()
	return p, nil
}

// Check accepts a solution from addr at most once.
func (i *Issuer) Check(addr identity.Address, sol protocol.Solution) error {
	result, err := i.check(addr, sol)
	i.metrics.checked(result)
	return err
}

func (i *Issuer) check(addr identity.Address, sol protocol.Solution) (string, error) {
	p := sol.Puzzle
	if len(p.Nonce) != NonceSize {
		return ResultForged, ErrForged
	}
	want := i.challenge(addr, p)
	if !hmac.Equal(want[:], p.Challenge[:]) {
		return ResultForged, ErrForged
	}
	if p.Rounds < i.rounds {
		return ResultTooEasy, errors.Wrapf(ErrTooEasy, "%d < %d", p.Rounds, i.rounds)
	}
	now := i.clock.Now().Unix()
	if now > p.ExpiresAt {
		return ResultExpired, errors.Wrapf(ErrExpired, "%ds ago", now-p.ExpiresAt)
	}
	if !mimc52.Verify(p.Challenge, p.Rounds, sol.Proof) {
		return ResultBadProof, ErrBadProof
	}
	first, err := i.spent.MarkSpent(p.Challenge, p.ExpiresAt)
	if err != nil {
		return ResultError, errors.Wrap(err, "puzzle: record spent challenge")
	}
	if !first {
		return ResultReplayed, ErrReplayed
	}
	return ResultOK, nil
}

// Prune drops spent challenges whose puzzles have expired.
func (i *Issuer) Prune() (int, error) {
	return i.spent.Prune(i.clock.Now().Unix())
}

// PruneLoop calls Prune every interval until ctx ends.
func (i *Issuer) PruneLoop(ctx context.Context, interval time.Duration) {
	ticker := i.clock.Ticker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := i.Prune()
			if err != nil {
				i.logger.Warn("prune spent challenges", zap.Error(err))
				continue
			}
			if n > 0 {
				i.logger.Debug("pruned spent challenges", zap.Int("count", n))
			}
		}
	}
}
