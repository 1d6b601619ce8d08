// Package store records which puzzle challenges have already been redeemed.
//
// Puzzles are stateless on the issuing side, so without a spent set a
// solution could be replayed until it expires. Entries only need to outlive
// the puzzle they belong to; Prune drops everything past its expiry.
package store

import "errors"

var ErrClosed = errors.New("store: closed")

// SpentSet is a set of challenges keyed by their 32 bytes.
type SpentSet interface {
	// MarkSpent records challenge and reports whether this was the first
	// time it was seen. expiresAt is a unix timestamp after which the entry
	// may be pruned.
	MarkSpent(challenge [32]byte, expiresAt int64) (bool, error)

	// Prune removes entries that expired strictly before now and returns how
	// many were removed.
	Prune(now int64) (int, error)

	Close() error
}
