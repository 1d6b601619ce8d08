package puzzle

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MinSecretSize is the shortest server secret accepted.
const MinSecretSize = 16

var ErrShortSecret = errors.New("puzzle: secret too short")

const (
	macKeyInfo  = "mimc52 puzzle mac"
	passKeyInfo = "mimc52 pass seal"
)

// deriveKey expands the server secret into an independent key per use.
func deriveKey(secret []byte, info string, length int) ([]byte, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrShortSecret
	}
	hk := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}
