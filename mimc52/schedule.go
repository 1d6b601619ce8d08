package mimc52

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

const (
	// RoundKeyWords is the number of 64-bit words expanded from a challenge.
	RoundKeyWords = 34

	// ChallengeSize is the fixed challenge length in bytes.
	ChallengeSize = 32

	roundWindow   = 32
	roundMask     = roundWindow - 1
	primeSelector = 32
	anchorWord    = 33
)

// scheduleKey is shared by every host producing or checking proofs. It only
// spreads challenge bits; it is not a secret.
var scheduleKey = []byte("abcdefghijklmnopqrstuvwxyz012345")

var scheduleCipher = newScheduleCipher()

func newScheduleCipher() cipher.Block {
	b, err := aes.NewCipher(scheduleKey)
	if err != nil {
		panic(err)
	}
	return b
}

// roundKeys is the expanded challenge: k[0..32) are per-round constants,
// k[32] selects the modulus and k[33] anchors both ends of the walk.
type roundKeys [RoundKeyWords]uint64

// fillK expands a challenge into round keys. The two challenge halves are
// encrypted independently, the first result is folded into the second, and
// every further 16-byte block is the encryption of the block before it.
func fillK(challenge *[ChallengeSize]byte) roundKeys {
	var buf [RoundKeyWords * 8]byte
	scheduleCipher.Encrypt(buf[0:16], challenge[0:16])
	scheduleCipher.Encrypt(buf[16:32], challenge[16:32])
	for i := 0; i < 16; i++ {
		buf[16+i] ^= buf[i]
	}
	for i, j := 16, 32; j < len(buf); i, j = i+16, j+16 {
		scheduleCipher.Encrypt(buf[j:j+16], buf[i:i+16])
	}

	var k roundKeys
	for i := range k {
		k[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return k
}
