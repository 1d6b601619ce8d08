package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
)

var (
	ErrInvalidPublicKey  = errors.New("identity: invalid Ed25519 public key size")
	ErrInvalidPrivateKey = errors.New("identity: invalid Ed25519 private key size")
)

// KeyPair holds the Ed25519 keys an address is bound to.
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

func NewKeyPair(publicKey, privateKey []byte) (KeyPair, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return KeyPair{}, ErrInvalidPublicKey
	}
	if len(privateKey) != ed25519.PrivateKeySize {
		return KeyPair{}, ErrInvalidPrivateKey
	}
	return KeyPair{PublicKey: ed25519.PublicKey(publicKey), PrivateKey: ed25519.PrivateKey(privateKey)}, nil
}

func (kp KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.PrivateKey, message)
}

func Verify(publicKey ed25519.PublicKey, message, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}
