package identity

import (
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/TheusHen/mimc52/mimc52"
)

const (
	// DefaultRounds is the delay every new identity pays unless configured
	// otherwise.
	DefaultRounds = 4096

	// DefaultMaxRounds caps the identity proofs a peer agrees to verify.
	// Checking a proof costs time linear in its rounds.
	DefaultMaxRounds = 1 << 20
)

var (
	ErrInvalidIdentityProof = errors.New("identity: invalid identity proof")
	ErrReservedAddress      = errors.New("identity: address is reserved")
)

// Identity is a key pair together with the address it minted. The address
// commits to a delay proof over the public key, so creating identities in
// bulk costs sequential work per identity.
type Identity struct {
	KeyPair KeyPair
	Address Address
	Proof   uint64
	Rounds  uint64
}

// Challenge is the delay challenge for a public key.
func Challenge(publicKey ed25519.PublicKey) [mimc52.ChallengeSize]byte {
	return sha3.Sum256(publicKey)
}

func addressFor(publicKey ed25519.PublicKey, challenge [mimc52.ChallengeSize]byte, proof uint64) Address {
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], proof)

	h := sha3.New256()
	h.Write(publicKey)
	h.Write(challenge[:])
	h.Write(p[:])
	sum := h.Sum(nil)

	var raw [AddressLength]byte
	copy(raw[:], sum)
	return AddressFromBytes(raw)
}

// Generate creates key pairs until one yields an unreserved address. Each
// attempt runs the full delay, so ctx bounds the total time spent.
func Generate(ctx context.Context, rounds uint64) (Identity, error) {
	for {
		kp, err := GenerateKeyPair()
		if err != nil {
			return Identity{}, err
		}
		id, err := mint(ctx, kp, rounds)
		if errors.Is(err, ErrReservedAddress) {
			continue
		}
		return id, err
	}
}

// FromKeyPair mints the identity for an existing key pair. It fails with
// ErrReservedAddress when the key cannot be used.
func FromKeyPair(ctx context.Context, kp KeyPair, rounds uint64) (Identity, error) {
	if len(kp.PublicKey) != ed25519.PublicKeySize {
		return Identity{}, ErrInvalidPublicKey
	}
	return mint(ctx, kp, rounds)
}

func mint(ctx context.Context, kp KeyPair, rounds uint64) (Identity, error) {
	challenge := Challenge(kp.PublicKey)
	proof, err := mimc52.DelayContext(ctx, challenge, rounds)
	if err != nil {
		return Identity{}, pkgerrors.Wrap(err, "identity: mint")
	}
	addr := addressFor(kp.PublicKey, challenge, proof)
	if addr.IsReserved() {
		return Identity{}, ErrReservedAddress
	}
	return Identity{KeyPair: kp, Address: addr, Proof: proof, Rounds: rounds}, nil
}

// DeriveAddress checks an identity proof and returns the address it mints.
func DeriveAddress(publicKey []byte, proof, rounds uint64) (Address, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return 0, ErrInvalidPublicKey
	}
	challenge := Challenge(publicKey)
	if !mimc52.Verify(challenge, rounds, proof) {
		return 0, ErrInvalidIdentityProof
	}
	addr := addressFor(publicKey, challenge, proof)
	if addr.IsReserved() {
		return 0, ErrReservedAddress
	}
	return addr, nil
}

// Validate re-derives the address from the stored proof.
func (id Identity) Validate() error {
	addr, err := DeriveAddress(id.KeyPair.PublicKey, id.Proof, id.Rounds)
	if err != nil {
		return err
	}
	if addr != id.Address {
		return ErrInvalidIdentityProof
	}
	return nil
}

func (id Identity) Sign(message []byte) []byte {
	return id.KeyPair.Sign(message)
}
