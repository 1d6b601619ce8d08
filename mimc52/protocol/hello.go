package protocol

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/TheusHen/mimc52/mimc52/identity"
)

var (
	ErrHelloAddressMismatch = errors.New("protocol: hello address does not match identity proof")
	ErrHelloBadSignature    = errors.New("protocol: hello invalid signature")
	ErrHelloMissingKey      = errors.New("protocol: hello missing public key")
	ErrHelloWeakIdentity    = errors.New("protocol: hello identity proof below required rounds")
	ErrHelloCostlyIdentity  = errors.New("protocol: hello identity proof above accepted rounds")
)

// Hello binds a session to an Ed25519 key and the address minted from it.
// The signature is computed over SigningBytes().
type Hello struct {
	Address        identity.Address  `json:"address"`
	PublicKey      []byte            `json:"public_key"`
	IdentityProof  uint64            `json:"identity_proof"`
	IdentityRounds uint64            `json:"identity_rounds"`
	TimestampSec   int64             `json:"timestamp_sec"`
	Nonce          []byte            `json:"nonce"`
	Capabilities   map[string]string `json:"capabilities,omitempty"`
	Pass           []byte            `json:"pass,omitempty"`
	Signature      []byte            `json:"signature"`
}

func NewHello(id identity.Identity, capabilities map[string]string) (Hello, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return Hello{}, err
	}
	capsCopy := map[string]string{}
	for k, v := range capabilities {
		capsCopy[k] = v
	}
	return Hello{
		Address:        id.Address,
		PublicKey:      append([]byte(nil), id.KeyPair.PublicKey...),
		IdentityProof:  id.Proof,
		IdentityRounds: id.Rounds,
		TimestampSec:   time.Now().Unix(),
		Nonce:          nonce,
		Capabilities:   capsCopy,
	}, nil
}

func putLen16(b *bytes.Buffer, n int) {
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(n))
	b.Write(l[:])
}

func putUint64(b *bytes.Buffer, v uint64) {
	var u [8]byte
	binary.BigEndian.PutUint64(u[:], v)
	b.Write(u[:])
}

func (h Hello) SigningBytes() ([]byte, error) {
	if len(h.PublicKey) != ed25519.PublicKeySize {
		return nil, ErrHelloMissingKey
	}

	var b bytes.Buffer
	addr := h.Address.Bytes()
	b.Write(addr[:])
	b.Write(h.PublicKey)
	putUint64(&b, h.IdentityProof)
	putUint64(&b, h.IdentityRounds)
	putUint64(&b, uint64(h.TimestampSec))
	putLen16(&b, len(h.Nonce))
	b.Write(h.Nonce)
	putLen16(&b, len(h.Pass))
	b.Write(h.Pass)

	keys := make([]string, 0, len(h.Capabilities))
	for k := range h.Capabilities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := h.Capabilities[k]
		putLen16(&b, len(k))
		b.WriteString(k)
		putLen16(&b, len(v))
		b.WriteString(v)
	}
	return b.Bytes(), nil
}

func (h *Hello) Sign(id identity.Identity) error {
	toSign, err := h.SigningBytes()
	if err != nil {
		return err
	}
	h.Signature = id.Sign(toSign)
	return nil
}

// Verify checks the identity proof behind the claimed address and the
// signature over the whole message. The proof check costs time linear in
// IdentityRounds, so callers bound it with CheckRounds first.
func (h Hello) Verify() error {
	if len(h.PublicKey) != ed25519.PublicKeySize {
		return ErrHelloMissingKey
	}
	derived, err := identity.DeriveAddress(h.PublicKey, h.IdentityProof, h.IdentityRounds)
	if err != nil {
		return err
	}
	if derived != h.Address {
		return ErrHelloAddressMismatch
	}
	toVerify, err := h.SigningBytes()
	if err != nil {
		return err
	}
	if !identity.Verify(ed25519.PublicKey(h.PublicKey), toVerify, h.Signature) {
		return ErrHelloBadSignature
	}
	return nil
}

// CheckRounds rejects identities minted with fewer than min or more than
// max delay rounds. A zero max sets no upper bound.
func (h Hello) CheckRounds(min, max uint64) error {
	if h.IdentityRounds < min {
		return ErrHelloWeakIdentity
	}
	if max != 0 && h.IdentityRounds > max {
		return ErrHelloCostlyIdentity
	}
	return nil
}

func EncodeHello(h Hello) ([]byte, error) {
	return json.Marshal(h)
}

func DecodeHello(b []byte) (Hello, error) {
	var h Hello
	if err := json.Unmarshal(b, &h); err != nil {
		return Hello{}, err
	}
	if len(h.PublicKey) == 0 {
		return Hello{}, ErrHelloMissingKey
	}
	return h, nil
}
