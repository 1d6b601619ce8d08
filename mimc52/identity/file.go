package identity

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type identityFile struct {
	Address    Address `json:"address"`
	PublicKey  string  `json:"public_key"`
	PrivateKey string  `json:"private_key"`
	Proof      uint64  `json:"proof"`
	Rounds     uint64  `json:"rounds"`
}

// WriteFile stores the identity, private key included, readable only by the
// owner.
func (id Identity) WriteFile(path string) error {
	data, err := json.MarshalIndent(identityFile{
		Address:    id.Address,
		PublicKey:  hex.EncodeToString(id.KeyPair.PublicKey),
		PrivateKey: hex.EncodeToString(id.KeyPair.PrivateKey),
		Proof:      id.Proof,
		Rounds:     id.Rounds,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "identity: encode")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "identity: create key directory")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o600), "identity: write key file")
}

// ReadFile loads an identity written by WriteFile and checks its proof.
func ReadFile(path string) (Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Identity{}, errors.Wrap(err, "identity: read key file")
	}
	var f identityFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Identity{}, errors.Wrap(err, "identity: decode key file")
	}
	pub, err := hex.DecodeString(f.PublicKey)
	if err != nil {
		return Identity{}, errors.Wrap(err, "identity: public key")
	}
	priv, err := hex.DecodeString(f.PrivateKey)
	if err != nil {
		return Identity{}, errors.Wrap(err, "identity: private key")
	}
	kp, err := NewKeyPair(pub, priv)
	if err != nil {
		return Identity{}, err
	}
	id := Identity{KeyPair: kp, Address: f.Address, Proof: f.Proof, Rounds: f.Rounds}
	if err := id.Validate(); err != nil {
		return Identity{}, errors.Wrapf(err, "identity: %s", path)
	}
	return id, nil
}
