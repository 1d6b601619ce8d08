package protocol

import (
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/TheusHen/mimc52/mimc52"
)

var (
	ErrInvalidChallenge = errors.New("protocol: invalid challenge encoding")
	ErrMissingReason    = errors.New("protocol: reject without reason")
)

// Challenge is a delay challenge, hex encoded on the wire.
type Challenge [mimc52.ChallengeSize]byte

func (c Challenge) String() string { return hex.EncodeToString(c[:]) }

func (c Challenge) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Challenge) UnmarshalText(text []byte) error {
	if len(text) != 2*mimc52.ChallengeSize {
		return ErrInvalidChallenge
	}
	if _, err := hex.Decode(c[:], text); err != nil {
		return ErrInvalidChallenge
	}
	return nil
}

// Puzzle asks a connecting peer to spend Rounds sequential delay rounds on
// Challenge before ExpiresAt. Nonce and the timestamps are echoed back so
// the issuer can recompute the challenge without keeping state.
type Puzzle struct {
	Challenge Challenge `json:"challenge"`
	Rounds    uint64    `json:"rounds"`
	IssuedAt  int64     `json:"issued_at"`
	ExpiresAt int64     `json:"expires_at"`
	Nonce     []byte    `json:"nonce"`
}

type Solution struct {
	Puzzle Puzzle `json:"puzzle"`
	Proof  uint64 `json:"proof"`
}

// Welcome completes a handshake. Pass, when present, lets the client skip
// the puzzle on its next connection.
type Welcome struct {
	Hello Hello  `json:"hello"`
	Pass  []byte `json:"pass,omitempty"`
}

type Reject struct {
	Reason string `json:"reason"`
}

func EncodePuzzle(p Puzzle) ([]byte, error) { return json.Marshal(p) }

func DecodePuzzle(b []byte) (Puzzle, error) {
	var p Puzzle
	if err := json.Unmarshal(b, &p); err != nil {
		return Puzzle{}, err
	}
	return p, nil
}

func EncodeSolution(s Solution) ([]byte, error) { return json.Marshal(s) }

func DecodeSolution(b []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(b, &s); err != nil {
		return Solution{}, err
	}
	return s, nil
}

func EncodeWelcome(w Welcome) ([]byte, error) { return json.Marshal(w) }

func DecodeWelcome(b []byte) (Welcome, error) {
	var w Welcome
	if err := json.Unmarshal(b, &w); err != nil {
		return Welcome{}, err
	}
	if len(w.Hello.PublicKey) == 0 {
		return Welcome{}, ErrHelloMissingKey
	}
	return w, nil
}

func EncodeReject(r Reject) ([]byte, error) { return json.Marshal(r) }

func DecodeReject(b []byte) (Reject, error) {
	var r Reject
	if err := json.Unmarshal(b, &r); err != nil {
		return Reject{}, err
	}
	if r.Reason == "" {
		return Reject{}, ErrMissingReason
	}
	return r, nil
}
