package identity

import (
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// AddressLength is the size of an address in bytes.
	AddressLength = 5

	// AddressReservedPrefix marks the top byte of addresses held back for
	// future use.
	AddressReservedPrefix = 0xff

	addressMask = uint64(1)<<(8*AddressLength) - 1
)

var ErrInvalidAddress = errors.New("identity: invalid address")

// Address is a 40-bit short peer address. Only the low 40 bits are used.
type Address uint64

func AddressFromBytes(b [AddressLength]byte) Address {
	return Address(uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4]))
}

// Bytes returns the address in big-endian order.
func (a Address) Bytes() [AddressLength]byte {
	return [AddressLength]byte{byte(a >> 32), byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// ParseAddress accepts exactly 10 hex characters.
func ParseAddress(s string) (Address, error) {
	if len(s) != 2*AddressLength {
		return 0, ErrInvalidAddress
	}
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return 0, ErrInvalidAddress
	}
	var raw [AddressLength]byte
	copy(raw[:], b)
	return AddressFromBytes(raw), nil
}

func (a Address) String() string {
	b := a.Bytes()
	return hex.EncodeToString(b[:])
}

func (a Address) IsNil() bool { return uint64(a)&addressMask == 0 }

// IsReserved reports whether the address may not be assigned to a peer: the
// nil address and everything under the 0xff prefix.
func (a Address) IsReserved() bool {
	return a.IsNil() || byte(a>>32) == AddressReservedPrefix
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
