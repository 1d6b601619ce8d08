// Package primes holds the fixed set of 52-bit moduli the delay function
// chooses from.
//
// Every modulus p satisfies p ≡ 5 (mod 6), so gcd(3, p-1) = 1 and cubing is
// a permutation of the field. Changing the table without preserving that
// property breaks every proof.
package primes

const (
	// Count is the number of candidate moduli.
	Count = 1024

	// HighBits are the 20 most significant bits shared by every modulus.
	HighBits = uint64(0x000fffff00000000)

	indexMask = Count - 1
)

// Select returns the modulus picked by a pseudorandom selector word.
// Only the low 10 bits of word are used.
func Select(word uint64) uint64 {
	return HighBits | uint64(Table[word&indexMask])
}

// At returns the i-th modulus, wrapping i into the table.
func At(i int) uint64 {
	return HighBits | uint64(Table[uint(i)&indexMask])
}
