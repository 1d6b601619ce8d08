//go:build mimc52_nofpu

package field

// Strategy names the multiply compiled into MulMod.
const Strategy = "integer"

// MulMod returns a*b mod m with the integer-only multiply. mf is ignored.
func MulMod(a, b, m uint64, mf float64) uint64 {
	return MulModInteger(a, b, m)
}

func mulMod(a, b, m uint64, _ float64) uint64 {
	return MulModInteger(a, b, m)
}
