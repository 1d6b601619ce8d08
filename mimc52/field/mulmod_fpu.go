//go:build !mimc52_nofpu

package field

// Strategy names the multiply compiled into MulMod.
const Strategy = "float64"

// MulMod returns a*b mod m with the float-assisted multiply.
func MulMod(a, b, m uint64, mf float64) uint64 {
	return MulModFloat(a, b, m, mf)
}

func mulMod(a, b, m uint64, mf float64) uint64 {
	return MulModFloat(a, b, m, mf)
}
