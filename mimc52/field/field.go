// Package field implements multiplication and exponentiation modulo a prime
// below 2^52.
//
// Two multiply strategies exist. MulModFloat estimates the quotient with
// IEEE double arithmetic and is the default. MulModInteger uses only integer
// shifts and adds, and is compiled in as the active strategy with the
// mimc52_nofpu build tag for targets without a usable FPU. Both return
// identical results; the tag changes speed, never output.
package field

// Bits is the width of every modulus accepted by this package.
const Bits = 52

// Modulus is a prime m < 2^52 together with float64(m), which the float
// strategy needs on every multiply.
type Modulus struct {
	m  uint64
	mf float64
}

func NewModulus(m uint64) Modulus {
	return Modulus{m: m, mf: float64(m)}
}

func (md Modulus) Value() uint64 { return md.m }

// Mul returns a*b mod m. a and b must be below 2^52 but need not be reduced.
func (md Modulus) Mul(a, b uint64) uint64 {
	return mulMod(a, b, md.m, md.mf)
}

func (md Modulus) Square(a uint64) uint64 {
	return mulMod(a, a, md.m, md.mf)
}

// Cube returns a^3 mod m: one squaring, then one multiply by a.
func (md Modulus) Cube(a uint64) uint64 {
	return mulMod(mulMod(a, a, md.m, md.mf), a, md.m, md.mf)
}

// Pow returns a^e mod m by square-and-multiply from the least significant
// exponent bit. Pow(a, 0) is 1.
func (md Modulus) Pow(a, e uint64) uint64 {
	res := uint64(1)
	for {
		if e&1 != 0 {
			res = mulMod(res, a, md.m, md.mf)
		}
		e >>= 1
		if e == 0 {
			break
		}
		a = mulMod(a, a, md.m, md.mf)
	}
	return res
}

// MulModInteger returns a*b mod m using binary double-and-add. It costs one
// iteration per significant bit of a.
func MulModInteger(a, b, m uint64) uint64 {
	res := uint64(0)
	for a != 0 {
		if a&1 != 0 {
			res = (res + b) % m
		}
		a >>= 1
		b = (b << 1) % m
	}
	return res
}

// MulModFloat returns a*b mod m, where mf == float64(m).
//
// float64 carries a 53-bit significand, so a, b < 2^52 convert exactly and
// the rounded quotient a*b/m lands within one of the true quotient. The
// difference a*b - q*m is therefore a small signed value that wrapping
// uint64 arithmetic computes exactly; the correction loop brings it into
// [0, m) whichever way the estimate was off.
func MulModFloat(a, b, m uint64, mf float64) uint64 {
	q := uint64(float64(a) * float64(b) / mf)
	r := int64(a*b - q*m)
	for r < 0 {
		r += int64(m)
	}
	for r >= int64(m) {
		r -= int64(m)
	}
	return uint64(r)
}
