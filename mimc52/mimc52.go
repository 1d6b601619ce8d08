package mimc52

import (
	"context"

	"github.com/TheusHen/mimc52/mimc52/field"
	"github.com/TheusHen/mimc52/mimc52/primes"
)

// Mask52 keeps the 52 bits of a proof that carry meaning.
const Mask52 = uint64(1)<<field.Bits - 1

// cancelCheckInterval is how many rounds DelayContext runs between looks at
// its context.
const cancelCheckInterval = 16

// walk holds everything derived from one challenge.
type walk struct {
	k   roundKeys
	mod field.Modulus
}

func newWalk(challenge *[ChallengeSize]byte) walk {
	k := fillK(challenge)
	return walk{k: k, mod: field.NewModulus(primes.Select(k[primeSelector]))}
}

func (w *walk) prime() uint64 { return w.mod.Value() }

func (w *walk) anchor() uint64 { return w.k[anchorWord] % w.mod.Value() }

// cubeRootExponent is e with 3e ≡ 1 (mod p-1); it exists because p ≡ 5 (mod 6).
func (w *walk) cubeRootExponent() uint64 {
	p := w.mod.Value()
	return (2*p - 1) / 3
}

// backward runs rounds inverse steps from the anchor. The key window is
// consumed in reverse, round r using k[(rounds-1-r) mod 32], which is what
// lets the forward walk in Verify undo it round by round.
func (w *walk) backward(ctx context.Context, rounds uint64) (uint64, error) {
	done := ctx.Done()
	e := w.cubeRootExponent()
	x := w.anchor()
	kn := rounds
	for r := uint64(0); r < rounds; r++ {
		if done != nil && r%cancelCheckInterval == 0 {
			select {
			case <-done:
				return 0, ctx.Err()
			default:
			}
		}
		kn--
		x = (x - w.k[kn&roundMask]) & Mask52
		x = w.mod.Pow(x, e)
	}
	return x, nil
}

// forward runs rounds cube-and-add steps starting from y.
func (w *walk) forward(ctx context.Context, y, rounds uint64) (uint64, error) {
	done := ctx.Done()
	for r := uint64(0); r < rounds; r++ {
		if done != nil && r%cancelCheckInterval == 0 {
			select {
			case <-done:
				return 0, ctx.Err()
			default:
			}
		}
		y = w.mod.Cube(y)
		y = (y + w.k[r&roundMask]) & Mask52
	}
	return y, nil
}

// Delay computes the proof for challenge after rounds sequential cube-root
// rounds. Zero rounds yields the anchor value itself.
func Delay(challenge [ChallengeSize]byte, rounds uint64) uint64 {
	w := newWalk(&challenge)
	x, _ := w.backward(context.Background(), rounds)
	return x
}

// DelayContext is Delay with cooperative cancellation. It returns ctx.Err()
// if the context ends before all rounds are done.
func DelayContext(ctx context.Context, challenge [ChallengeSize]byte, rounds uint64) (uint64, error) {
	w := newWalk(&challenge)
	return w.backward(ctx, rounds)
}

// Verify reports whether proof is the Delay output for challenge and rounds.
// Proofs are only accepted in canonical form, reduced below the selected
// modulus.
func Verify(challenge [ChallengeSize]byte, rounds uint64, proof uint64) bool {
	ok, _ := VerifyContext(context.Background(), challenge, rounds, proof)
	return ok
}

// VerifyContext is Verify with cooperative cancellation, for proofs whose
// round count comes from an untrusted source. It returns ctx.Err() if the
// context ends before all rounds are checked.
func VerifyContext(ctx context.Context, challenge [ChallengeSize]byte, rounds uint64, proof uint64) (bool, error) {
	w := newWalk(&challenge)
	if proof >= w.prime() {
		return false, nil
	}
	y, err := w.forward(ctx, proof, rounds)
	if err != nil {
		return false, err
	}
	return y%w.prime() == w.anchor(), nil
}

// Prime returns the modulus a challenge selects.
func Prime(challenge [ChallengeSize]byte) uint64 {
	w := newWalk(&challenge)
	return w.prime()
}
