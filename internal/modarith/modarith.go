// Package modarith implements the modular exponentiation and inversion used by
// the curve and signature code.
//
// The routines are variable time and must not be used where timing
// side channels matter.
package modarith

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned when the value to invert is congruent to zero
// modulo the modulus.
var ErrNotInvertible = errors.New("value is not invertible: congruent to zero")

var one = big.NewInt(1)

// ModPow computes base^exponent mod modulus using binary exponentiation.
//
// While the remaining exponent is even the running base is squared and the
// exponent halved; otherwise the accumulator absorbs the running base and the
// exponent is decremented. An exponent of zero yields 1 (0 when modulus is 1).
//
// The exponent must not be negative.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("modarith: negative exponent")
	}

	x := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	y := new(big.Int).Mod(one, modulus)

	for e.Sign() > 0 {
		if e.Bit(0) == 0 {
			x.Mul(x, x)
			x.Mod(x, modulus)
			e.Rsh(e, 1)
		} else {
			y.Mul(y, x)
			y.Mod(y, modulus)
			e.Sub(e, one)
		}
	}

	return y
}

// ModInverse returns x^-1 mod modulus using Fermat's little theorem, i.e.
// x^(modulus-2). The modulus must be prime.
func ModInverse(x, modulus *big.Int) (*big.Int, error) {
	r := new(big.Int).Mod(x, modulus)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}

	exp := new(big.Int).Sub(modulus, big.NewInt(2))
	return ModPow(r, exp, modulus), nil
}
