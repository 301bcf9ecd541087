package ecdsak1

import (
	"math/big"

	"github.com/mahdiidarabi/secp256k1-ecdsa/internal/modarith"
)

// Curve holds the parameters of a short Weierstrass curve y² = x³ + b over a
// prime field. A Curve is immutable after construction and may be shared by
// any number of goroutines.
type Curve struct {
	name string
	p    *big.Int // field prime
	n    *big.Int // order of the base point
	b    *big.Int // curve constant
	g    Point    // base point

	sqrtExp *big.Int // (p+1)/4, valid because p ≡ 3 mod 4
}

var secp256k1Curve = newSecp256k1()

func newSecp256k1() *Curve {
	// See https://www.secg.org/sec2-v2.pdf, section 2.4.1
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	n, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	gx, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	gy, _ := new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)

	sqrtExp := new(big.Int).Add(p, big.NewInt(1))
	sqrtExp.Rsh(sqrtExp, 2)

	return &Curve{
		name:    "secp256k1",
		p:       p,
		n:       n,
		b:       big.NewInt(7),
		g:       NewPoint(gx, gy),
		sqrtExp: sqrtExp,
	}
}

// Secp256k1 returns the secp256k1 curve. The same value is returned on every
// call.
func Secp256k1() *Curve {
	return secp256k1Curve
}

// Name returns the canonical name of the curve.
func (c *Curve) Name() string { return c.name }

// P returns a copy of the field prime.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns a copy of the order of the base point.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// B returns a copy of the curve constant.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// G returns the base point.
func (c *Curve) G() Point { return c.g }

// BitSize returns the bit length of the field prime.
func (c *Curve) BitSize() int { return c.p.BitLen() }

// polynomial returns x³ + b mod p.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Add(x3, c.b)
	return x3.Mod(x3, c.p)
}

// IsOnCurve reports whether pt is a finite point with coordinates in [0, p)
// that satisfies the curve equation. The identity is not on the curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return false
	}
	if pt.x.Sign() < 0 || pt.x.Cmp(c.p) >= 0 || pt.y.Sign() < 0 || pt.y.Cmp(c.p) >= 0 {
		return false
	}

	y2 := new(big.Int).Mul(pt.y, pt.y)
	y2.Mod(y2, c.p)
	return c.polynomial(pt.x).Cmp(y2) == 0
}

// YFromX returns a candidate y coordinate for x computed as
// (x³+b)^((p+1)/4) mod p. Parity 0 selects that root and parity 1 selects
// p - root.
//
// The result is only a square root when x³+b is a quadratic residue; callers
// handling untrusted x must check the returned point with IsOnCurve.
func (c *Curve) YFromX(x *big.Int, parity uint) *big.Int {
	y := modarith.ModPow(c.polynomial(new(big.Int).Mod(x, c.p)), c.sqrtExp, c.p)
	if parity&1 == 1 {
		y.Neg(y)
		y.Mod(y, c.p)
	}
	return y
}

// inverse returns x^-1 mod m for a non-zero x.
func inverse(x, m *big.Int) (*big.Int, error) {
	inv, err := modarith.ModInverse(x, m)
	if err != nil {
		return nil, makeError(ErrNotInvertible, err.Error())
	}
	return inv, nil
}
