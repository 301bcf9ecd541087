package ecdsak1

import (
	"fmt"
	"math/big"
)

// Point is an element of the curve group: either a finite affine point (x, y)
// or the identity element (the point at infinity). The zero value is the
// identity.
//
// Points are immutable; accessors return copies.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the finite point (x, y). The coordinates are copied but not
// validated; use Curve.IsOnCurve for untrusted input.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and other are the same group element.
func (p Point) Equal(other Point) bool {
	if !p.finite || !other.finite {
		return p.finite == other.finite
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// String returns the coordinates in hex, or "infinity".
func (p Point) String() string {
	if !p.finite {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Text(16), p.y.Text(16))
}

// Add returns p1 + p2 using the affine group law.
//
// Both points must be on the curve. Off-curve input that makes a slope
// denominator vanish causes a panic.
func (c *Curve) Add(p1, p2 Point) Point {
	if p1.IsInfinity() {
		return p2
	}
	if p2.IsInfinity() {
		return p1
	}

	x1 := new(big.Int).Mod(p1.x, c.p)
	y1 := new(big.Int).Mod(p1.y, c.p)
	x2 := new(big.Int).Mod(p2.x, c.p)
	y2 := new(big.Int).Mod(p2.y, c.p)

	var m *big.Int
	if x1.Cmp(x2) == 0 {
		sum := new(big.Int).Add(y1, y2)
		if sum.Mod(sum, c.p).Sign() == 0 {
			// p1 = -p2
			return Infinity()
		}
		if y1.Cmp(y2) != 0 {
			panic(fmt.Sprintf("ecdsak1: cannot add off-curve points %v and %v", p1, p2))
		}

		// Tangent slope: m = 3x² / 2y
		num := new(big.Int).Mul(x1, x1)
		num.Mul(num, big.NewInt(3))
		den := new(big.Int).Lsh(y1, 1)
		denInv, err := inverse(den, c.p)
		if err != nil {
			panic(err)
		}
		m = num.Mul(num, denInv)
	} else {
		// Chord slope: m = (y2 - y1) / (x2 - x1)
		num := new(big.Int).Sub(y2, y1)
		den := new(big.Int).Sub(x2, x1)
		denInv, err := inverse(den, c.p)
		if err != nil {
			panic(err)
		}
		m = num.Mul(num, denInv)
	}
	m.Mod(m, c.p)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(x3, x1)
	y3.Mul(y3, m)
	y3.Add(y3, y1)
	y3.Neg(y3)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, finite: true}
}

// Double returns 2p.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// Negate returns -p.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	y := new(big.Int).Neg(p.y)
	y.Mod(y, c.p)
	return Point{x: new(big.Int).Mod(p.x, c.p), y: y, finite: true}
}

// ScalarMult returns k·p using least-significant-bit-first double-and-add.
//
// k must not be negative; a negative scalar is a programming error and
// panics. k is not reduced modulo n.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	if k.Sign() < 0 {
		panic("ecdsak1: negative scalar")
	}
	if k.Sign() == 0 || p.IsInfinity() {
		return Infinity()
	}

	result := Infinity()
	addend := p
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		if i+1 < bits {
			addend = c.Double(addend)
		}
	}

	return result
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.g, k)
}
