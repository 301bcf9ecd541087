package ecdsak1

import "math/big"

// Signature is an ECDSA signature. Both components are in [1, n-1] for every
// signature produced by a Signer.
type Signature struct {
	S *big.Int // s component of the signature
	R *big.Int // r component: x coordinate of k·G mod n
}

// NewSignature returns a signature holding copies of s and r.
func NewSignature(s, r *big.Int) *Signature {
	return &Signature{
		S: new(big.Int).Set(s),
		R: new(big.Int).Set(r),
	}
}

// Equal reports whether both components match. Nil signatures and nil
// components are only equal to nil.
func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return equalInt(sig.S, other.S) && equalInt(sig.R, other.R)
}

func equalInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
