package ecdsak1

import "math/big"

// PrivateKey is a secp256k1 private scalar d in [1, n-1] together with its
// public point d·G.
type PrivateKey struct {
	curve *Curve
	d     *big.Int
	pub   Point
}

// NewPrivateKey validates d and derives the public key.
func NewPrivateKey(curve *Curve, d *big.Int) (*PrivateKey, error) {
	if d == nil || d.Sign() <= 0 || d.Cmp(curve.n) >= 0 {
		return nil, makeError(ErrPrivKeyOutOfRange, "private key must be in [1, n-1]")
	}

	dCopy := new(big.Int).Set(d)
	return &PrivateKey{
		curve: curve,
		d:     dCopy,
		pub:   curve.ScalarBaseMult(dCopy),
	}, nil
}

// GeneratePrivateKey draws a private key from entropy, retrying draws that
// fall outside [1, n-1].
func GeneratePrivateKey(curve *Curve, entropy EntropySource) (*PrivateKey, error) {
	for attempt := 0; attempt < DefaultMaxNonceAttempts; attempt++ {
		d, err := entropy.Draw256()
		if err != nil {
			return nil, wrapError(ErrEntropySource, "failed to draw private key", err)
		}
		if d.Sign() > 0 && d.Cmp(curve.n) < 0 {
			return NewPrivateKey(curve, d)
		}
	}

	return nil, makeError(ErrNonceAttemptsExhausted, "no private key in range after maximum attempts")
}

// D returns a copy of the private scalar.
func (k *PrivateKey) D() *big.Int {
	return new(big.Int).Set(k.d)
}

// PublicKey returns d·G.
func (k *PrivateKey) PublicKey() Point {
	return k.pub
}

// Curve returns the curve the key belongs to.
func (k *PrivateKey) Curve() *Curve {
	return k.curve
}
