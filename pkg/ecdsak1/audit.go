package ecdsak1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Observation is a signature together with the digest integer it signs, as
// seen by an auditor.
type Observation struct {
	Digest    *big.Int
	Signature *Signature
}

// NewObservation hashes message with h and pairs it with sig.
func NewObservation(h HashAlgorithm, message []byte, sig *Signature) Observation {
	return Observation{Digest: h.Digest(message), Signature: sig}
}

// RecoveryResult contains the outcome of a nonce-reuse audit.
type RecoveryResult struct {
	PrivateKey    *big.Int // Recovered private key
	SignaturePair [2]int   // Indices of the observations used
	Verified      bool     // Whether the key was confirmed against a public key
}

// RecoverFromRelatedNonces recovers the private key from two signatures by
// the same key whose nonces satisfy k2 = a·k1 + b (a = 1, b = 0 is plain
// nonce reuse):
//
//	d = (a·s2·z1 - s1·z2 + b·s1·s2) / (r2·s1 - a·r1·s2) mod n
func RecoverFromRelatedNonces(curve *Curve, obs1, obs2 Observation, a, b *big.Int) (*big.Int, error) {
	n := curve.n
	s1, r1, z1 := obs1.Signature.S, obs1.Signature.R, obs1.Digest
	s2, r2, z2 := obs2.Signature.S, obs2.Signature.R, obs2.Digest

	// Calculate numerator: (a * s2 * z1 - s1 * z2 + b * s1 * s2) mod n
	as2z1 := new(big.Int).Mul(a, s2)
	as2z1.Mul(as2z1, z1)

	s1z2 := new(big.Int).Mul(s1, z2)

	bs1s2 := new(big.Int).Mul(b, s1)
	bs1s2.Mul(bs1s2, s2)

	numerator := new(big.Int).Sub(as2z1, s1z2)
	numerator.Add(numerator, bs1s2)
	numerator.Mod(numerator, n)

	// Calculate denominator: (r2 * s1 - a * r1 * s2) mod n
	r2s1 := new(big.Int).Mul(r2, s1)

	ar1s2 := new(big.Int).Mul(a, r1)
	ar1s2.Mul(ar1s2, s2)

	denominator := new(big.Int).Sub(r2s1, ar1s2)
	denominator.Mod(denominator, n)

	if denominator.Sign() == 0 {
		return nil, makeError(ErrRecoveryFailed, "denominator is zero: cannot recover private key")
	}

	denominatorInv, err := inverse(denominator, n)
	if err != nil {
		return nil, err
	}

	priv := new(big.Int).Mul(denominatorInv, numerator)
	priv.Mod(priv, n)
	if priv.Sign() == 0 {
		return nil, makeError(ErrRecoveryFailed, "recovered private key is zero")
	}

	return priv, nil
}

// FindNonceReuse looks for two observations sharing r, which means the same
// nonce signed both, and recovers the private key from the first such pair.
//
// When publicKey is finite the recovered key must reproduce it; pairs that do
// not are skipped. Passing Infinity() skips confirmation and the result is
// reported unverified.
func FindNonceReuse(curve *Curve, observations []Observation, publicKey Point) (*RecoveryResult, error) {
	one := big.NewInt(1)
	zero := big.NewInt(0)

	for i := 0; i < len(observations); i++ {
		for j := i + 1; j < len(observations); j++ {
			if observations[i].Signature.R.Cmp(observations[j].Signature.R) != 0 {
				continue
			}

			priv, err := RecoverFromRelatedNonces(curve, observations[i], observations[j], one, zero)
			if err != nil {
				continue
			}

			verified := false
			if !publicKey.IsInfinity() {
				if !confirmRecoveredKey(priv, publicKey) {
					continue
				}
				verified = true
			}

			return &RecoveryResult{
				PrivateKey:    priv,
				SignaturePair: [2]int{i, j},
				Verified:      verified,
			}, nil
		}
	}

	return nil, makeError(ErrNoNonceReuse, "no pair of signatures shares a nonce")
}

// confirmRecoveredKey checks privateKey against publicKey with an independent
// secp256k1 implementation.
func confirmRecoveredKey(privateKey *big.Int, publicKey Point) bool {
	privKeyBytes, err := EncodeInt(privateKey)
	if err != nil {
		return false
	}

	pubKey := secp256k1.PrivKeyFromBytes(privKeyBytes).PubKey()
	return pubKey.X().Cmp(publicKey.x) == 0 && pubKey.Y().Cmp(publicKey.y) == 0
}
