package ecdsak1

import (
	"context"
	"math/big"

	"github.com/mahdiidarabi/secp256k1-ecdsa/pkg/logging"
)

// Verifier checks ECDSA signatures. A Verifier is safe for concurrent use.
type Verifier struct {
	curve  *Curve
	config VerifierConfig
	logger logging.Logger
}

// NewVerifier creates a verifier for curve with the default configuration.
func NewVerifier(curve *Curve) *Verifier {
	return &Verifier{
		curve:  curve,
		config: DefaultVerifierConfig(),
		logger: logging.New(nil),
	}
}

// WithConfig sets the verifier configuration.
func (v *Verifier) WithConfig(config VerifierConfig) *Verifier {
	v.config = config
	return v
}

// WithLogger sets the logger.
func (v *Verifier) WithLogger(logger logging.Logger) *Verifier {
	v.logger = logger
	return v
}

// Verify reports whether sig is a valid signature of message under pub.
//
// Malformed input (signature components outside [1, n-1], a public key that is
// the identity or not on the curve) is reported as an error before any
// verification arithmetic runs. A well-formed signature that does not match
// returns false and a nil error.
func (v *Verifier) Verify(message []byte, pub Point, sig *Signature) (bool, error) {
	return v.VerifyDigest(v.config.Hash.Digest(message), pub, sig)
}

// VerifyDigest is Verify for a precomputed digest integer. The x coordinate
// of u1·G + u2·pub is reduced mod n before it is compared with r.
func (v *Verifier) VerifyDigest(m *big.Int, pub Point, sig *Signature) (bool, error) {
	if err := v.checkInputs(pub, sig); err != nil {
		v.logger.Debug(context.Background(), "rejected verification input", "error", err)
		return false, err
	}
	if m == nil || m.Sign() < 0 {
		return false, makeError(ErrIntTooLarge, "digest must be a non-negative integer")
	}

	n := v.curve.n
	w, err := inverse(sig.S, n)
	if err != nil {
		return false, err
	}

	u1 := new(big.Int).Mul(m, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	// P = u1·G + u2·pub
	P := v.curve.Add(v.curve.ScalarBaseMult(u1), v.curve.ScalarMult(pub, u2))
	if P.IsInfinity() {
		return false, nil
	}

	x := new(big.Int).Mod(P.x, n)
	return x.Cmp(sig.R) == 0, nil
}

// checkInputs enforces the verification preconditions.
func (v *Verifier) checkInputs(pub Point, sig *Signature) error {
	n := v.curve.n

	if sig == nil || sig.S == nil || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return makeError(ErrSigSOutOfRange, "signature s is not in [1, n-1]")
	}
	if sig.R == nil || sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return makeError(ErrSigROutOfRange, "signature r is not in [1, n-1]")
	}

	if pub.IsInfinity() {
		return makeError(ErrPubKeyInfinity, "public key is the point at infinity")
	}
	if !v.curve.IsOnCurve(pub) {
		return makeError(ErrPubKeyNotOnCurve, "public key is not on the curve")
	}

	if v.config.SubgroupCheck && !v.curve.ScalarMult(pub, n).IsInfinity() {
		return makeError(ErrPubKeyNotInSubgroup, "public key is not in the subgroup generated by G")
	}

	return nil
}
