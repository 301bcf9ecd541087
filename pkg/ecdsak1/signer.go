package ecdsak1

import (
	"context"
	"math/big"

	"github.com/mahdiidarabi/secp256k1-ecdsa/pkg/logging"
)

// Signer produces ECDSA signatures. A Signer is safe for concurrent use when
// its EntropySource is.
type Signer struct {
	curve   *Curve
	config  SignerConfig
	entropy EntropySource
	logger  logging.Logger
}

// NewSigner creates a signer for curve with the default configuration and a
// crypto/rand entropy source.
func NewSigner(curve *Curve) *Signer {
	return &Signer{
		curve:   curve,
		config:  DefaultSignerConfig(),
		entropy: CryptoEntropy{},
		logger:  logging.New(nil),
	}
}

// WithConfig sets the signer configuration.
func (s *Signer) WithConfig(config SignerConfig) *Signer {
	s.config = config
	return s
}

// WithEntropy sets the source nonces are drawn from. It is ignored when the
// configuration asks for deterministic nonces.
func (s *Signer) WithEntropy(entropy EntropySource) *Signer {
	s.entropy = entropy
	return s
}

// WithLogger sets the logger.
func (s *Signer) WithLogger(logger logging.Logger) *Signer {
	s.logger = logger
	return s
}

// Sign hashes message with the configured digest and signs the result.
func (s *Signer) Sign(message []byte, key *PrivateKey) (*Signature, error) {
	return s.SignDigest(s.config.Hash.Digest(message), key)
}

// SignDigest signs the digest integer m. m is used as is and only reduced by
// the arithmetic modulo n.
//
// Nonces outside (0, n), nonces giving r = 0 and nonces giving s = 0 are
// discarded and redrawn, up to the configured number of attempts.
func (s *Signer) SignDigest(m *big.Int, key *PrivateKey) (*Signature, error) {
	if key == nil {
		return nil, makeError(ErrPrivKeyOutOfRange, "private key is nil")
	}
	if m == nil || m.Sign() < 0 {
		return nil, makeError(ErrIntTooLarge, "digest must be a non-negative integer")
	}

	n := s.curve.n
	ctx := context.Background()

	source := s.entropy
	if s.config.Deterministic {
		rfc, err := newRFC6979Entropy(key.d, new(big.Int).Mod(m, n))
		if err != nil {
			return nil, err
		}
		source = rfc
	}

	maxAttempts := s.config.maxAttempts()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		drawn, err := source.Draw256()
		if err != nil {
			return nil, wrapError(ErrEntropySource, "failed to draw nonce", err)
		}
		if drawn == nil {
			return nil, makeError(ErrEntropySource, "entropy source returned nil")
		}
		// The drawn value belongs to the source; only the copy is wiped.
		k := new(big.Int).Set(drawn)
		if k.Sign() <= 0 || k.Cmp(n) >= 0 {
			s.logger.Debug(ctx, "nonce out of range, redrawing", "attempt", attempt, logging.Redacted("nonce"))
			continue
		}

		R := s.curve.ScalarBaseMult(k)
		r := new(big.Int).Mod(R.x, n)
		if r.Sign() == 0 {
			s.logger.Debug(ctx, "nonce produced r = 0, redrawing", "attempt", attempt, logging.Redacted("nonce"))
			continue
		}

		kInv, err := inverse(k, n)
		if err != nil {
			return nil, err
		}
		k.SetInt64(0)

		// s = (m + r·d) / k mod n
		sig := new(big.Int).Mul(r, key.d)
		sig.Add(sig, m)
		sig.Mul(sig, kInv)
		sig.Mod(sig, n)
		if sig.Sign() == 0 {
			s.logger.Debug(ctx, "nonce produced s = 0, redrawing", "attempt", attempt, logging.Redacted("nonce"))
			continue
		}

		return &Signature{S: sig, R: r}, nil
	}

	s.logger.Error(ctx, "nonce attempts exhausted", "attempts", maxAttempts)
	return nil, makeError(ErrNonceAttemptsExhausted, "no usable nonce after maximum attempts")
}
