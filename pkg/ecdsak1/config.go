package ecdsak1

// DefaultMaxNonceAttempts bounds the signer's nonce retry loop. A draw is
// rejected with probability below 2^-127, so the bound is never reached with
// a working entropy source.
const DefaultMaxNonceAttempts = 1 << 16

// SignerConfig configures a Signer.
type SignerConfig struct {
	// Hash selects the message digest (default SHA256).
	Hash HashAlgorithm

	// MaxNonceAttempts bounds the number of nonce draws per signature
	// (0 = DefaultMaxNonceAttempts).
	MaxNonceAttempts int

	// Deterministic derives nonces from the private key and digest per
	// RFC 6979 instead of drawing them from the entropy source.
	Deterministic bool
}

// DefaultSignerConfig returns the default signer configuration.
func DefaultSignerConfig() SignerConfig {
	return SignerConfig{
		Hash:             SHA256,
		MaxNonceAttempts: DefaultMaxNonceAttempts,
		Deterministic:    false,
	}
}

func (c SignerConfig) maxAttempts() int {
	if c.MaxNonceAttempts <= 0 {
		return DefaultMaxNonceAttempts
	}
	return c.MaxNonceAttempts
}

// VerifierConfig configures a Verifier.
type VerifierConfig struct {
	// Hash selects the message digest and must match the signer's.
	Hash HashAlgorithm

	// SubgroupCheck additionally requires n·pub to be the identity. On
	// secp256k1 every on-curve point passes, so it is off by default.
	SubgroupCheck bool

	// Workers controls batch verification parallelism (0 = auto-detect).
	Workers int
}

// DefaultVerifierConfig returns the default verifier configuration.
func DefaultVerifierConfig() VerifierConfig {
	return VerifierConfig{
		Hash:          SHA256,
		SubgroupCheck: false,
		Workers:       0, // Auto-detect
	}
}
