package ecdsak1

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// EntropySource supplies the randomness consumed by signing and key
// generation. Draw256 returns a uniformly distributed integer in [0, 2^256).
//
// The caller does not take ownership of the returned value and never modifies
// it, so a source may hand out the same *big.Int on every call.
//
// Implementations used by a shared Signer must be safe for concurrent use.
// The security of every signature depends on the source: a nonce that repeats
// or is predictable exposes the private key.
type EntropySource interface {
	Draw256() (*big.Int, error)
}

// CryptoEntropy draws from a cryptographically secure reader.
type CryptoEntropy struct {
	// Reader defaults to crypto/rand.Reader when nil.
	Reader io.Reader
}

// Draw256 implements EntropySource.
func (e CryptoEntropy) Draw256() (*big.Int, error) {
	r := e.Reader
	if r == nil {
		r = rand.Reader
	}

	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf[:]), nil
}

// rfc6979Entropy yields the RFC 6979 nonce sequence for one private key and
// digest. It is created per signing operation and is not safe for concurrent
// use.
type rfc6979Entropy struct {
	key       []byte
	hash      []byte
	iteration uint32
}

func newRFC6979Entropy(d, digest *big.Int) (*rfc6979Entropy, error) {
	key, err := EncodeInt(d)
	if err != nil {
		return nil, err
	}
	hash, err := EncodeInt(digest)
	if err != nil {
		return nil, err
	}
	return &rfc6979Entropy{key: key, hash: hash}, nil
}

// Draw256 implements EntropySource. Each call advances to the next nonce of
// the deterministic sequence.
func (e *rfc6979Entropy) Draw256() (*big.Int, error) {
	k := secp256k1.NonceRFC6979(e.key, e.hash, nil, nil, e.iteration)
	e.iteration++

	b := k.Bytes()
	k.Zero()
	return new(big.Int).SetBytes(b[:]), nil
}
