package ecdsak1

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// HashAlgorithm selects the digest used to turn a message into the integer
// that is signed.
type HashAlgorithm int

const (
	// SHA256 is the default message digest.
	SHA256 HashAlgorithm = iota
	// RIPEMD160 produces a 160-bit digest.
	RIPEMD160
)

// String returns the name of the algorithm.
func (h HashAlgorithm) String() string {
	switch h {
	case SHA256:
		return "SHA256"
	case RIPEMD160:
		return "RIPEMD160"
	default:
		return fmt.Sprintf("HashAlgorithm(%d)", int(h))
	}
}

// New returns a fresh hash.Hash for the algorithm. Unknown values panic.
func (h HashAlgorithm) New() hash.Hash {
	switch h {
	case SHA256:
		return sha256.New()
	case RIPEMD160:
		return ripemd160.New()
	default:
		panic(fmt.Sprintf("ecdsak1: unknown hash algorithm %d", int(h)))
	}
}

// Size returns the digest length in bytes.
func (h HashAlgorithm) Size() int {
	return h.New().Size()
}

// Digest hashes data and returns the digest interpreted as a big-endian
// unsigned integer.
func (h HashAlgorithm) Digest(data []byte) *big.Int {
	hasher := h.New()
	hasher.Write(data)
	return new(big.Int).SetBytes(hasher.Sum(nil))
}

// DigestString hashes the UTF-8 bytes of s.
func DigestString(h HashAlgorithm, s string) *big.Int {
	return h.Digest([]byte(s))
}

// DigestInt hashes the 32-byte big-endian encoding of x. See EncodeInt.
func DigestInt(h HashAlgorithm, x *big.Int) (*big.Int, error) {
	b, err := EncodeInt(x)
	if err != nil {
		return nil, err
	}
	return h.Digest(b), nil
}

// EncodeInt returns the 32-byte big-endian encoding of x, the form in which
// integers are signed and hashed. x must be in [0, 2^256).
func EncodeInt(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, makeError(ErrIntTooLarge, "cannot encode negative integer")
	}
	if x.BitLen() > 256 {
		str := fmt.Sprintf("integer of %d bits does not fit in 32 bytes", x.BitLen())
		return nil, makeError(ErrIntTooLarge, str)
	}

	var b [32]byte
	x.FillBytes(b[:])
	return b[:], nil
}
