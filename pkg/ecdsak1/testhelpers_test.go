package ecdsak1

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/secp256k1-ecdsa/pkg/logging"
)

type pointVector struct {
	K *big.Int
	P Point
}

type digestVector struct {
	Algorithm HashAlgorithm
	Message   string
	Digest    *big.Int
}

// loadPointVectors reads known multiples of G from fixtures/point_vectors.json
func loadPointVectors(t *testing.T) []pointVector {
	t.Helper()

	var raw []struct {
		K string `json:"k"`
		X string `json:"x"`
		Y string `json:"y"`
	}
	loadFixture(t, "point_vectors.json", &raw)

	vectors := make([]pointVector, 0, len(raw))
	for _, r := range raw {
		vectors = append(vectors, pointVector{
			K: mustParseBigInt(t, r.K),
			P: NewPoint(mustParseBigInt(t, r.X), mustParseBigInt(t, r.Y)),
		})
	}
	return vectors
}

// loadDigestVectors reads published digest test vectors from fixtures/digest_vectors.json
func loadDigestVectors(t *testing.T) []digestVector {
	t.Helper()

	var raw []struct {
		Algorithm string `json:"algorithm"`
		Message   string `json:"message"`
		Digest    string `json:"digest"`
	}
	loadFixture(t, "digest_vectors.json", &raw)

	vectors := make([]digestVector, 0, len(raw))
	for _, r := range raw {
		var alg HashAlgorithm
		switch r.Algorithm {
		case "SHA256":
			alg = SHA256
		case "RIPEMD160":
			alg = RIPEMD160
		default:
			t.Fatalf("unknown algorithm %q in fixture", r.Algorithm)
		}
		vectors = append(vectors, digestVector{
			Algorithm: alg,
			Message:   r.Message,
			Digest:    mustParseBigInt(t, r.Digest),
		})
	}
	return vectors
}

func loadFixture(t *testing.T, filename string, v any) {
	t.Helper()

	file, err := os.Open("../../fixtures/" + filename)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, json.NewDecoder(file).Decode(v))
}

// parseBigInt parses a hex string with a 0x prefix or a decimal string.
func parseBigInt(s string) (*big.Int, error) {
	z := new(big.Int)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if _, ok := z.SetString(s[2:], 16); !ok {
			return nil, fmt.Errorf("invalid hex number: %s", s)
		}
		return z, nil
	}
	if _, ok := z.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid number format: %s", s)
	}
	return z, nil
}

func mustParseBigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	z, err := parseBigInt(s)
	require.NoError(t, err)
	return z
}

// fixedEntropy always returns the same value.
type fixedEntropy struct {
	k *big.Int
}

func (e fixedEntropy) Draw256() (*big.Int, error) {
	return new(big.Int).Set(e.k), nil
}

// sharedEntropy hands out the same *big.Int on every draw.
type sharedEntropy struct {
	k *big.Int
}

func (e sharedEntropy) Draw256() (*big.Int, error) {
	return e.k, nil
}

// nilEntropy returns neither a value nor an error.
type nilEntropy struct{}

func (nilEntropy) Draw256() (*big.Int, error) {
	return nil, nil
}

var errSequenceExhausted = errors.New("sequence exhausted")

// sequenceEntropy returns the given values in order.
type sequenceEntropy struct {
	mu     sync.Mutex
	values []*big.Int
	next   int
}

func newSequenceEntropy(values ...*big.Int) *sequenceEntropy {
	return &sequenceEntropy{values: values}
}

func (e *sequenceEntropy) Draw256() (*big.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.next >= len(e.values) {
		return nil, errSequenceExhausted
	}
	v := e.values[e.next]
	e.next++
	return new(big.Int).Set(v), nil
}

var errBrokenEntropy = errors.New("entropy device unavailable")

type failingEntropy struct{}

func (failingEntropy) Draw256() (*big.Int, error) {
	return nil, errBrokenEntropy
}

func testKey(t *testing.T, d int64) *PrivateKey {
	t.Helper()
	key, err := NewPrivateKey(Secp256k1(), big.NewInt(d))
	require.NoError(t, err)
	return key
}

func randomKey(t *testing.T) *PrivateKey {
	t.Helper()
	key, err := GeneratePrivateKey(Secp256k1(), CryptoEntropy{})
	require.NoError(t, err)
	return key
}

func quietSigner() *Signer {
	return NewSigner(Secp256k1()).WithLogger(logging.Discard())
}

func quietVerifier() *Verifier {
	return NewVerifier(Secp256k1()).WithLogger(logging.Discard())
}

// decredPubKey converts p for use with the decred secp256k1 package.
func decredPubKey(p Point) *secp256k1.PublicKey {
	var x, y secp256k1.FieldVal
	x.SetByteSlice(p.X().Bytes())
	y.SetByteSlice(p.Y().Bytes())
	return secp256k1.NewPublicKey(&x, &y)
}

// decredScalar converts x, which must be in [0, n), to a decred scalar.
func decredScalar(t *testing.T, x *big.Int) *secp256k1.ModNScalar {
	t.Helper()
	b, err := EncodeInt(x)
	require.NoError(t, err)

	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	require.False(t, overflow)
	return &s
}
