// Package ecdsak1 implements ECDSA signing and verification over the
// secp256k1 curve with plain math/big arithmetic.
//
// The package provides the modular and affine point arithmetic of the curve,
// SHA-256 and RIPEMD-160 message digests, an injectable entropy source for
// nonces and the signing and verification protocol itself. None of it runs in
// constant time; do not use it where timing side channels matter.
//
// # Quick Start
//
//	curve := ecdsak1.Secp256k1()
//
//	key, err := ecdsak1.GeneratePrivateKey(curve, ecdsak1.CryptoEntropy{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := ecdsak1.NewSigner(curve).Sign([]byte("hello"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := ecdsak1.NewVerifier(curve).Verify([]byte("hello"), key.PublicKey(), sig)
//
// Verify returns an error only for malformed input (see IsPrecondition); a
// signature that simply does not match returns false.
//
// # Customization
//
// Signers and verifiers are configured with fluent setters:
//
//	signer := ecdsak1.NewSigner(curve).
//	    WithConfig(ecdsak1.SignerConfig{
//	        Hash:          ecdsak1.RIPEMD160,
//	        Deterministic: true, // RFC 6979 nonces
//	    }).
//	    WithLogger(logging.New(slog.Default()))
//
// The logging package is github.com/mahdiidarabi/secp256k1-ecdsa/pkg/logging.
//
// # Nonces
//
// Every signature consumes one fresh nonce. Two signatures made with the same
// key and the same nonce reveal the key; FindNonceReuse and
// RecoverFromRelatedNonces demonstrate this and can audit signature sets.
package ecdsak1
