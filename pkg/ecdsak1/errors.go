package ecdsak1

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNotInvertible is returned when a modular inverse of zero is
	// requested.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrIntTooLarge is returned when an integer does not fit the 32-byte
	// big-endian message encoding or is negative.
	ErrIntTooLarge = ErrorKind("ErrIntTooLarge")

	// ErrPrivKeyOutOfRange is returned when a private key is not in
	// [1, n-1].
	ErrPrivKeyOutOfRange = ErrorKind("ErrPrivKeyOutOfRange")

	// ErrSigROutOfRange is returned when the r component of a signature is
	// not in [1, n-1].
	ErrSigROutOfRange = ErrorKind("ErrSigROutOfRange")

	// ErrSigSOutOfRange is returned when the s component of a signature is
	// not in [1, n-1].
	ErrSigSOutOfRange = ErrorKind("ErrSigSOutOfRange")

	// ErrPubKeyInfinity is returned when the public key is the identity
	// element.
	ErrPubKeyInfinity = ErrorKind("ErrPubKeyInfinity")

	// ErrPubKeyNotOnCurve is returned when the public key coordinates are out
	// of range or do not satisfy the curve equation.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyNotInSubgroup is returned when n times the public key is not
	// the identity.
	ErrPubKeyNotInSubgroup = ErrorKind("ErrPubKeyNotInSubgroup")

	// ErrEntropySource is returned when the entropy source fails to produce
	// a value.
	ErrEntropySource = ErrorKind("ErrEntropySource")

	// ErrNonceAttemptsExhausted is returned when no usable nonce was found
	// within the configured number of attempts.
	ErrNonceAttemptsExhausted = ErrorKind("ErrNonceAttemptsExhausted")

	// ErrNoNonceReuse is returned when an audit finds no pair of signatures
	// sharing a nonce.
	ErrNoNonceReuse = ErrorKind("ErrNoNonceReuse")

	// ErrRecoveryFailed is returned when a private key cannot be recovered
	// from a pair of signatures.
	ErrRecoveryFailed = ErrorKind("ErrRecoveryFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to signing, verification or key
// handling. It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error of the given kind that also wraps cause.
func wrapError(kind ErrorKind, desc string, cause error) Error {
	return Error{
		Err:         fmt.Errorf("%w: %w", kind, cause),
		Description: fmt.Sprintf("%s: %v", desc, cause),
	}
}

// preconditionKinds are the kinds that report malformed caller input rather
// than a failure of the operation itself.
var preconditionKinds = []ErrorKind{
	ErrNotInvertible,
	ErrIntTooLarge,
	ErrPrivKeyOutOfRange,
	ErrSigROutOfRange,
	ErrSigSOutOfRange,
	ErrPubKeyInfinity,
	ErrPubKeyNotOnCurve,
	ErrPubKeyNotInSubgroup,
}

// IsPrecondition reports whether err was caused by malformed input, as
// opposed to an internal or entropy failure.
func IsPrecondition(err error) bool {
	for _, kind := range preconditionKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
