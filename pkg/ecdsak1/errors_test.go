package ecdsak1

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrNotInvertible, "ErrNotInvertible"},
		{ErrIntTooLarge, "ErrIntTooLarge"},
		{ErrPrivKeyOutOfRange, "ErrPrivKeyOutOfRange"},
		{ErrSigROutOfRange, "ErrSigROutOfRange"},
		{ErrSigSOutOfRange, "ErrSigSOutOfRange"},
		{ErrPubKeyInfinity, "ErrPubKeyInfinity"},
		{ErrPubKeyNotOnCurve, "ErrPubKeyNotOnCurve"},
		{ErrPubKeyNotInSubgroup, "ErrPubKeyNotInSubgroup"},
		{ErrEntropySource, "ErrEntropySource"},
		{ErrNonceAttemptsExhausted, "ErrNonceAttemptsExhausted"},
		{ErrNoNonceReuse, "ErrNoNonceReuse"},
		{ErrRecoveryFailed, "ErrRecoveryFailed"},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.Error(), "#%d", i)
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{Error{Description: "some error"}, "some error"},
		{Error{Description: "human-readable error"}, "human-readable error"},
	}

	for i, test := range tests {
		require.Equal(t, test.want, test.in.Error(), "#%d", i)
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrSigROutOfRange == ErrSigROutOfRange",
		err:       ErrSigROutOfRange,
		target:    ErrSigROutOfRange,
		wantMatch: true,
		wantAs:    ErrSigROutOfRange,
	}, {
		name:      "Error.ErrSigROutOfRange == ErrSigROutOfRange",
		err:       makeError(ErrSigROutOfRange, ""),
		target:    ErrSigROutOfRange,
		wantMatch: true,
		wantAs:    ErrSigROutOfRange,
	}, {
		name:      "ErrSigROutOfRange != ErrSigSOutOfRange",
		err:       ErrSigROutOfRange,
		target:    ErrSigSOutOfRange,
		wantMatch: false,
		wantAs:    ErrSigROutOfRange,
	}, {
		name:      "Error.ErrSigROutOfRange != ErrSigSOutOfRange",
		err:       makeError(ErrSigROutOfRange, ""),
		target:    ErrSigSOutOfRange,
		wantMatch: false,
		wantAs:    ErrSigROutOfRange,
	}, {
		name:      "wrapped Error.ErrEntropySource == ErrEntropySource",
		err:       wrapError(ErrEntropySource, "draw", io.ErrUnexpectedEOF),
		target:    ErrEntropySource,
		wantMatch: true,
		wantAs:    ErrEntropySource,
	}, {
		name:      "wrapped Error.ErrEntropySource == cause",
		err:       wrapError(ErrEntropySource, "draw", io.ErrUnexpectedEOF),
		target:    io.ErrUnexpectedEOF,
		wantMatch: true,
		wantAs:    ErrEntropySource,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.wantMatch, errors.Is(test.err, test.target))

			var kind ErrorKind
			require.True(t, errors.As(test.err, &kind))
			require.Equal(t, test.wantAs, kind)
		})
	}
}

func TestIsPrecondition(t *testing.T) {
	require.True(t, IsPrecondition(makeError(ErrPubKeyNotOnCurve, "")))
	require.True(t, IsPrecondition(makeError(ErrNotInvertible, "")))
	require.False(t, IsPrecondition(makeError(ErrNonceAttemptsExhausted, "")))
	require.False(t, IsPrecondition(wrapError(ErrEntropySource, "draw", io.EOF)))
	require.False(t, IsPrecondition(nil))
	require.False(t, IsPrecondition(io.EOF))
}
