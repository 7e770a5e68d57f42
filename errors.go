package scalar25519

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLength is returned when an encoding or a digest has the wrong
	// size.
	ErrInvalidLength = errors.New("scalar25519: invalid input length")

	// ErrNonCanonical is returned when decoding an encoding that has the high
	// bit set or is not lower than l.
	ErrNonCanonical = errors.New("scalar25519: non-canonical scalar encoding")

	// ErrZeroInput is returned by [TryBatchInvert] when one of its inputs is
	// zero.
	ErrZeroInput = errors.New("scalar25519: zero scalar has no inverse")
)
