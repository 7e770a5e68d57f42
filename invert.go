package scalar25519

import (
	"github.com/AlexanderYastrebov/scalar25519/kernel"
	"github.com/cockroachdb/errors"
)

var errAssertZeroInput = errors.AssertionFailedf("scalar25519: batch inversion of a zero scalar")

// Invert returns 1/s mod l.
//
// If s is zero modulo l, Invert returns zero.
func (s Scalar) Invert() Scalar {
	return Scalar{invertWith[kernel.Element](&s.b)}
}

// BatchInvert replaces every element of xs with its inverse and returns the
// product of all the inverses. An empty slice returns one.
//
// It costs a single inversion plus three multiplications per element, using
// Montgomery's trick. All elements must be nonzero: with a zero element the
// results are meaningless. Use [TryBatchInvert] when that is not known in
// advance.
func BatchInvert(xs []Scalar) Scalar {
	ret, _ := batchInvertWith[kernel.Element](xs, false)
	return ret
}

// TryBatchInvert is like [BatchInvert], but if any element of xs is zero it
// leaves xs unchanged and returns [ErrZeroInput].
//
// The check is on the product of all elements, so a failure does not reveal
// which element is zero.
func TryBatchInvert(xs []Scalar) (Scalar, error) {
	ret, ok := batchInvertWith[kernel.Element](xs, true)
	if !ok {
		return Scalar{}, errors.Wrapf(ErrZeroInput, "batch of %d scalars", len(xs))
	}
	return ret, nil
}
