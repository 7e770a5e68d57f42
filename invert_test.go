package scalar25519

import (
	"slices"
	"testing"
	"testing/quick"

	"filippo.io/edwards25519"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	assert.Equal(t, scalarXInv, scalarX.Invert())
	assert.Equal(t, FromUint64(1), scalarX.Multiply(scalarXInv))
	assert.Equal(t, Scalar{}, Scalar{}.Invert())
	assert.Equal(t, scalarMinusOne, scalarMinusOne.Invert())

	invertMatchesEdwards := func(x Scalar) bool {
		if x.IsZero() == 1 {
			return true
		}
		inv := x.Invert()
		return inv == fromEdwards(edwards25519.NewScalar().Invert(toEdwards(x))) &&
			inv.Multiply(x) == FromUint64(1)
	}
	err := quick.Check(invertMatchesEdwards, quickCheckConfig(128))
	assert.NoError(t, err)
}

func TestInvertClamped(t *testing.T) {
	invertClamped := func(x clampedScalar) bool {
		return x.Invert() == x.Reduce().Invert()
	}
	err := quick.Check(invertClamped, quickCheckConfig(64))
	assert.NoError(t, err)
}

func TestBatchInvert(t *testing.T) {
	batchInvert := func(xs []Scalar) bool {
		xs = slices.DeleteFunc(xs, func(x Scalar) bool { return x.IsZero() == 1 })
		in := slices.Clone(xs)

		ret := BatchInvert(xs)
		if ret != Product(in...).Invert() {
			return false
		}
		for i := range xs {
			if xs[i] != in[i].Invert() {
				return false
			}
		}
		return true
	}
	err := quick.Check(batchInvert, quickCheckConfig(16))
	assert.NoError(t, err)

	xs := []Scalar{scalarX, scalarY, scalarX}
	ret := BatchInvert(xs)
	assert.Equal(t, []Scalar{scalarXInv, scalarY.Invert(), scalarXInv}, xs)
	assert.Equal(t, scalarXInv.Multiply(scalarXInv).Multiply(scalarY.Invert()), ret)
}

func TestBatchInvertEmpty(t *testing.T) {
	assert.Equal(t, FromUint64(1), BatchInvert(nil))
	assert.Equal(t, FromUint64(1), BatchInvert([]Scalar{}))

	ret, err := TryBatchInvert(nil)
	require.NoError(t, err)
	assert.Equal(t, FromUint64(1), ret)
}

func TestTryBatchInvert(t *testing.T) {
	xs := []Scalar{scalarX, scalarY}
	ret, err := TryBatchInvert(xs)
	require.NoError(t, err)
	assert.Equal(t, []Scalar{scalarXInv, scalarY.Invert()}, xs)
	assert.Equal(t, scalarXY.Invert(), ret)

	withZero := []Scalar{scalarX, {}, scalarY}
	in := slices.Clone(withZero)
	ret, err = TryBatchInvert(withZero)
	assert.True(t, errors.Is(err, ErrZeroInput), "got %v", err)
	assert.Equal(t, Scalar{}, ret)
	assert.Equal(t, in, withZero, "inputs must be left untouched")

	// l is zero modulo l.
	_, err = TryBatchInvert([]Scalar{fromBig(bigOrder)})
	assert.True(t, errors.Is(err, ErrZeroInput), "got %v", err)
}

func TestBatchInvertZero(t *testing.T) {
	xs := []Scalar{scalarX, {}}
	if debugAssertions {
		assert.Panics(t, func() { BatchInvert(xs) })
		return
	}
	// Without debug assertions the result is meaningless but the call
	// completes.
	assert.NotPanics(t, func() { BatchInvert(xs) })
}

func BenchmarkInvert(b *testing.B) {
	x := scalarX
	for range b.N {
		x = x.Invert()
	}
}

func BenchmarkBatchInvert(b *testing.B) {
	xs := make([]Scalar, 256)
	for i := range xs {
		xs[i] = FromUint64(uint64(i + 1))
	}

	b.ResetTimer()
	for range b.N {
		BatchInvert(xs)
	}
}
