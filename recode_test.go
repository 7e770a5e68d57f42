package scalar25519

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

// scalarANAF is the width-5 NAF of scalarA.
var scalarANAF = [256]int8{
	0, 13, 0, 0, 0, 0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, -9, 0, 0, 0, 0, -11, 0, 0, 0, 0, 3, 0, 0,
	0, 0, 1, 0, 0, 0, 0, 9, 0, 0, 0, 0, -5, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 11, 0, 0, 0, 0,
	11, 0, 0, 0, 0, 0, -9, 0, 0, 0, 0, 0, -3, 0, 0, 0, 0, 9, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
	0, -1, 0, 0, 0, 0, 0, 9, 0, 0, 0, 0, -15, 0, 0, 0, 0, -7, 0, 0, 0, 0, -9, 0, 0, 0, 0, 0, 5,
	0, 0, 0, 0, 13, 0, 0, 0, 0, 0, -3, 0, 0, 0, 0, -11, 0, 0, 0, 0, -7, 0, 0, 0, 0, -13, 0, 0,
	0, 0, 11, 0, 0, 0, 0, -9, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, -15, 0, 0, 0, 0, 1, 0, 0, 0, 0,
	7, 0, 0, 0, 0, 0, 0, 0, 0, 5, 0, 0, 0, 0, 0, 13, 0, 0, 0, 0, 0, 0, 11, 0, 0, 0, 0, 0, 15,
	0, 0, 0, 0, 0, -9, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 7, 0, 0, 0, 0, 0, -15, 0,
	0, 0, 0, 0, 15, 0, 0, 0, 0, 15, 0, 0, 0, 0, 15, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0,
}

// fromDigits returns sum(d_i * 2^(w*i)).
func fromDigits(digits []int8, w uint) *big.Int {
	n := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		n.Lsh(n, w)
		n.Add(n, big.NewInt(int64(digits[i])))
	}
	return n
}

func TestNonAdjacentFormVector(t *testing.T) {
	assert.Equal(t, scalarANAF, scalarA.NonAdjacentForm(5))
}

// isValidNAF checks the digit bounds and the spacing of nonzero digits.
func isValidNAF(naf [256]int8, w int) bool {
	last := -w
	for i, d := range naf {
		if d == 0 {
			continue
		}
		if d%2 == 0 || int(d) >= 1<<(w-1) || int(d) <= -(1<<(w-1)) || i-last < w {
			return false
		}
		last = i
	}
	return true
}

func TestNonAdjacentForm(t *testing.T) {
	nonAdjacentForm := func(x Scalar, c clampedScalar) bool {
		for _, s := range []Scalar{x, c.Scalar, scalarLargestUnreduced} {
			for w := 2; w <= 8; w++ {
				naf := s.NonAdjacentForm(w)
				if !isValidNAF(naf, w) || fromDigits(naf[:], 1).Cmp(toBig(s)) != 0 {
					return false
				}
			}
		}
		return true
	}
	err := quick.Check(nonAdjacentForm, quickCheckConfig(64))
	assert.NoError(t, err)
}

func TestAsRadix16(t *testing.T) {
	asRadix16 := func(x Scalar, c clampedScalar) bool {
		for _, s := range []Scalar{x, c.Scalar, scalarLargestUnreduced} {
			digits := s.AsRadix16()
			for i, d := range digits {
				if d < -8 || d > 8 || (d == 8 && i != 63) {
					return false
				}
			}
			if fromDigits(digits[:], 4).Cmp(toBig(s)) != 0 {
				return false
			}
		}
		return true
	}
	err := quick.Check(asRadix16, quickCheckConfig(256))
	assert.NoError(t, err)
}

func TestAsRadix2w(t *testing.T) {
	asRadix2w := func(x Scalar, c clampedScalar) bool {
		for _, s := range []Scalar{x, c.Scalar, scalarLargestUnreduced} {
			for w := 4; w <= 8; w++ {
				digits := s.AsRadix2w(w)
				n := Radix2wSizeHint(w)
				for i, d := range digits {
					if i >= n && d != 0 {
						return false
					}
					if i < n-1 && (int(d) < -(1<<(w-1)) || int(d) >= 1<<(w-1)) {
						return false
					}
				}
				if fromDigits(digits[:n], uint(w)).Cmp(toBig(s)) != 0 {
					return false
				}
			}
		}
		return true
	}
	err := quick.Check(asRadix2w, quickCheckConfig(256))
	assert.NoError(t, err)

	assert.Equal(t, scalarA.AsRadix16(), scalarA.AsRadix2w(4))
}

func TestRadix2wSizeHint(t *testing.T) {
	for w, want := range map[int]int{4: 64, 5: 52, 6: 43, 7: 37, 8: 33} {
		assert.Equal(t, want, Radix2wSizeHint(w), "w=%d", w)
	}
}

func TestRecodingWidthPanics(t *testing.T) {
	for _, w := range []int{-1, 0, 1, 9, 64} {
		assert.Panics(t, func() { scalarA.NonAdjacentForm(w) }, "NAF w=%d", w)
	}
	for _, w := range []int{0, 3, 9} {
		assert.Panics(t, func() { scalarA.AsRadix2w(w) }, "radix w=%d", w)
		assert.Panics(t, func() { Radix2wSizeHint(w) }, "size hint w=%d", w)
	}
}

func BenchmarkNonAdjacentForm(b *testing.B) {
	for range b.N {
		scalarA.NonAdjacentForm(5)
	}
}

func BenchmarkAsRadix16(b *testing.B) {
	for range b.N {
		scalarA.AsRadix16()
	}
}

func BenchmarkAsRadix2w(b *testing.B) {
	for range b.N {
		scalarA.AsRadix2w(6)
	}
}
