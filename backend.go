package scalar25519

// residue is the arithmetic backend the reduction and inversion routines are
// written against. [kernel.Element] is the one used by [Scalar].
//
// SetBytes must accept any 256-bit integer, and the Montgomery operations use
// the backend's own radix R.
type residue[T any] interface {
	*T
	Set(a *T) *T
	SetBytes(x *[32]byte) *T
	Bytes() [32]byte
	// SetRadix sets the receiver to R mod l, the Montgomery form of 1.
	SetRadix() *T
	Equal(u *T) int
	MontgomeryMultiply(a, b *T) *T
	MontgomerySquare(a *T) *T
	ToMontgomery(a *T) *T
	FromMontgomery(a *T) *T
}

// reduceWith returns the 256-bit little-endian integer b reduced modulo l.
func reduceWith[T any, P residue[T]](b *[32]byte) [32]byte {
	var x, r T
	P(&x).SetBytes(b)
	P(&r).SetRadix()
	// x*R/R = x mod l
	P(&x).MontgomeryMultiply(&x, &r)
	return P(&x).Bytes()
}

// invertWith returns the inverse modulo l of the 256-bit little-endian
// integer b, or zero if b is a multiple of l.
func invertWith[T any, P residue[T]](b *[32]byte) [32]byte {
	var x T
	P(&x).SetBytes(b)
	P(&x).ToMontgomery(&x)
	montgomeryInvert[T, P](&x, &x)
	P(&x).FromMontgomery(&x)
	return P(&x).Bytes()
}

// squareMultiply sets y = y^(2^squarings) * x in the Montgomery domain.
func squareMultiply[T any, P residue[T]](y *T, squarings int, x *T) {
	for range squarings {
		P(y).MontgomerySquare(y)
	}
	P(y).MontgomeryMultiply(y, x)
}

// montgomeryInvert sets v = 1/x, both in Montgomery form, and returns v.
//
// If x == 0, montgomeryInvert returns v = 0.
func montgomeryInvert[T any, P residue[T]](v, x *T) *T {
	// Inversion is implemented as exponentiation with exponent l - 2, using
	// an addition chain with windows of up to four bits. It takes 250
	// squarings and 34 multiplications.
	var w [10]T
	defer clear(w[:])
	_1, _10, _100, _11, _101 := &w[0], &w[1], &w[2], &w[3], &w[4]
	_111, _1001, _1011, _1111, y := &w[5], &w[6], &w[7], &w[8], &w[9]

	P(_1).Set(x)
	P(_10).MontgomerySquare(_1)              // 2
	P(_100).MontgomerySquare(_10)            // 4
	P(_11).MontgomeryMultiply(_10, _1)       // 3
	P(_101).MontgomeryMultiply(_10, _11)     // 5
	P(_111).MontgomeryMultiply(_10, _101)    // 7
	P(_1001).MontgomeryMultiply(_10, _111)   // 9
	P(_1011).MontgomeryMultiply(_10, _1001)  // 11
	P(_1111).MontgomeryMultiply(_100, _1011) // 15

	P(y).MontgomeryMultiply(_1111, _1) // 16

	squareMultiply[T, P](y, 123+3, _101)
	squareMultiply[T, P](y, 2+2, _11)
	squareMultiply[T, P](y, 1+4, _1111)
	squareMultiply[T, P](y, 1+4, _1111)
	squareMultiply[T, P](y, 4, _1001)
	squareMultiply[T, P](y, 2, _11)
	squareMultiply[T, P](y, 1+4, _1111)
	squareMultiply[T, P](y, 1+3, _101)
	squareMultiply[T, P](y, 3+3, _101)
	squareMultiply[T, P](y, 3, _111)
	squareMultiply[T, P](y, 1+4, _1111)
	squareMultiply[T, P](y, 2+3, _111)
	squareMultiply[T, P](y, 2+2, _11)
	squareMultiply[T, P](y, 1+4, _1011)
	squareMultiply[T, P](y, 2+4, _1011)
	squareMultiply[T, P](y, 6+4, _1001)
	squareMultiply[T, P](y, 2+2, _11)
	squareMultiply[T, P](y, 3+2, _11)
	squareMultiply[T, P](y, 3+2, _11)
	squareMultiply[T, P](y, 1+4, _1001)
	squareMultiply[T, P](y, 1+3, _111)
	squareMultiply[T, P](y, 2+4, _1111)
	squareMultiply[T, P](y, 1+4, _1011)
	squareMultiply[T, P](y, 3, _101)
	squareMultiply[T, P](y, 2+4, _1111)
	squareMultiply[T, P](y, 3, _101)
	squareMultiply[T, P](y, 1+2, _11)

	return P(v).Set(y)
}

// batchInvertWith replaces every element of xs with its inverse and returns
// the inverse of their product, which is one for an empty xs.
//
// If the product is zero and checked is set, xs is left untouched and
// batchInvertWith returns zero and false. Otherwise the result is meaningless
// but batchInvertWith still completes.
func batchInvertWith[T any, P residue[T]](xs []Scalar, checked bool) (Scalar, bool) {
	n := len(xs)

	// Montgomery forms of the inputs and of their running products, followed
	// by the accumulator and a temporary.
	scratch := make([]T, 2*n+2)
	defer clear(scratch)
	prefix, mont := scratch[:n], scratch[n:2*n]
	acc, tmp := &scratch[2*n], &scratch[2*n+1]

	var zero T
	P(acc).SetRadix()
	for i := range xs {
		P(&prefix[i]).Set(acc)
		P(&mont[i]).SetBytes(&xs[i].b)
		P(&mont[i]).ToMontgomery(&mont[i])
		P(acc).MontgomeryMultiply(acc, &mont[i])
	}

	if P(acc).Equal(&zero) == 1 {
		if checked {
			return Scalar{}, false
		}
		if debugAssertions {
			panic(errAssertZeroInput)
		}
	}

	montgomeryInvert[T, P](acc, acc)
	P(acc).FromMontgomery(acc)
	ret := Scalar{P(acc).Bytes()}

	for i := n - 1; i >= 0; i-- {
		// acc is the inverse of x_0 * ... * x_i.
		P(tmp).MontgomeryMultiply(acc, &mont[i])
		P(&mont[i]).MontgomeryMultiply(acc, &prefix[i])
		xs[i] = Scalar{P(&mont[i]).Bytes()}
		P(acc).Set(tmp)
	}

	return ret, true
}
