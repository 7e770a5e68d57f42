package scalar25519

import "github.com/AlexanderYastrebov/scalar25519/kernel"

// Reduce returns s modulo l.
func (s Scalar) Reduce() Scalar {
	return Scalar{reduceWith[kernel.Element](&s.b)}
}

// IsCanonical returns 1 if s is lower than l, and 0 otherwise.
func (s Scalar) IsCanonical() int {
	return s.Equal(s.Reduce())
}

// reduced unpacks s reduced modulo l into v.
func (s Scalar) reduced(v *kernel.Element) *kernel.Element {
	var r kernel.Element
	s.unpack(v)
	return v.MontgomeryMultiply(v, r.SetRadix())
}

// Add returns s + t mod l.
func (s Scalar) Add(t Scalar) Scalar {
	var x, y kernel.Element
	s.unpack(&x)
	t.unpack(&y)

	// Operands may be clamped and unreduced, so the sum can exceed 2l.
	x.Add(&x, &y)
	return pack(x.MontgomeryMultiply(&x, y.SetRadix()))
}

// Subtract returns s - t mod l.
func (s Scalar) Subtract(t Scalar) Scalar {
	var x, y kernel.Element
	return pack(x.Subtract(s.reduced(&x), t.reduced(&y)))
}

// Negate returns -s mod l.
func (s Scalar) Negate() Scalar {
	var x kernel.Element
	return pack(x.Negate(s.reduced(&x)))
}

// Multiply returns s * t mod l.
func (s Scalar) Multiply(t Scalar) Scalar {
	var x, y kernel.Element
	return pack(x.Multiply(s.unpack(&x), t.unpack(&y)))
}

// Square returns s * s mod l.
func (s Scalar) Square() Scalar {
	var x kernel.Element
	return pack(x.Square(s.unpack(&x)))
}

// Sum returns the sum of xs modulo l, or zero if xs is empty.
func Sum(xs ...Scalar) Scalar {
	var acc, x kernel.Element
	for _, s := range xs {
		acc.Add(&acc, s.reduced(&x))
	}
	return pack(&acc)
}

// Product returns the product of xs modulo l, or one if xs is empty.
func Product(xs ...Scalar) Scalar {
	var acc, x kernel.Element
	acc.One()
	for _, s := range xs {
		acc.Multiply(&acc, s.unpack(&x))
	}
	return pack(&acc)
}
