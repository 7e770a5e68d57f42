// Package edwards multiplies [filippo.io/edwards25519] points by
// [scalar25519.Scalar] values using the signed-digit recodings of package
// [scalar25519].
//
// It provides a constant-time fixed-window multiplication that accepts
// clamped unreduced scalars, a variable-time [wNAF] multiplication, a
// variable-time [Pippenger] multi-scalar multiplication and an X25519
// implementation on top of them.
//
// [wNAF]: https://en.wikipedia.org/wiki/Elliptic_curve_point_multiplication#w-ary_non-adjacent_form_(wNAF)_method
// [Pippenger]: https://cr.yp.to/papers/pippenger-20020118-retypeset20220327.pdf
package edwards

import (
	"crypto/subtle"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/AlexanderYastrebov/scalar25519"
)

// ScalarMult returns s * p.
//
// The scalar is used as the exact integer it encodes, which matters for
// clamped scalars and points outside the prime-order subgroup.
//
// ScalarMult runs in time independent of s.
func ScalarMult(s scalar25519.Scalar, p *edwards25519.Point) *edwards25519.Point {
	table := newLookupTable(p)
	digits := s.AsRadix16()

	v := edwards25519.NewIdentityPoint()
	var q edwards25519.Point
	for i := len(digits) - 1; i >= 0; i-- {
		v.Add(v, v)
		v.Add(v, v)
		v.Add(v, v)
		v.Add(v, v)

		table.selectInto(&q, digits[i])
		v.Add(v, &q)
	}
	return v
}

// lookupTable holds the extended coordinates of p, 2p, ..., 8p.
type lookupTable struct {
	points [8]extendedCoordinates
}

type extendedCoordinates struct {
	X, Y, Z, T field.Element
}

func newLookupTable(p *edwards25519.Point) *lookupTable {
	t := new(lookupTable)
	q := new(edwards25519.Point).Set(p)
	for i := range t.points {
		if i > 0 {
			q.Add(q, p)
		}
		X, Y, Z, T := q.ExtendedCoordinates()
		t.points[i] = extendedCoordinates{*X, *Y, *Z, *T}
	}
	return t
}

// selectInto sets dst = d*p for -8 <= d <= 8, in constant time.
func (t *lookupTable) selectInto(dst *edwards25519.Point, d int8) {
	m := d >> 7
	abs := uint8((d ^ m) - m)
	neg := int(uint8(m) & 1)

	// Start from the identity (0 : 1 : 1 : 0).
	var e extendedCoordinates
	e.Y.One()
	e.Z.One()
	for j := range t.points {
		cond := subtle.ConstantTimeByteEq(abs, uint8(j+1))
		e.X.Select(&t.points[j].X, &e.X, cond)
		e.Y.Select(&t.points[j].Y, &e.Y, cond)
		e.Z.Select(&t.points[j].Z, &e.Z, cond)
		e.T.Select(&t.points[j].T, &e.T, cond)
	}

	// -(X : Y : Z : T) = (-X : Y : Z : -T)
	var negX, negT field.Element
	negX.Negate(&e.X)
	negT.Negate(&e.T)
	e.X.Select(&negX, &e.X, neg)
	e.T.Select(&negT, &e.T, neg)

	if _, err := dst.SetExtendedCoordinates(&e.X, &e.Y, &e.Z, &e.T); err != nil {
		panic(err)
	}
}

// VarTimeScalarMult returns s * p using a width-5 NAF.
//
// It runs in variable time and must only be used with public scalars.
func VarTimeScalarMult(s scalar25519.Scalar, p *edwards25519.Point) *edwards25519.Point {
	naf := s.NonAdjacentForm(5)

	// odd[i] = (2i+1)p
	var odd [8]edwards25519.Point
	var p2 edwards25519.Point
	p2.Add(p, p)
	odd[0].Set(p)
	for i := 1; i < len(odd); i++ {
		odd[i].Add(&odd[i-1], &p2)
	}

	v := edwards25519.NewIdentityPoint()

	i := len(naf) - 1
	for i >= 0 && naf[i] == 0 {
		i--
	}
	for ; i >= 0; i-- {
		v.Add(v, v)
		switch d := int(naf[i]); {
		case d > 0:
			v.Add(v, &odd[d/2])
		case d < 0:
			v.Subtract(v, &odd[-d/2])
		}
	}
	return v
}

// VarTimeMultiScalarMult returns sum(scalars[i] * points[i]) using
// Pippenger's bucket method.
//
// It runs in variable time and must only be used with public scalars. It
// panics if the inputs have different lengths.
func VarTimeMultiScalarMult(scalars []scalar25519.Scalar, points []*edwards25519.Point) *edwards25519.Point {
	if len(scalars) != len(points) {
		panic("edwards: called VarTimeMultiScalarMult with different size inputs")
	}

	w := pippengerWidth(len(scalars))
	digits := make([][64]int8, len(scalars))
	for i, s := range scalars {
		digits[i] = s.AsRadix2w(w)
	}

	// Digits are in [-2^(w-1), 2^(w-1)], bucket k holds the points with
	// digit ±(k+1).
	buckets := make([]edwards25519.Point, 1<<(w-1))
	identity := edwards25519.NewIdentityPoint()

	v := edwards25519.NewIdentityPoint()
	var sum, total edwards25519.Point
	for i := scalar25519.Radix2wSizeHint(w) - 1; i >= 0; i-- {
		for range w {
			v.Add(v, v)
		}

		for k := range buckets {
			buckets[k].Set(identity)
		}
		for j, p := range points {
			switch d := int(digits[j][i]); {
			case d > 0:
				buckets[d-1].Add(&buckets[d-1], p)
			case d < 0:
				buckets[-d-1].Subtract(&buckets[-d-1], p)
			}
		}

		// total = sum((k+1) * buckets[k]) via running sums.
		sum.Set(identity)
		total.Set(identity)
		for k := len(buckets) - 1; k >= 0; k-- {
			sum.Add(&sum, &buckets[k])
			total.Add(&total, &sum)
		}

		v.Add(v, &total)
	}
	return v
}

func pippengerWidth(n int) int {
	switch {
	case n < 500:
		return 6
	case n < 800:
		return 7
	default:
		return 8
	}
}
