package edwards

import (
	"crypto/subtle"
	"encoding/binary"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/AlexanderYastrebov/scalar25519"
	"github.com/cockroachdb/errors"
)

// Montgomery "curve25519" v^2 = u^3 + A*u^2 + u parameters
//
// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
var (
	// Constant A = 486662
	_A = fieldElementFromUint64(486662)

	// Constant 1
	_1 = new(field.Element).One()

	// Constant -|sqrt(-486664)| - the scaling factor for bi-rational map
	// calculated such that Edwards generator point maps to Montgomery base point.
	sqrt486664 = func() *field.Element {
		var t field.Element
		t.Negate(fieldElementFromUint64(486664))
		t.SqrtRatio(&t, _1)
		return t.Negate(&t)
	}()
)

var (
	errNotOnCurve = errors.New("edwards: u-coordinate is not on curve25519")
	errLowOrder   = errors.New("edwards: X25519 output is the all-zero value")
)

type montgomeryPoint struct {
	u, v field.Element
}

// setBytes sets point coordinates from the little-endian u-coordinate bytes
// slice, choosing the v-coordinate with a non-negative square root.
func (m *montgomeryPoint) setBytes(ub []byte) (*montgomeryPoint, error) {
	u, err := new(field.Element).SetBytes(ub)
	if err != nil {
		return nil, err
	}

	// v^2 = u^3 + A*u^2 + u
	var uSquared, vSquared, t field.Element

	uSquared.Square(u)
	vSquared.Multiply(&uSquared, u)
	t.Multiply(_A, &uSquared)
	vSquared.Add(&vSquared, &t)
	vSquared.Add(&vSquared, u)

	v, wasSquare := t.SqrtRatio(&vSquared, _1)
	if wasSquare == 0 {
		return nil, errNotOnCurve
	}

	m.u.Set(u)
	m.v.Set(v)
	return m, nil
}

// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// (x, y) = (sqrt(-486664)*u/v, (u-1)/(u+1))
//
// The point of order two (0, 0) maps to (0, -1), as 1/0 evaluates to 0.
func edwardsFromMontgomery(m *montgomeryPoint) (*edwards25519.Point, error) {
	var x, y, t field.Element

	t.Invert(&m.v)
	x.Multiply(sqrt486664, &m.u)
	x.Multiply(&x, &t) // x = sqrt(-486664)*u/v

	t.Add(&m.u, _1)
	t.Invert(&t)
	y.Subtract(&m.u, _1)
	y.Multiply(&y, &t) // y = (u-1)/(u+1)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(&x, &y, _1, t.Multiply(&x, &y))
	if err != nil {
		// u = -1 has no image under the map.
		return nil, errors.Mark(errors.Wrap(err, "edwards: mapping u-coordinate"), errNotOnCurve)
	}
	return p, nil
}

// X25519 returns the X25519 function of RFC 7748 applied to scalar and the
// u-coordinate point, computed on the birationally equivalent Edwards curve
// with [ScalarMult].
//
// The scalar is clamped but not reduced, so the cofactor is cleared exactly as
// in RFC 7748. Unlike the Montgomery ladder, X25519 rejects u-coordinates of
// points on the quadratic twist. It also rejects inputs producing the
// all-zero output.
func X25519(scalar [32]byte, point []byte) ([]byte, error) {
	var m montgomeryPoint
	if _, err := m.setBytes(point); err != nil {
		return nil, err
	}
	p, err := edwardsFromMontgomery(&m)
	if err != nil {
		return nil, err
	}

	k := scalar25519.FromClampedBytesUnreduced(scalar)
	out := ScalarMult(k, p).BytesMontgomery()

	var zero [32]byte
	if subtle.ConstantTimeCompare(out, zero[:]) == 1 {
		return nil, errLowOrder
	}
	return out, nil
}

func fieldElementFromUint64(n uint64) *field.Element {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}
