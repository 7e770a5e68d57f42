// Package scalar25519 implements constant-time arithmetic on [edwards25519]
// and [ristretto255] scalars, the integers modulo the prime group order
//
//	l = 2^252 + 27742317777372353535851937790883648493.
//
// A [Scalar] is an immutable value: every operation returns a new Scalar and
// leaves its operands untouched. Besides the ring operations the package
// provides inversion (single and batched with Montgomery's trick) and the
// signed-digit recodings used by point multiplication algorithms, see
// [Scalar.NonAdjacentForm] and [Scalar.AsRadix2w].
//
// Scalars are always below 2^255. Every constructor except
// [FromClampedBytesUnreduced] also guarantees they are below l.
//
// All operations run in time independent of the scalar values, with the
// exception of [Scalar.NonAdjacentForm], which must only be used with public
// scalars.
//
// [edwards25519]: https://datatracker.ietf.org/doc/html/rfc8032#section-5.1
// [ristretto255]: https://datatracker.ietf.org/doc/html/rfc9496
package scalar25519

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/AlexanderYastrebov/scalar25519/kernel"
	"github.com/cockroachdb/errors"
)

// Scalar is an integer modulo l, stored as its 32-byte little-endian
// encoding.
//
// The zero value is a valid zero scalar.
type Scalar struct {
	b [32]byte
}

// FromCanonicalBytes decodes the canonical 32-byte little-endian encoding of a
// scalar. It returns false, and the zero scalar, if b has the high bit set or
// encodes an integer not lower than l.
func FromCanonicalBytes(b [32]byte) (Scalar, bool) {
	s := Scalar{b}
	highBitClear := subtle.ConstantTimeByteEq(b[31]>>7, 0)
	ok := highBitClear & s.IsCanonical()
	return Select(s, Scalar{}, ok), ok == 1
}

// ParseCanonical is like [FromCanonicalBytes] for a slice, and reports
// [ErrInvalidLength] or [ErrNonCanonical] on invalid input.
func ParseCanonical(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, errors.Wrapf(ErrInvalidLength, "got %d bytes, want 32", len(b))
	}
	s, ok := FromCanonicalBytes([32]byte(b))
	if !ok {
		return Scalar{}, ErrNonCanonical
	}
	return s, nil
}

// FromBytesModOrder returns the 256-bit little-endian integer b reduced
// modulo l.
func FromBytesModOrder(b [32]byte) Scalar {
	return Scalar{b}.Reduce()
}

// FromBytesModOrderWide returns the 512-bit little-endian integer b reduced
// modulo l.
//
// With 64 uniformly random bytes the result is uniformly distributed, up to a
// negligible bias.
func FromBytesModOrderWide(b [64]byte) Scalar {
	var x kernel.Element
	return Scalar{x.SetWideBytes(&b).Bytes()}
}

// FromUint64 returns n as a scalar.
func FromUint64(n uint64) Scalar {
	var s Scalar
	binary.LittleEndian.PutUint64(s.b[:8], n)
	return s
}

// ClampInteger applies the X25519 and Ed25519 clamping to b: it clears the
// three lowest bits and the highest bit, and sets bit 254.
//
// The result is a multiple of 8 in [2^254, 2^255).
func ClampInteger(b [32]byte) [32]byte {
	b[0] &= 0b1111_1000
	b[31] &= 0b0111_1111
	b[31] |= 0b0100_0000
	return b
}

// FromClampedBytesUnreduced returns the clamping of b as a scalar without
// reducing it modulo l.
//
// The result is only meaningful as a point multiplier, where the exact
// integer matters on curve points outside the prime-order subgroup. It is the
// only way to obtain a scalar that may not be lower than l. Arithmetic on it
// is well defined and produces reduced results.
func FromClampedBytesUnreduced(b [32]byte) Scalar {
	return Scalar{ClampInteger(b)}
}

// Random returns a uniformly random scalar read from r, or from
// [crypto/rand.Reader] if r is nil.
func Random(r io.Reader) (Scalar, error) {
	if r == nil {
		r = rand.Reader
	}
	var b [64]byte
	defer clear(b[:])
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Scalar{}, errors.Wrap(err, "scalar25519: reading random bytes")
	}
	return FromBytesModOrderWide(b), nil
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	return s.b
}

// String returns the hex encoding of [Scalar.Bytes].
func (s Scalar) String() string {
	return hex.EncodeToString(s.b[:])
}

// Equal returns 1 if s and t are equal, and 0 otherwise.
//
// Scalars are compared by their encoding, so a clamped unreduced scalar is not
// equal to its reduction.
func (s Scalar) Equal(t Scalar) int {
	return subtle.ConstantTimeCompare(s.b[:], t.b[:])
}

// IsZero returns 1 if s is zero, and 0 otherwise.
func (s Scalar) IsZero() int {
	return s.Equal(Scalar{})
}

// Select returns a if cond == 1, and b if cond == 0.
func Select(a, b Scalar, cond int) Scalar {
	var s Scalar
	m := byte(-cond)
	for i := range s.b {
		s.b[i] = (m & a.b[i]) | (^m & b.b[i])
	}
	return s
}

func (s Scalar) unpack(v *kernel.Element) *kernel.Element {
	return v.SetBytes(&s.b)
}

func pack(v *kernel.Element) Scalar {
	return Scalar{v.Bytes()}
}
