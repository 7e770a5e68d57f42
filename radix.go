package scalar25519

import "encoding/binary"

// AsRadix16 returns the signed radix-16 digits of s.
//
// The result has digits d_i such that s = sum(d_i * 16^i), with
// -8 <= d_i < 8 except for the last digit, which can be 8.
func (s Scalar) AsRadix16() [64]int8 {
	var out [64]int8

	for i, b := range s.b {
		out[2*i] = int8(b & 15)
		out[2*i+1] = int8(b >> 4)
	}

	// Recenter coefficients from [0, 16) to [-8, 8).
	for i := range 63 {
		carry := (out[i] + 8) >> 4
		out[i] -= carry << 4
		out[i+1] += carry
	}

	return out
}

// AsRadix2w returns the signed radix-2^w digits of s, for 4 <= w <= 8.
//
// The result has [Radix2wSizeHint](w) meaningful digits d_i such that
// s = sum(d_i * 2^(w*i)), with -2^(w-1) <= d_i < 2^(w-1) except for the last
// one. The remaining digits are zero.
//
// For w = 4 the result is the same as [Scalar.AsRadix16]. It panics if w is
// out of range.
func (s Scalar) AsRadix2w(w int) [64]int8 {
	if w < 4 || w > 8 {
		panic("scalar25519: radix width must be in [4, 8]")
	}
	if w == 4 {
		return s.AsRadix16()
	}

	var x [4]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(s.b[i*8:])
	}

	radix := uint64(1) << w
	windowMask := radix - 1

	var digits [64]int8
	count := (256 + w - 1) / w
	carry := uint64(0)
	for i := range count {
		offset := i * w
		idx, bit := offset/64, offset%64

		// Windows past the top of the scalar read zeros.
		var buf uint64
		if bit < 64-w || idx == 3 {
			buf = x[idx] >> bit
		} else {
			buf = x[idx]>>bit | x[idx+1]<<(64-bit)
		}

		// Recenter coefficients from [0, 2^w) to [-2^(w-1), 2^(w-1)).
		coef := carry + buf&windowMask
		carry = (coef + radix/2) >> w
		digits[i] = int8(int64(coef) - int64(carry<<w))
	}

	// The last window is never full below w = 8, so the final carry fits in
	// it. With w = 8 it needs a digit of its own.
	if w == 8 {
		digits[count] += int8(carry)
	} else {
		digits[count-1] += int8(carry << w)
	}

	return digits
}

// Radix2wSizeHint returns the number of meaningful digits returned by
// [Scalar.AsRadix2w] for the same w.
func Radix2wSizeHint(w int) int {
	switch w {
	case 4, 5, 6, 7:
		return (256 + w - 1) / w
	case 8:
		return (256+w-1)/w + 1
	default:
		panic("scalar25519: radix width must be in [4, 8]")
	}
}
