package scalar25519

import "encoding/binary"

// NonAdjacentForm returns the width-w non-adjacent form of s, for 2 <= w <= 8.
//
// The result has digits d_i such that s = sum(d_i * 2^i). Every nonzero digit
// is odd with |d_i| < 2^(w-1), and among any w consecutive digits at most one
// is nonzero.
//
// NonAdjacentForm runs in variable time and must only be used with public
// scalars. It panics if w is out of range.
func (s Scalar) NonAdjacentForm(w int) [256]int8 {
	if w < 2 || w > 8 {
		panic("scalar25519: NAF width must be in [2, 8]")
	}

	var naf [256]int8

	// The extra zero word lets windows straddle the end of the scalar.
	var x [5]uint64
	for i := range 4 {
		x[i] = binary.LittleEndian.Uint64(s.b[i*8:])
	}

	width := uint64(1) << w
	windowMask := width - 1

	pos := 0
	carry := uint64(0)
	for pos < 256 {
		idx, bit := pos/64, pos%64
		var buf uint64
		if bit < 64-w {
			buf = x[idx] >> bit
		} else {
			buf = x[idx]>>bit | x[idx+1]<<(64-bit)
		}

		window := carry + buf&windowMask

		if window&1 == 0 {
			// Even window: emit a zero and slide by one bit. The carry is
			// kept for the next window.
			pos++
			continue
		}

		if window < width/2 {
			carry = 0
			naf[pos] = int8(window)
		} else {
			carry = 1
			naf[pos] = int8(int(window) - int(width))
		}

		pos += w
	}

	return naf
}
