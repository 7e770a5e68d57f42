package kernel

import "math/bits"

// uint128 is an unsigned 128-bit accumulator for limb products.
type uint128 struct {
	hi, lo uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi: hi, lo: lo}
}

// addMul returns c + a*b.
func (c uint128) addMul(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	lo, carry := bits.Add64(c.lo, lo, 0)
	hi, _ = bits.Add64(c.hi, hi, carry)
	return uint128{hi: hi, lo: lo}
}

// add returns c + d.
func (c uint128) add(d uint128) uint128 {
	lo, carry := bits.Add64(c.lo, d.lo, 0)
	hi, _ := bits.Add64(c.hi, d.hi, carry)
	return uint128{hi: hi, lo: lo}
}

// shr52 returns c >> 52.
func (c uint128) shr52() uint128 {
	return uint128{hi: c.hi >> 52, lo: c.lo>>52 | c.hi<<12}
}
