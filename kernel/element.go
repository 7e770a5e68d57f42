package kernel

import (
	"crypto/subtle"
	"encoding/binary"
)

// Element represents an integer modulo l.
//
// All arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^52 + t.l2*2^104 + t.l3*2^156 + t.l4*2^208
	//
	// Between operations all limbs are expected to be lower than 2^52.
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
	l4 uint64
}

const maskLow52Bits uint64 = (1 << 52) - 1

// order is l.
var order = &Element{
	l0: 0x0002631a5cf5d3ed,
	l1: 0x000dea2f79cd6581,
	l2: 0x000000000014def9,
	l3: 0x0000000000000000,
	l4: 0x0000100000000000,
}

// lFactor is -1/l mod 2^52.
const lFactor uint64 = 0x00051da312547e1b

// radix is R = 2^260 mod l.
var radix = &Element{
	l0: 0x000f48bd6721e6ed,
	l1: 0x0003bab5ac67e45a,
	l2: 0x000fffffeb35e51b,
	l3: 0x000fffffffffffff,
	l4: 0x00000fffffffffff,
}

// radixSquared is R^2 = 2^520 mod l.
var radixSquared = &Element{
	l0: 0x0009d265e952d13b,
	l1: 0x000d63c715bea69f,
	l2: 0x0005be65cb687604,
	l3: 0x0003dceec73d217f,
	l4: 0x000009411b7c309a,
}

var feZero = &Element{0, 0, 0, 0, 0}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{1, 0, 0, 0, 0}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// SetRadix sets v = R mod l, the Montgomery form of 1, and returns v.
func (v *Element) SetRadix() *Element {
	*v = *radix
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to the 256-bit little-endian integer x, and returns v.
//
// The value is not reduced: v can hold any integer up to 2^256 - 1. Every
// operation of this package accepts such an element as input.
func (v *Element) SetBytes(x *[32]byte) *Element {
	w0 := binary.LittleEndian.Uint64(x[0*8:])
	w1 := binary.LittleEndian.Uint64(x[1*8:])
	w2 := binary.LittleEndian.Uint64(x[2*8:])
	w3 := binary.LittleEndian.Uint64(x[3*8:])

	v.l0 = w0 & maskLow52Bits
	v.l1 = (w0>>52 | w1<<12) & maskLow52Bits
	v.l2 = (w1>>40 | w2<<24) & maskLow52Bits
	v.l3 = (w2>>28 | w3<<36) & maskLow52Bits
	v.l4 = w3 >> 16
	return v
}

// SetWideBytes sets v to the 512-bit little-endian integer x reduced modulo l,
// and returns v.
func (v *Element) SetWideBytes(x *[64]byte) *Element {
	var w [8]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(x[i*8:])
	}

	// x = lo + hi*2^260
	lo := Element{
		l0: w[0] & maskLow52Bits,
		l1: (w[0]>>52 | w[1]<<12) & maskLow52Bits,
		l2: (w[1]>>40 | w[2]<<24) & maskLow52Bits,
		l3: (w[2]>>28 | w[3]<<36) & maskLow52Bits,
		l4: (w[3]>>16 | w[4]<<48) & maskLow52Bits,
	}
	hi := Element{
		l0: (w[4] >> 4) & maskLow52Bits,
		l1: (w[4]>>56 | w[5]<<8) & maskLow52Bits,
		l2: (w[5]>>44 | w[6]<<20) & maskLow52Bits,
		l3: (w[6]>>32 | w[7]<<32) & maskLow52Bits,
		l4: w[7] >> 20,
	}

	// lo*R/R = lo and hi*R^2/R = hi*R, both reduced.
	lo.MontgomeryMultiply(&lo, radix)
	hi.MontgomeryMultiply(&hi, radixSquared)
	return v.Add(&lo, &hi)
}

// Bytes returns the 32-byte little-endian encoding of v.
func (v *Element) Bytes() [32]byte {
	var out [32]byte
	binary.LittleEndian.PutUint64(out[0*8:], v.l0|v.l1<<52)
	binary.LittleEndian.PutUint64(out[1*8:], v.l1>>12|v.l2<<40)
	binary.LittleEndian.PutUint64(out[2*8:], v.l2>>24|v.l3<<28)
	binary.LittleEndian.PutUint64(out[3*8:], v.l3>>36|v.l4<<16)
	return out
}

// Equal returns 1 if v and u encode the same integer, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	sv, su := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(sv[:], su[:])
}

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// Add sets v = a + b mod l, and returns v.
//
// The result is reduced if a + b < 2l.
func (v *Element) Add(a, b *Element) *Element {
	var sum Element
	carry := a.l0 + b.l0
	sum.l0 = carry & maskLow52Bits
	carry = a.l1 + b.l1 + carry>>52
	sum.l1 = carry & maskLow52Bits
	carry = a.l2 + b.l2 + carry>>52
	sum.l2 = carry & maskLow52Bits
	carry = a.l3 + b.l3 + carry>>52
	sum.l3 = carry & maskLow52Bits
	carry = a.l4 + b.l4 + carry>>52
	sum.l4 = carry & maskLow52Bits

	return v.Subtract(&sum, order)
}

// Subtract sets v = a - b mod l, and returns v.
//
// The result is reduced if a and b are.
func (v *Element) Subtract(a, b *Element) *Element {
	var d Element
	borrow := a.l0 - b.l0
	d.l0 = borrow & maskLow52Bits
	borrow = a.l1 - (b.l1 + borrow>>63)
	d.l1 = borrow & maskLow52Bits
	borrow = a.l2 - (b.l2 + borrow>>63)
	d.l2 = borrow & maskLow52Bits
	borrow = a.l3 - (b.l3 + borrow>>63)
	d.l3 = borrow & maskLow52Bits
	borrow = a.l4 - (b.l4 + borrow>>63)
	d.l4 = borrow & maskLow52Bits

	// Add l back if the difference went negative.
	m := mask64Bits(int(borrow >> 63))
	carry := d.l0 + order.l0&m
	v.l0 = carry & maskLow52Bits
	carry = d.l1 + order.l1&m + carry>>52
	v.l1 = carry & maskLow52Bits
	carry = d.l2 + order.l2&m + carry>>52
	v.l2 = carry & maskLow52Bits
	carry = d.l3 + order.l3&m + carry>>52
	v.l3 = carry & maskLow52Bits
	carry = d.l4 + order.l4&m + carry>>52
	v.l4 = carry & maskLow52Bits
	return v
}

// Negate sets v = -a mod l, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Multiply sets v = a * b mod l, and returns v.
func (v *Element) Multiply(a, b *Element) *Element {
	var t Element
	t.MontgomeryMultiply(a, b) // a*b/R
	return v.MontgomeryMultiply(&t, radixSquared)
}

// Square sets v = a * a mod l, and returns v.
func (v *Element) Square(a *Element) *Element {
	var t Element
	t.MontgomerySquare(a)
	return v.MontgomeryMultiply(&t, radixSquared)
}

// MontgomeryMultiply sets v = a * b / R mod l, and returns v.
func (v *Element) MontgomeryMultiply(a, b *Element) *Element {
	z := mulInternal(a, b)
	return v.montgomeryReduce(&z)
}

// MontgomerySquare sets v = a * a / R mod l, and returns v.
func (v *Element) MontgomerySquare(a *Element) *Element {
	z := squareInternal(a)
	return v.montgomeryReduce(&z)
}

// ToMontgomery sets v = a * R mod l, and returns v.
func (v *Element) ToMontgomery(a *Element) *Element {
	return v.MontgomeryMultiply(a, radixSquared)
}

// FromMontgomery sets v = a / R mod l, and returns v.
func (v *Element) FromMontgomery(a *Element) *Element {
	z := [9]uint128{
		{lo: a.l0}, {lo: a.l1}, {lo: a.l2}, {lo: a.l3}, {lo: a.l4},
	}
	return v.montgomeryReduce(&z)
}

// mulInternal returns the 9-limb schoolbook product of a and b.
func mulInternal(a, b *Element) [9]uint128 {
	var z [9]uint128
	z[0] = mul64(a.l0, b.l0)
	z[1] = mul64(a.l0, b.l1).addMul(a.l1, b.l0)
	z[2] = mul64(a.l0, b.l2).addMul(a.l1, b.l1).addMul(a.l2, b.l0)
	z[3] = mul64(a.l0, b.l3).addMul(a.l1, b.l2).addMul(a.l2, b.l1).addMul(a.l3, b.l0)
	z[4] = mul64(a.l0, b.l4).addMul(a.l1, b.l3).addMul(a.l2, b.l2).addMul(a.l3, b.l1).addMul(a.l4, b.l0)
	z[5] = mul64(a.l1, b.l4).addMul(a.l2, b.l3).addMul(a.l3, b.l2).addMul(a.l4, b.l1)
	z[6] = mul64(a.l2, b.l4).addMul(a.l3, b.l3).addMul(a.l4, b.l2)
	z[7] = mul64(a.l3, b.l4).addMul(a.l4, b.l3)
	z[8] = mul64(a.l4, b.l4)
	return z
}

// squareInternal returns the 9-limb product of a with itself.
func squareInternal(a *Element) [9]uint128 {
	a0x2, a1x2, a2x2, a3x2 := a.l0*2, a.l1*2, a.l2*2, a.l3*2

	var z [9]uint128
	z[0] = mul64(a.l0, a.l0)
	z[1] = mul64(a0x2, a.l1)
	z[2] = mul64(a0x2, a.l2).addMul(a.l1, a.l1)
	z[3] = mul64(a0x2, a.l3).addMul(a1x2, a.l2)
	z[4] = mul64(a0x2, a.l4).addMul(a1x2, a.l3).addMul(a.l2, a.l2)
	z[5] = mul64(a1x2, a.l4).addMul(a2x2, a.l3)
	z[6] = mul64(a2x2, a.l4).addMul(a.l3, a.l3)
	z[7] = mul64(a3x2, a.l4)
	z[8] = mul64(a.l4, a.l4)
	return z
}

// part1 computes the Montgomery quotient digit for sum and returns the
// carry of sum + p*l0 together with p.
func part1(sum uint128) (uint128, uint64) {
	p := (sum.lo * lFactor) & maskLow52Bits
	return sum.addMul(p, order.l0).shr52(), p
}

func part2(sum uint128) (uint128, uint64) {
	return sum.shr52(), sum.lo & maskLow52Bits
}

// montgomeryReduce sets v = z / R mod l, and returns v.
//
// The limbs of l are known, in particular l3 = 0, so the products with it
// are left out.
func (v *Element) montgomeryReduce(z *[9]uint128) *Element {
	l1, l2, l4 := order.l1, order.l2, order.l4

	// First half: compute the Montgomery adjustment factor n and add n*l to
	// make the low limbs zero.
	carry, n0 := part1(z[0])
	carry, n1 := part1(carry.add(z[1]).addMul(n0, l1))
	carry, n2 := part1(carry.add(z[2]).addMul(n0, l2).addMul(n1, l1))
	carry, n3 := part1(carry.add(z[3]).addMul(n1, l2).addMul(n2, l1))
	carry, n4 := part1(carry.add(z[4]).addMul(n0, l4).addMul(n2, l2).addMul(n3, l1))

	// Second half: limbs are now divided by R.
	var r Element
	carry, r.l0 = part2(carry.add(z[5]).addMul(n1, l4).addMul(n3, l2).addMul(n4, l1))
	carry, r.l1 = part2(carry.add(z[6]).addMul(n2, l4).addMul(n4, l2))
	carry, r.l2 = part2(carry.add(z[7]).addMul(n3, l4))
	carry, r.l3 = part2(carry.add(z[8]).addMul(n4, l4))
	r.l4 = carry.lo

	// r < 2l, one conditional subtraction finishes the reduction.
	return v.Subtract(&r, order)
}
