// Package kernel implements constant-time arithmetic modulo the order of the
// prime-order subgroup of edwards25519,
//
//	l = 2^252 + 27742317777372353535851937790883648493.
//
// [Element] holds five 52-bit limbs. Besides plain modular arithmetic it
// exposes the Montgomery domain with R = 2^260, which is what the inversion
// and reduction routines of [github.com/AlexanderYastrebov/scalar25519] are
// built on.
//
// The limb layout and the reduction follow the 64-bit backend of
// [curve25519-dalek], in turn derived from the [Montgomery multiplication]
// algorithm with a word size of 2^52.
//
// Only [Element.SetBytes] may produce an element that is not reduced modulo l.
// Every other operation returns a reduced element as long as its inputs are
// below 2^256.
//
// [curve25519-dalek]: https://github.com/dalek-cryptography/curve25519-dalek
// [Montgomery multiplication]: https://en.wikipedia.org/wiki/Montgomery_modular_multiplication
package kernel
