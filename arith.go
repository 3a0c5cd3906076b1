package num

import "math/bits"

// mul128to256 returns the full 256-bit product of two limbs as a (hi, lo)
// limb pair. The product of two 128-bit values always fits.
func mul128to256(u, v U128) (hi, lo U128) {
	hi.hi, hi.lo = bits.Mul64(u.hi, v.hi)
	lo.hi, lo.lo = bits.Mul64(u.lo, v.lo)

	var c uint64

	thi, tlo := bits.Mul64(u.hi, v.lo)
	lo.hi, c = bits.Add64(lo.hi, tlo, 0)
	hi.lo, c = bits.Add64(hi.lo, thi, c)
	hi.hi += c

	thi, tlo = bits.Mul64(u.lo, v.hi)
	lo.hi, c = bits.Add64(lo.hi, tlo, 0)
	hi.lo, c = bits.Add64(hi.lo, thi, c)
	hi.hi += c

	return hi, lo
}

// add256 adds two values limb-wise with carry propagation from lo into hi.
// The result wraps; carry is the bit that did not fit.
func add256(u, n U256) (v U256, carry uint64) {
	v.lo, carry = u.lo.addCarry(n.lo, 0)
	v.hi, carry = u.hi.addCarry(n.hi, carry)
	v.endian = u.endian
	return v, carry
}

// sub256 subtracts limb-wise with borrow propagation from lo into hi. The
// result wraps; borrow is set when n > u.
func sub256(u, n U256) (v U256, borrow uint64) {
	v.lo, borrow = u.lo.subBorrow(n.lo, 0)
	v.hi, borrow = u.hi.subBorrow(n.hi, borrow)
	v.endian = u.endian
	return v, borrow
}

// mul256 multiplies using the four limb partial products:
//
//	u*n = hh<<256 + (lh + hl)<<128 + ll
//
// Only ll and the low limbs of the two cross products can land inside 256
// bits. Anything in hh, in the upper limb of a cross product, or carried out
// of the high limb sum is overflow.
func mul256(u, n U256) (v U256, overflow bool) {
	llHi, llLo := mul128to256(u.lo, n.lo)
	lhHi, lhLo := mul128to256(u.lo, n.hi)
	hlHi, hlLo := mul128to256(u.hi, n.lo)
	hhHi, hhLo := mul128to256(u.hi, n.hi)

	overflow = !hhHi.IsZero() || !hhLo.IsZero() || !lhHi.IsZero() || !hlHi.IsZero()

	var c1, c2 uint64
	v.lo = llLo
	v.hi, c1 = llHi.addCarry(lhLo, 0)
	v.hi, c2 = v.hi.addCarry(hlLo, 0)
	v.endian = u.endian

	return v, overflow || c1|c2 != 0
}
