package num

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// U128 is one 128-bit limb of a U256. Like U256 it is a value type; all
// operations return new values. U128 arithmetic wraps; the checked
// operations live on U256.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }

// u128FromBigEndian reads 16 bytes, most significant first.
func u128FromBigEndian(b []byte) U128 {
	_ = b[15]
	return U128{hi: binary.BigEndian.Uint64(b), lo: binary.BigEndian.Uint64(b[8:])}
}

// u128FromLittleEndian reads 16 bytes, least significant first.
func u128FromLittleEndian(b []byte) U128 {
	_ = b[15]
	return U128{lo: binary.LittleEndian.Uint64(b), hi: binary.LittleEndian.Uint64(b[8:])}
}

func (u U128) putBigEndian(b []byte) {
	_ = b[15]
	binary.BigEndian.PutUint64(b, u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
}

func (u U128) putLittleEndian(b []byte) {
	_ = b[15]
	binary.LittleEndian.PutUint64(b, u.lo)
	binary.LittleEndian.PutUint64(b[8:], u.hi)
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// String renders the limb as 0x followed by exactly 32 lowercase hex digits.
func (u U128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.hi, u.lo)
}

// addCarry returns u + n + carry and the carry out of the top bit. carry must
// be 0 or 1.
func (u U128) addCarry(n U128, carry uint64) (v U128, carryOut uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, carry)
	v.hi, carryOut = bits.Add64(u.hi, n.hi, carry)
	return v, carryOut
}

// subBorrow returns u - n - borrow and the borrow out of the top bit. borrow
// must be 0 or 1.
func (u U128) subBorrow(n U128, borrow uint64) (v U128, borrowOut uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, borrow)
	v.hi, borrowOut = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrowOut
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh shifts u left by n bits. Bits shifted past the top of the limb are
// lost; n >= 128 yields zero.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh shifts u right by n bits; n >= 128 yields zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	} else {
		return uint(bits.LeadingZeros64(u.hi))
	}
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	} else {
		return uint(bits.TrailingZeros64(u.lo))
	}
}

// bit reports bit i of the limb. i must be < 128.
func (u U128) bit(i uint) bool {
	if i < 64 {
		return (u.lo>>i)&1 == 1
	}
	return (u.hi>>(i-64))&1 == 1
}

// setBit returns u with bit i set. i must be < 128.
func (u U128) setBit(i uint) U128 {
	if i < 64 {
		u.lo |= 1 << i
	} else {
		u.hi |= 1 << (i - 64)
	}
	return u
}
