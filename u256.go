package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U256 is an unsigned 256-bit integer made of two 128-bit limbs, so that
// value == hi<<128 + lo.
//
// U256 also carries the Endian it was decoded from. The tag is ignored by
// Equal, Cmp and the arithmetic methods, but not by Go's == operator, so
// compare values with Equal.
//
// Arithmetic is checked: Add, Sub, Mul, Quo, QuoRem and Rem panic instead of
// wrapping. The *Overflow variants report the condition instead.
type U256 struct {
	hi, lo U128
	endian Endian
}

func U256FromRaw(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }
func U256From128(v U128) U256      { return U256{lo: v} }
func U256From64(v uint64) U256     { return U256{lo: U128{lo: v}} }
func U256From32(v uint32) U256     { return U256{lo: U128{lo: uint64(v)}} }
func U256FromUint(v uint) U256     { return U256{lo: U128{lo: uint64(v)}} }

// U256FromBigEndian decodes 32 bytes, most significant first: bytes 0-15 are
// the hi limb and bytes 16-31 the lo limb. The result is tagged BigEndian.
func U256FromBigEndian(b [32]byte) U256 {
	return U256{
		hi:     u128FromBigEndian(b[:16]),
		lo:     u128FromBigEndian(b[16:]),
		endian: BigEndian,
	}
}

// U256FromLittleEndian decodes up to 32 bytes, least significant first:
// bytes 0-15 are the lo limb and bytes 16-31 the hi limb. Missing bytes are
// treated as zero and bytes past the 32nd are ignored. The result is tagged
// LittleEndian.
func U256FromLittleEndian(b []byte) U256 {
	var buf [32]byte
	copy(buf[:], b)
	return U256{
		lo:     u128FromLittleEndian(buf[:16]),
		hi:     u128FromLittleEndian(buf[16:]),
		endian: LittleEndian,
	}
}

// U256FromBytes decodes b using the byte order e.
func U256FromBytes(b [32]byte, e Endian) U256 {
	switch e {
	case BigEndian:
		return U256FromBigEndian(b)
	case LittleEndian:
		return U256FromLittleEndian(b[:])
	default:
		panic("num: invalid endian")
	}
}

// U256FromBigInt creates a U256 from a big.Int. Values outside the range
// clamp to 0 or MaxU256 and set inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	out = U256FromBigEndian(buf)
	return out, true
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	out.hi = U128{hi: source.Uint64(), lo: source.Uint64()}
	out.lo = U128{hi: source.Uint64(), lo: source.Uint64()}
	return out
}

func (u U256) IsZero() bool { return u.hi.IsZero() && u.lo.IsZero() }

// Raw returns the two limbs. See U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, lo U128) { return u.hi, u.lo }

// Endian returns the byte order tag the value carries.
func (u U256) Endian() Endian { return u.endian }

// WithEndian returns a copy of u tagged with e. The value is unchanged.
func (u U256) WithEndian(e Endian) U256 {
	u.endian = e
	return u
}

// BigEndianBytes encodes u most significant byte first, regardless of the
// value's tag.
func (u U256) BigEndianBytes() (out [32]byte) {
	u.PutBigEndian(out[:])
	return out
}

// LittleEndianBytes encodes u least significant byte first, regardless of the
// value's tag.
func (u U256) LittleEndianBytes() (out [32]byte) {
	u.PutLittleEndian(out[:])
	return out
}

// Bytes encodes u in the byte order of its tag.
func (u U256) Bytes() [32]byte {
	if u.endian == LittleEndian {
		return u.LittleEndianBytes()
	}
	return u.BigEndianBytes()
}

// PutBigEndian writes u into the first 32 bytes of b, which must be at least
// 32 bytes long.
func (u U256) PutBigEndian(b []byte) {
	_ = b[31]
	u.hi.putBigEndian(b)
	u.lo.putBigEndian(b[16:])
}

// PutLittleEndian writes u into the first 32 bytes of b, which must be at
// least 32 bytes long.
func (u U256) PutLittleEndian(b []byte) {
	_ = b[31]
	u.lo.putLittleEndian(b)
	u.hi.putLittleEndian(b[16:])
}

// String renders u as 0x followed by the hi limb and then the lo limb, each
// as 32 zero-padded lowercase hex digits. The endian tag does not affect the
// output.
func (u U256) String() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x", u.hi.hi, u.hi.lo, u.lo.hi, u.lo.lo)
}

// Format implements fmt.Formatter. %v and %s use String(). The integer verbs
// %b, %o, %O, %d, %x and %X are formatted by math/big, so %d prints decimal
// and %x prints minimal hex. Any other verb prints the usual %!verb form.
func (u U256) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		fmt.Fprint(s, u.String())
	case 'b', 'o', 'O', 'd', 'x', 'X':
		u.AsBigInt().Format(s, c)
	default:
		fmt.Fprintf(s, "%%!%c(num.U256=%s)", c, u.String())
	}
}

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < 4 {
			words = make([]big.Word, 4)
		}
		words = words[:4]
		words[0] = big.Word(u.lo.lo)
		words[1] = big.Word(u.lo.hi)
		words[2] = big.Word(u.hi.lo)
		words[3] = big.Word(u.hi.hi)
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < 8 {
			words = make([]big.Word, 8)
		}
		words = words[:8]
		words[0] = big.Word(u.lo.lo & 0xFFFFFFFF)
		words[1] = big.Word(u.lo.lo >> 32)
		words[2] = big.Word(u.lo.hi & 0xFFFFFFFF)
		words[3] = big.Word(u.lo.hi >> 32)
		words[4] = big.Word(u.hi.lo & 0xFFFFFFFF)
		words[5] = big.Word(u.hi.lo >> 32)
		words[6] = big.Word(u.hi.hi & 0xFFFFFFFF)
		words[7] = big.Word(u.hi.hi >> 32)
		b.SetBits(words)

	default:
		panic("num: unsupported bit size")
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi.IsZero() && u.lo.hi == 0 }

// AsUint64 narrows u to a uint64, or returns a RangeError if it does not fit.
func (u U256) AsUint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, RangeError.New("%s overflows uint64", u)
	}
	return u.lo.lo, nil
}

// IsUint reports whether u can be represented as a platform-width uint.
func (u U256) IsUint() bool { return u.IsUint64() && u.lo.lo <= uint64(maxUint) }

// AsUint narrows u to a platform-width uint, or returns a RangeError if it
// does not fit.
func (u U256) AsUint() (uint, error) {
	if !u.IsUint() {
		return 0, RangeError.New("%s overflows uint%d", u, intSize)
	}
	return uint(u.lo.lo), nil
}

// Bit reports whether bit i is set. Bits 0-127 live in the lo limb and
// 128-255 in the hi limb. Bit panics if i > 255.
func (u U256) Bit(i uint) bool {
	if i >= 256 {
		panic("u256: bit index out of range")
	}
	if i < 128 {
		return u.lo.bit(i)
	}
	return u.hi.bit(i - 128)
}

// SetBit returns u with bit i set to 1. SetBit panics if i > 255.
func (u U256) SetBit(i uint) U256 {
	if i >= 256 {
		panic("u256: bit index out of range")
	}
	if i < 128 {
		u.lo = u.lo.setBit(i)
	} else {
		u.hi = u.hi.setBit(i - 128)
	}
	return u
}

func (u U256) LeadingZeros() uint {
	if !u.hi.IsZero() {
		return u.hi.LeadingZeros()
	}
	return u.lo.LeadingZeros() + 128
}

func (u U256) TrailingZeros() uint {
	if !u.lo.IsZero() {
		return u.lo.TrailingZeros()
	}
	return u.hi.TrailingZeros() + 128
}

// BitLen returns the number of bits required to represent u; 0 for zero.
func (u U256) BitLen() int { return 256 - int(u.LeadingZeros()) }

func (u U256) Cmp(n U256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

// Equal reports whether u and n hold the same value. The endian tag is
// ignored.
func (u U256) Equal(n U256) bool {
	return u.hi.Equal(n.hi) && u.lo.Equal(n.lo)
}

func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi = u.hi.And(n.hi)
	u.lo = u.lo.And(n.lo)
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi.Or(n.hi)
	u.lo = u.lo.Or(n.lo)
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi.Xor(n.hi)
	u.lo = u.lo.Xor(n.lo)
	return u
}

// AddOverflow returns u+n. If the sum needs more than 256 bits, it returns
// zero and overflow is true.
func (u U256) AddOverflow(n U256) (v U256, overflow bool) {
	v, carry := add256(u, n)
	if carry != 0 {
		return U256{endian: u.endian}, true
	}
	return v, false
}

// Add returns u+n, panicking if the sum needs more than 256 bits.
func (u U256) Add(n U256) U256 {
	v, overflow := u.AddOverflow(n)
	if overflow {
		panic("u256: addition overflow")
	}
	return v
}

// SubOverflow returns u-n. If n > u, it returns zero and overflow is true.
func (u U256) SubOverflow(n U256) (v U256, overflow bool) {
	if u.LessThan(n) {
		return U256{endian: u.endian}, true
	}
	v, borrow := sub256(u, n)
	if borrow != 0 {
		return U256{endian: u.endian}, true
	}
	return v, false
}

// Sub returns u-n, panicking if n > u.
func (u U256) Sub(n U256) U256 {
	v, overflow := u.SubOverflow(n)
	if overflow {
		panic("u256: subtraction overflow")
	}
	return v
}

// MulOverflow returns u*n. If the product needs more than 256 bits, it
// returns zero and overflow is true.
func (u U256) MulOverflow(n U256) (v U256, overflow bool) {
	v, overflow = mul256(u, n)
	if overflow {
		return U256{endian: u.endian}, true
	}
	return v, false
}

// Mul returns u*n, panicking if the product needs more than 256 bits.
func (u U256) Mul(n U256) U256 {
	v, overflow := u.MulOverflow(n)
	if overflow {
		panic("u256: multiplication overflow")
	}
	return v
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0, so that
// u == q*by + r and r < by. If by == 0, a division-by-zero run-time panic
// occurs.
//
// QuoRem uses restoring binary long division: one quotient bit per dividend
// bit, always exactly 256 rounds once u >= by.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic("u256: division by zero")
	}
	q.endian, r.endian = u.endian, u.endian

	if u.LessThan(by) {
		return q, u // it's 100% remainder
	}

	for i := 255; i >= 0; i-- {
		// r < by on entry, but r<<1 can still need 257 bits when by is above
		// 1<<255. The lost top bit means r is certainly >= by, and the
		// wrapped subtraction below yields the correct remainder.
		top := r.hi.hi >> 63
		r = r.Lsh(1)
		if u.Bit(uint(i)) {
			r.lo.lo |= 1
		}
		if top != 0 || !r.LessThan(by) {
			r, _ = sub256(r, by)
			q = q.SetBit(uint(i))
		}
	}

	return q, r
}

// Lsh returns u shifted left by n bits. Bits shifted past bit 255 are lost;
// n >= 256 yields zero.
func (u U256) Lsh(n uint) (v U256) {
	v.endian = u.endian
	switch {
	case n == 0:
		return u
	case n < 128:
		v.hi = u.hi.Lsh(n).Or(u.lo.Rsh(128 - n))
		v.lo = u.lo.Lsh(n)
	case n == 128:
		v.hi = u.lo
	case n < 256:
		v.hi = u.lo.Lsh(n - 128)
	}
	return v
}

// Rsh returns u shifted right by n bits; n >= 256 yields zero.
func (u U256) Rsh(n uint) (v U256) {
	v.endian = u.endian
	switch {
	case n == 0:
		return u
	case n < 128:
		v.lo = u.lo.Rsh(n).Or(u.hi.Lsh(128 - n))
		v.hi = u.hi.Rsh(n)
	case n == 128:
		v.lo = u.hi
	case n < 256:
		v.lo = u.hi.Rsh(n - 128)
	}
	return v
}

// OnesCount returns the number of set bits.
func (u U256) OnesCount() int {
	return bits.OnesCount64(u.hi.hi) + bits.OnesCount64(u.hi.lo) +
		bits.OnesCount64(u.lo.hi) + bits.OnesCount64(u.lo.lo)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU256(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return ParseError.New("u256 invalid JSON %q", string(bts))
	}
	v, err := ParseU256(string(bts[1 : ln-1]))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
