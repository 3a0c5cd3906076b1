package num

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// hexDigits is the exact length of a U256 in radix 16, without prefix.
const hexDigits = 64

// HexToLimbPair decodes exactly 64 hex digits (no 0x prefix) into the bytes of
// the two limbs.
//
// Digits 0-31 always encode the high limb and digits 32-63 the low limb, each
// read as big-endian bytes. For LittleEndian, each limb's 16 bytes are then
// reversed, so that they decode with the little-endian limb packing. This is
// not the same as reversing the whole string.
func HexToLimbPair(s string, e Endian) (low, high [16]byte, err error) {
	if len(s) != hexDigits {
		return low, high, ParseError.New("u256 hex %q: expected %d digits, found %d", s, hexDigits, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return low, high, ParseError.New("u256 hex %q: invalid character %q at offset %d", s, s[i], i)
		}
	}

	if _, err := hex.Decode(high[:], []byte(s[:hexDigits/2])); err != nil {
		return low, high, ParseError.Wrap(err)
	}
	if _, err := hex.Decode(low[:], []byte(s[hexDigits/2:])); err != nil {
		return low, high, ParseError.Wrap(err)
	}

	switch e {
	case BigEndian:
	case LittleEndian:
		reverse16(&low)
		reverse16(&high)
	default:
		return low, high, ParseError.New("u256 hex %q: invalid endian %d", s, e)
	}
	return low, high, nil
}

// U256FromLimbPair assembles the limb bytes produced by HexToLimbPair.
//
// For BigEndian, high becomes the hi limb and low the lo limb, both read most
// significant byte first. For LittleEndian the halves swap roles: digits 0-31
// of the string become the lo limb and digits 32-63 the hi limb, so
// "0...014a" parsed as LittleEndian is 330<<128, not 330.
func U256FromLimbPair(low, high [16]byte, e Endian) U256 {
	switch e {
	case BigEndian:
		return U256{hi: u128FromBigEndian(high[:]), lo: u128FromBigEndian(low[:]), endian: e}
	case LittleEndian:
		return U256{hi: u128FromLittleEndian(low[:]), lo: u128FromLittleEndian(high[:]), endian: e}
	default:
		panic("num: invalid endian")
	}
}

// ParseU256 parses exactly 64 hex digits, with or without a 0x prefix, into
// a BigEndian-tagged U256. It is ParseU256Radix(s, DefaultRadix, DefaultEndian).
func ParseU256(s string) (U256, error) {
	return ParseU256Radix(s, DefaultRadix, DefaultEndian)
}

// ParseU256Radix parses s in the given radix and tags the result with e.
//
// Radix 16 takes the fixed-width path: an optional 0x prefix followed by
// exactly 64 hex digits, decoded with HexToLimbPair and U256FromLimbPair. For
// LittleEndian the first 32 digits are the lo limb and the last 32 the hi
// limb. Any other radix from 2 to 36 accepts a plain unsigned number of any
// length that fits in 256 bits; the endian tag does not change its value.
func ParseU256Radix(s string, radix int, e Endian) (out U256, err error) {
	if e != BigEndian && e != LittleEndian {
		return out, ParseError.New("u256 endian %d invalid", e)
	}

	s = strings.TrimSpace(s)

	if radix == 16 {
		s = strings.TrimPrefix(s, "0x")
		low, high, err := HexToLimbPair(s, e)
		if err != nil {
			return out, err
		}
		return U256FromLimbPair(low, high, e), nil
	}

	if radix < 2 || radix > 36 {
		return out, ParseError.New("u256 radix %d out of range", radix)
	}

	// This deliberately limits the scope of what we accept as input; big.Int
	// would otherwise allow signs and underscores:
	for i := 0; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' || s[i] == '_' {
			return out, ParseError.New("u256 string %q invalid", s)
		}
	}
	b, ok := new(big.Int).SetString(s, radix)
	if !ok {
		return out, ParseError.New("u256 string %q invalid", s)
	}
	out, inRange := U256FromBigInt(b)
	if !inRange {
		return U256{}, RangeError.New("u256 string %q overflows 256 bits", s)
	}
	return out.WithEndian(e), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func reverse16(b *[16]byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
