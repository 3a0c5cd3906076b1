package num

import "strings"

// Endian records the byte order a U256 was decoded from. It travels with the
// value as a hint for Bytes() and never affects equality, ordering or
// arithmetic.
type Endian uint8

const (
	BigEndian Endian = iota
	LittleEndian
)

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "invalid"
	}
}

// ParseEndian accepts "big"/"be" or "little"/"le", in any case.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	}
	return 0, ParseError.New("endian %q invalid", s)
}

// Pad copies up to 32 bytes of data into a 32-byte array pre-filled with
// fill. BigEndian places data at the end, so it becomes the least
// significant bytes and the padding is prepended. LittleEndian places data at
// the start and appends the padding. Bytes past the 32nd are dropped.
func Pad(data []byte, fill byte, e Endian) (out [32]byte) {
	for i := range out {
		out[i] = fill
	}
	n := len(data)
	if n > len(out) {
		n = len(out)
	}
	switch e {
	case BigEndian:
		copy(out[len(out)-n:], data[:n])
	case LittleEndian:
		copy(out[:n], data[:n])
	default:
		panic("num: invalid endian")
	}
	return out
}
