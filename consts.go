package num

const (
	maxUint64 = 1<<64 - 1

	// maxUint is the largest value of the platform-width uint.
	maxUint = ^uint(0)

	intSize = 32 << (^uint(0) >> 63)

	// DefaultRadix is the radix ParseU256 and UnmarshalText use.
	DefaultRadix = 16

	// DefaultEndian is the endianness ParseU256 tags its result with, and the
	// tag carried by the package-level values below.
	DefaultEndian = BigEndian
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	ZeroU256 = U256{}
	OneU256  = U256{lo: U128{lo: 1}}
	MaxU256  = U256{hi: MaxU128, lo: MaxU128}

	zeroU128 U128
)
