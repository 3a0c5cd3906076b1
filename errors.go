package num

import "github.com/zeebo/errs"

// Errors returned for malformed external input. Precondition violations
// (bad builder call order, bit index out of range, overflow, division by
// zero) panic instead.
var (
	// ParseError is returned when text cannot be decoded into a U256: wrong
	// length, bad characters or an unsupported radix.
	ParseError = errs.Class("num parse")

	// RangeError is returned when a value does not fit its destination, for
	// example a U256 narrowed to a uint or a parsed number wider than 256
	// bits.
	RangeError = errs.Class("num range")
)
