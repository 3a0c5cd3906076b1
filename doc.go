/*
Package num provides a 256-bit unsigned integer (U256) built from two 128-bit
limbs (U128), and a Builder that refuses to guess byte order or padding.

U256 is a value type; all operations return new values. Arithmetic is
checked: overflow, underflow and division by zero panic rather than wrap.
AddOverflow, SubOverflow and MulOverflow report the condition instead.

Simple example:

	a := U256From64(1000000000)
	b := U256From64(999999999)
	fmt.Printf("%d\n", a.Mul(b))
	// Output: 999999999000000000

Bytes go through the Builder, which panics unless the endianness is declared,
and unless padding is declared whenever fewer than 32 bytes are supplied:

	v := NewBuilder().
		WithEndian(BigEndian).
		WithPadding(0x00).
		FromPartialBytes([]byte{0x01, 0x4a}).
		Build()
	fmt.Println(v)
	// Output: 0x000000000000000000000000000000000000000000000000000000000000014a

U256 can also be created from:

	U256FromRaw(hi, lo U128) U256
	U256From64(v uint64) U256
	U256FromUint(v uint) U256
	U256FromBigEndian(b [32]byte) U256
	U256FromLittleEndian(b []byte) U256
	U256FromBigInt(v *big.Int) (out U256, inRange bool)
	ParseU256(s string) (U256, error)
	ParseU256Radix(s string, radix int, e Endian) (U256, error)

Every U256 carries the Endian it was decoded from. The tag only picks the
byte order of Bytes(); it never affects String(), Equal, Cmp or arithmetic.

Malformed text and narrowing failures return errors of class ParseError or
RangeError.

U256 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
