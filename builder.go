package num

import "fmt"

// builderStage is where a Builder is in its protocol:
//
//	open --WithEndian/WithPadding--> open
//	open --FromBytes (no padding)--> loaded
//	open --FromPartialBytes (padding and endian)--> loaded
//	open|loaded --Build (endian)--> built
//
// Any other call panics.
type builderStage uint8

const (
	stageOpen builderStage = iota
	stageLoaded
	stageBuilt
)

func (s builderStage) String() string {
	switch s {
	case stageOpen:
		return "open"
	case stageLoaded:
		return "loaded"
	case stageBuilt:
		return "built"
	default:
		return "invalid"
	}
}

// Builder constructs a U256 from bytes while forcing the caller to state the
// byte order, and the padding when fewer than 32 bytes are supplied. There is
// no default endianness.
//
//	v := NewBuilder().
//		WithEndian(BigEndian).
//		WithPadding(0x00).
//		FromPartialBytes([]byte{0x01, 0x4a}).
//		Build()
//
// Builder is single use and is not safe for concurrent use. Calls made out of
// order panic; these are programming errors, not input errors.
type Builder struct {
	buf   [32]byte
	stage builderStage

	endian    Endian
	hasEndian bool

	padding    byte
	hasPadding bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithEndian declares the byte order used to pad and decode the bytes. A
// later call before the bytes are loaded replaces the earlier one.
func (b *Builder) WithEndian(e Endian) *Builder {
	b.mustBeOpen("WithEndian")
	if e != BigEndian && e != LittleEndian {
		panic(fmt.Sprintf("num: builder: invalid endian %d", e))
	}
	b.endian, b.hasEndian = e, true
	return b
}

// WithPadding declares the fill byte for FromPartialBytes. Once set, the
// builder only accepts FromPartialBytes.
func (b *Builder) WithPadding(fill byte) *Builder {
	b.mustBeOpen("WithPadding")
	b.padding, b.hasPadding = fill, true
	return b
}

// FromBytes stages exactly 32 bytes verbatim. It panics if WithPadding was
// called.
func (b *Builder) FromBytes(bts [32]byte) *Builder {
	b.mustBeOpen("FromBytes")
	if b.hasPadding {
		panic("num: builder: padding is set, call FromPartialBytes instead of FromBytes")
	}
	b.buf = bts
	b.stage = stageLoaded
	return b
}

// FromPartialBytes stages up to 32 bytes, filling the rest with the padding
// byte according to the declared endianness (see Pad). It panics unless both
// WithPadding and WithEndian were called, or if more than 32 bytes are given.
func (b *Builder) FromPartialBytes(bts []byte) *Builder {
	b.mustBeOpen("FromPartialBytes")
	if !b.hasPadding {
		panic("num: builder: padding is not set, call WithPadding before FromPartialBytes or use FromBytes")
	}
	if !b.hasEndian {
		panic("num: builder: endian is not set, call WithEndian before FromPartialBytes")
	}
	if len(bts) > len(b.buf) {
		panic(fmt.Sprintf("num: builder: FromPartialBytes given %d bytes, at most %d allowed", len(bts), len(b.buf)))
	}
	b.buf = Pad(bts, b.padding, b.endian)
	b.stage = stageLoaded
	return b
}

// Build decodes the staged bytes with the declared endianness and tags the
// result with it. Build panics if WithEndian was never called. The builder
// can't be used afterwards.
func (b *Builder) Build() U256 {
	if b.stage == stageBuilt {
		panic("num: builder: Build already called")
	}
	if !b.hasEndian {
		panic("num: builder: endian is not set, call WithEndian before Build")
	}
	b.stage = stageBuilt
	out := U256FromBytes(b.buf, b.endian)
	b.buf = [32]byte{}
	return out
}

func (b *Builder) mustBeOpen(call string) {
	if b.stage != stageOpen {
		panic(fmt.Sprintf("num: builder: %s called on %s builder", call, b.stage))
	}
}
