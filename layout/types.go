package layout

// Type is the enumerated kind of a field's value: a 5-bit tag packed into
// the low bits of a descriptor's ct word.
type Type uint8

// Fixed-width types occupy tags 0-12 and have a payload size that is a pure
// function of the type (T2U/T2B below). Variable-length types occupy tags
// 13-17 and carry a Varlen header at the start of their payload.
const (
	Null Type = iota
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Fp32
	Fp64
	Bin96
	Bin128
	Bin160
	Bin192
	Bin256

	Cstr   // zero-terminated UTF-8-opaque byte string
	Opaque // length-prefixed blob
	String // synonym of Cstr in this revision
	Nested // embedded tuple
	Farray // array of a fixed type; reserved, unimplemented

	// typeCount is the number of enumerated types; used to size tables and
	// to bound TypeBits. Not itself a valid field type.
	typeCount
)

// TypeBits is the width, in bits, of the type tag packed into a
// descriptor's ct word. See the column/type packing deviation documented in
// SPEC_FULL.md: widening this to 5 bits (full future-growth headroom) comes
// at the cost of narrowing MaxColumn below the reference implementation's.
const TypeBits = 5

// MaxTypeTag is the largest representable type tag (2^TypeBits - 1). Tags
// strictly greater than typeCount-1 and less than MaxTypeTag are reserved
// for future growth; MaxTypeTag itself is never a live type, it is folded
// into the Dead descriptor sentinel (see descriptor.go).
const MaxTypeTag = (1 << TypeBits) - 1

// String returns the canonical name of a type, or "unknown" for an
// unrecognized tag (including the dead sentinel's tag).
func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Fp32:
		return "fp32"
	case Fp64:
		return "fp64"
	case Bin96:
		return "bin96"
	case Bin128:
		return "bin128"
	case Bin160:
		return "bin160"
	case Bin192:
		return "bin192"
	case Bin256:
		return "bin256"
	case Cstr:
		return "cstr"
	case Opaque:
		return "opaque"
	case String:
		return "string"
	case Nested:
		return "nested"
	case Farray:
		return "farray"
	default:
		return "unknown"
	}
}

// IsFixed reports whether t is a fixed-width type (length is a function of
// the type alone, as opposed to a variable-length type whose payload begins
// with a Varlen header).
func (t Type) IsFixed() bool {
	return t < Cstr
}

// IsInline reports whether t's value is stored directly in a descriptor's
// offset field rather than in the payload heap. Only Uint16 is inline; this
// asymmetry is load-bearing and part of the public wire contract (see
// SPEC_FULL.md).
func (t Type) IsInline() bool {
	return t == Uint16
}

// IsValid reports whether t is one of the enumerated, implemented types.
// Farray is enumerated but reserved/unimplemented, so it is not valid here.
func (t Type) IsValid() bool {
	return t < typeCount && t != Farray
}

// t2u gives, for each fixed-width type, the payload size in units: 0 for
// Null/Uint16 (no out-of-line payload), 1 for 32-bit types, 2 for 64-bit
// types, and the appropriate width for fixed binaries.
var t2u = [typeCount]int{
	Null:   0,
	Uint16: 0,
	Int32:  1,
	Uint32: 1,
	Int64:  2,
	Uint64: 2,
	Fp32:   1,
	Fp64:   2,
	Bin96:  3,
	Bin128: 4,
	Bin160: 5,
	Bin192: 6,
	Bin256: 8,
}

// t2b mirrors t2u in bytes rather than units.
var t2b = [typeCount]int{
	Null:   0,
	Uint16: 2,
	Int32:  4,
	Uint32: 4,
	Int64:  8,
	Uint64: 8,
	Fp32:   4,
	Fp64:   8,
	Bin96:  12,
	Bin128: 16,
	Bin160: 20,
	Bin192: 24,
	Bin256: 32,
}

// FixedUnits returns T2U[t]: the payload size in units for a fixed-width
// type. Returns 0 for variable-length types; callers must check IsFixed
// first if they need to distinguish "zero-length fixed" from "variable".
func FixedUnits(t Type) int {
	if t >= typeCount {
		return 0
	}

	return t2u[t]
}

// FixedBytes returns T2B[t]: the payload size in bytes for a fixed-width
// type.
func FixedBytes(t Type) int {
	if t >= typeCount {
		return 0
	}

	return t2b[t]
}

// Mask ORs together one bit per listed type, for use with a filter-style
// lookup/erase that matches any of several types at a given column.
func Mask(types ...Type) uint32 {
	var m uint32
	for _, t := range types {
		m |= 1 << uint(t)
	}

	return m
}

// MatchesMask reports whether t's bit is set in mask.
func MatchesMask(t Type, mask uint32) bool {
	return mask&(1<<uint(t)) != 0
}
