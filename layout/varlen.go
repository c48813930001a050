package layout

// LtMask selects the item-count bits of a Varlen.Aux field used as a
// tuple_items word (outermost tuple and Nested fields).
const LtMask uint16 = 0x7FFF

// LxMask marks a tuple_items word as describing an ordered (sorted) tuple.
// The core never sets this bit when writing and must reject it on read; the
// ordered codepath is reserved but unimplemented (spec.md §9).
const LxMask uint16 = 0x8000

// Varlen is the one-unit header that begins every variable-length payload
// (cstr/string, opaque, nested) and also the outermost frozen image.
//
// Its Aux field is a union whose interpretation depends on context:
//   - opaque: exact byte length of the payload (OpaqueBytes).
//   - outermost tuple / nested: field count OR'd with LtMask/LxMask
//     (ItemCount/Ordered).
//   - cstr/string: unused, always zero; length is recovered by scanning for
//     the terminating zero byte within the Brutto unit span.
type Varlen struct {
	// Brutto is the unit count of the payload that follows this header,
	// i.e. total payload span is Brutto+1 units.
	Brutto uint16
	Aux    uint16
}

// Encode packs v into one little-endian unit.
func (v Varlen) Encode() Unit {
	return Unit(v.Brutto) | Unit(v.Aux)<<16
}

// DecodeVarlen unpacks one unit into a Varlen.
func DecodeVarlen(u Unit) Varlen {
	return Varlen{
		Brutto: uint16(u & 0xFFFF),
		Aux:    uint16(u >> 16),
	}
}

// TotalUnits returns the full payload span in units, including this header
// unit itself: Brutto+1.
func (v Varlen) TotalUnits() int {
	return int(v.Brutto) + 1
}

// OpaqueBytes reads Aux as an opaque payload's exact byte length.
func (v Varlen) OpaqueBytes() int {
	return int(v.Aux)
}

// ItemCount reads Aux's low 15 bits as a tuple/nested field count.
func (v Varlen) ItemCount() int {
	return int(v.Aux & LtMask)
}

// Ordered reports whether Aux's LxMask bit is set.
func (v Varlen) Ordered() bool {
	return v.Aux&LxMask != 0
}

// NewTupleItemsAux packs a field count into an Aux word with the ordered
// flag cleared (the core never emits an ordered tuple).
func NewTupleItemsAux(fieldCount int) uint16 {
	return uint16(fieldCount) & LtMask
}
