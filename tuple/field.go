package tuple

import (
	"encoding/binary"
	"math"

	"github.com/alex-hoshin/libfptu/layout"
)

// Field is a lookup result: a descriptor plus the buffer it was found in,
// letting the caller read the value out without re-scanning. The accessor
// methods are thin type-tag dispatch, mirroring the reference library's
// fptu_get_* family; callers are expected to call the accessor matching the
// type they already asked Lookup for.
type Field struct {
	d   layout.Descriptor
	buf []byte
}

// Type returns the field's type tag.
func (f Field) Type() layout.Type { return f.d.Type() }

// Column returns the field's column tag.
func (f Field) Column() uint16 { return f.d.Column() }

func (f Field) unit(i int) layout.Unit {
	return binary.LittleEndian.Uint32(f.buf[i*layout.UnitSize:])
}

// Uint16 returns the field's value if it is a live Uint16 field.
func (f Field) Uint16() (uint16, bool) {
	if f.d.Type() != layout.Uint16 {
		return 0, false
	}
	return f.d.Offset, true
}

// Int32 returns the field's value if it is a live Int32 field.
func (f Field) Int32() (int32, bool) {
	if f.d.Type() != layout.Int32 {
		return 0, false
	}
	return int32(f.unit(int(f.d.Offset))), true
}

// Uint32 returns the field's value if it is a live Uint32 field.
func (f Field) Uint32() (uint32, bool) {
	if f.d.Type() != layout.Uint32 {
		return 0, false
	}
	return f.unit(int(f.d.Offset)), true
}

// Int64 returns the field's value if it is a live Int64 field.
func (f Field) Int64() (int64, bool) {
	if f.d.Type() != layout.Int64 {
		return 0, false
	}
	off := int(f.d.Offset) * layout.UnitSize
	return int64(binary.LittleEndian.Uint64(f.buf[off:])), true
}

// Uint64 returns the field's value if it is a live Uint64 field.
func (f Field) Uint64() (uint64, bool) {
	if f.d.Type() != layout.Uint64 {
		return 0, false
	}
	off := int(f.d.Offset) * layout.UnitSize
	return binary.LittleEndian.Uint64(f.buf[off:]), true
}

// Fp32 returns the field's value if it is a live Fp32 field.
func (f Field) Fp32() (float32, bool) {
	if f.d.Type() != layout.Fp32 {
		return 0, false
	}
	return math.Float32frombits(f.unit(int(f.d.Offset))), true
}

// Fp64 returns the field's value if it is a live Fp64 field.
func (f Field) Fp64() (float64, bool) {
	if f.d.Type() != layout.Fp64 {
		return 0, false
	}
	off := int(f.d.Offset) * layout.UnitSize
	return math.Float64frombits(binary.LittleEndian.Uint64(f.buf[off:])), true
}

func (f Field) fixedBin(typ layout.Type) ([]byte, bool) {
	if f.d.Type() != typ {
		return nil, false
	}
	off := int(f.d.Offset) * layout.UnitSize
	n := layout.FixedBytes(typ)
	return f.buf[off : off+n], true
}

// Bin96 returns a view of the field's value if it is a live Bin96 field.
func (f Field) Bin96() ([]byte, bool) { return f.fixedBin(layout.Bin96) }

// Bin128 returns a view of the field's value if it is a live Bin128 field.
func (f Field) Bin128() ([]byte, bool) { return f.fixedBin(layout.Bin128) }

// Bin160 returns a view of the field's value if it is a live Bin160 field.
func (f Field) Bin160() ([]byte, bool) { return f.fixedBin(layout.Bin160) }

// Bin192 returns a view of the field's value if it is a live Bin192 field.
func (f Field) Bin192() ([]byte, bool) { return f.fixedBin(layout.Bin192) }

// Bin256 returns a view of the field's value if it is a live Bin256 field.
func (f Field) Bin256() ([]byte, bool) { return f.fixedBin(layout.Bin256) }

func (f Field) cstr(typ layout.Type) (string, bool) {
	if f.d.Type() != typ {
		return "", false
	}
	off := int(f.d.Offset)
	vl := layout.DecodeVarlen(f.unit(off))
	data := f.buf[(off+1)*layout.UnitSize : (off+1+int(vl.Brutto))*layout.UnitSize]
	if n := indexZero(data); n >= 0 {
		data = data[:n]
	}
	return string(data), true
}

// Cstr returns the field's value if it is a live Cstr field.
func (f Field) Cstr() (string, bool) { return f.cstr(layout.Cstr) }

// String returns the field's value if it is a live String field.
func (f Field) String() (string, bool) { return f.cstr(layout.String) }

// Opaque returns a view of the field's value if it is a live Opaque field.
func (f Field) Opaque() ([]byte, bool) {
	if f.d.Type() != layout.Opaque {
		return nil, false
	}
	off := int(f.d.Offset)
	vl := layout.DecodeVarlen(f.unit(off))
	start := (off + 1) * layout.UnitSize
	return f.buf[start : start+vl.OpaqueBytes()], true
}

// Nested returns the field's embedded frozen image if it is a live Nested
// field.
func (f Field) Nested() (RO, bool) {
	if f.d.Type() != layout.Nested {
		return nil, false
	}
	off := int(f.d.Offset)
	vl := layout.DecodeVarlen(f.unit(off))
	total := vl.TotalUnits()
	start := off * layout.UnitSize
	return RO(f.buf[start : start+total*layout.UnitSize]), true
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
