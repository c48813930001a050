package tuple

import (
	"encoding/binary"
	"math"

	"github.com/alex-hoshin/libfptu/layout"
)

// InsertUint16 adds a new uint16 field at col without checking for an
// existing field at that column: bag semantics, duplicates are permitted.
func (t *RW) InsertUint16(col uint16, v uint16) error {
	return t.mutateInlineUint16(col, v, modeInsert)
}

// InsertInt32 adds a new int32 field at col.
func (t *RW) InsertInt32(col uint16, v int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return t.mutateFixedOutOfLine(col, layout.Int32, b[:])(modeInsert)
}

// InsertUint32 adds a new uint32 field at col.
func (t *RW) InsertUint32(col uint16, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint32, b[:])(modeInsert)
}

// InsertInt64 adds a new int64 field at col.
func (t *RW) InsertInt64(col uint16, v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return t.mutateFixedOutOfLine(col, layout.Int64, b[:])(modeInsert)
}

// InsertUint64 adds a new uint64 field at col.
func (t *RW) InsertUint64(col uint16, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint64, b[:])(modeInsert)
}

// InsertFp32 adds a new 32-bit float field at col.
func (t *RW) InsertFp32(col uint16, v float32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp32, b[:])(modeInsert)
}

// InsertFp64 adds a new 64-bit float field at col.
func (t *RW) InsertFp64(col uint16, v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp64, b[:])(modeInsert)
}

// InsertBin96 adds a new 96-bit fixed binary field at col.
func (t *RW) InsertBin96(col uint16, v [12]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin96, v[:])(modeInsert)
}

// InsertBin128 adds a new 128-bit fixed binary field at col.
func (t *RW) InsertBin128(col uint16, v [16]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin128, v[:])(modeInsert)
}

// InsertBin160 adds a new 160-bit fixed binary field at col.
func (t *RW) InsertBin160(col uint16, v [20]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin160, v[:])(modeInsert)
}

// InsertBin192 adds a new 192-bit fixed binary field at col.
func (t *RW) InsertBin192(col uint16, v [24]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin192, v[:])(modeInsert)
}

// InsertBin256 adds a new 256-bit fixed binary field at col.
func (t *RW) InsertBin256(col uint16, v [32]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin256, v[:])(modeInsert)
}

// InsertCstr adds a new zero-terminated string field at col, tagged Cstr.
func (t *RW) InsertCstr(col uint16, s string) error {
	full, err := buildCstrFull(layout.Cstr, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Cstr, full)(modeInsert)
}

// InsertString adds a new zero-terminated string field at col, tagged
// String — the same wire encoding as Cstr under a distinct type tag.
func (t *RW) InsertString(col uint16, s string) error {
	full, err := buildCstrFull(layout.String, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.String, full)(modeInsert)
}

// InsertOpaque adds a new length-prefixed binary blob field at col.
func (t *RW) InsertOpaque(col uint16, data []byte) error {
	full, err := buildOpaqueFull(data)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Opaque, full)(modeInsert)
}

// InsertNested embeds nested's frozen image verbatim as a new field at col.
func (t *RW) InsertNested(col uint16, nested RO) error {
	return t.mutateVarlen(col, layout.Nested, []byte(nested))(modeInsert)
}
