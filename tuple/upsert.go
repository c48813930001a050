package tuple

import (
	"encoding/binary"
	"math"

	"github.com/alex-hoshin/libfptu/layout"
)

// UpsertUint16 overwrites the first live uint16 field at col if one exists,
// or inserts a new one otherwise.
func (t *RW) UpsertUint16(col uint16, v uint16) error {
	return t.mutateInlineUint16(col, v, modeUpsert)
}

// UpdateUint16 overwrites the first live uint16 field at col, or returns
// errs.ErrNoField if none exists.
func (t *RW) UpdateUint16(col uint16, v uint16) error {
	return t.mutateInlineUint16(col, v, modeUpdate)
}

// UpsertInt32 overwrites or inserts an int32 field at col.
func (t *RW) UpsertInt32(col uint16, v int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return t.mutateFixedOutOfLine(col, layout.Int32, b[:])(modeUpsert)
}

// UpdateInt32 overwrites an existing int32 field at col, or fails.
func (t *RW) UpdateInt32(col uint16, v int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return t.mutateFixedOutOfLine(col, layout.Int32, b[:])(modeUpdate)
}

// UpsertUint32 overwrites or inserts a uint32 field at col.
func (t *RW) UpsertUint32(col uint16, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint32, b[:])(modeUpsert)
}

// UpdateUint32 overwrites an existing uint32 field at col, or fails.
func (t *RW) UpdateUint32(col uint16, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint32, b[:])(modeUpdate)
}

// UpsertInt64 overwrites or inserts an int64 field at col.
func (t *RW) UpsertInt64(col uint16, v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return t.mutateFixedOutOfLine(col, layout.Int64, b[:])(modeUpsert)
}

// UpdateInt64 overwrites an existing int64 field at col, or fails.
func (t *RW) UpdateInt64(col uint16, v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return t.mutateFixedOutOfLine(col, layout.Int64, b[:])(modeUpdate)
}

// UpsertUint64 overwrites or inserts a uint64 field at col.
func (t *RW) UpsertUint64(col uint16, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint64, b[:])(modeUpsert)
}

// UpdateUint64 overwrites an existing uint64 field at col, or fails.
func (t *RW) UpdateUint64(col uint16, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return t.mutateFixedOutOfLine(col, layout.Uint64, b[:])(modeUpdate)
}

// UpsertFp32 overwrites or inserts a 32-bit float field at col.
func (t *RW) UpsertFp32(col uint16, v float32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp32, b[:])(modeUpsert)
}

// UpdateFp32 overwrites an existing 32-bit float field at col, or fails.
func (t *RW) UpdateFp32(col uint16, v float32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp32, b[:])(modeUpdate)
}

// UpsertFp64 overwrites or inserts a 64-bit float field at col.
func (t *RW) UpsertFp64(col uint16, v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp64, b[:])(modeUpsert)
}

// UpdateFp64 overwrites an existing 64-bit float field at col, or fails.
func (t *RW) UpdateFp64(col uint16, v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return t.mutateFixedOutOfLine(col, layout.Fp64, b[:])(modeUpdate)
}

// UpsertBin96 overwrites or inserts a 96-bit fixed binary field at col.
func (t *RW) UpsertBin96(col uint16, v [12]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin96, v[:])(modeUpsert)
}

// UpdateBin96 overwrites an existing 96-bit fixed binary field, or fails.
func (t *RW) UpdateBin96(col uint16, v [12]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin96, v[:])(modeUpdate)
}

// UpsertBin128 overwrites or inserts a 128-bit fixed binary field at col.
func (t *RW) UpsertBin128(col uint16, v [16]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin128, v[:])(modeUpsert)
}

// UpdateBin128 overwrites an existing 128-bit fixed binary field, or fails.
func (t *RW) UpdateBin128(col uint16, v [16]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin128, v[:])(modeUpdate)
}

// UpsertBin160 overwrites or inserts a 160-bit fixed binary field at col.
func (t *RW) UpsertBin160(col uint16, v [20]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin160, v[:])(modeUpsert)
}

// UpdateBin160 overwrites an existing 160-bit fixed binary field, or fails.
func (t *RW) UpdateBin160(col uint16, v [20]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin160, v[:])(modeUpdate)
}

// UpsertBin192 overwrites or inserts a 192-bit fixed binary field at col.
func (t *RW) UpsertBin192(col uint16, v [24]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin192, v[:])(modeUpsert)
}

// UpdateBin192 overwrites an existing 192-bit fixed binary field, or fails.
func (t *RW) UpdateBin192(col uint16, v [24]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin192, v[:])(modeUpdate)
}

// UpsertBin256 overwrites or inserts a 256-bit fixed binary field at col.
func (t *RW) UpsertBin256(col uint16, v [32]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin256, v[:])(modeUpsert)
}

// UpdateBin256 overwrites an existing 256-bit fixed binary field, or fails.
func (t *RW) UpdateBin256(col uint16, v [32]byte) error {
	return t.mutateFixedOutOfLine(col, layout.Bin256, v[:])(modeUpdate)
}

// UpsertCstr overwrites or inserts a zero-terminated string field at col.
func (t *RW) UpsertCstr(col uint16, s string) error {
	full, err := buildCstrFull(layout.Cstr, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Cstr, full)(modeUpsert)
}

// UpdateCstr overwrites an existing zero-terminated string field, or fails.
func (t *RW) UpdateCstr(col uint16, s string) error {
	full, err := buildCstrFull(layout.Cstr, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Cstr, full)(modeUpdate)
}

// UpsertString overwrites or inserts a String-tagged field at col.
func (t *RW) UpsertString(col uint16, s string) error {
	full, err := buildCstrFull(layout.String, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.String, full)(modeUpsert)
}

// UpdateString overwrites an existing String-tagged field, or fails.
func (t *RW) UpdateString(col uint16, s string) error {
	full, err := buildCstrFull(layout.String, s)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.String, full)(modeUpdate)
}

// UpsertOpaque overwrites or inserts an opaque blob field at col.
func (t *RW) UpsertOpaque(col uint16, data []byte) error {
	full, err := buildOpaqueFull(data)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Opaque, full)(modeUpsert)
}

// UpdateOpaque overwrites an existing opaque blob field, or fails.
func (t *RW) UpdateOpaque(col uint16, data []byte) error {
	full, err := buildOpaqueFull(data)
	if err != nil {
		return err
	}
	return t.mutateVarlen(col, layout.Opaque, full)(modeUpdate)
}

// UpsertNested overwrites or inserts a nested-tuple field at col.
func (t *RW) UpsertNested(col uint16, nested RO) error {
	return t.mutateVarlen(col, layout.Nested, []byte(nested))(modeUpsert)
}

// UpdateNested overwrites an existing nested-tuple field, or fails.
func (t *RW) UpdateNested(col uint16, nested RO) error {
	return t.mutateVarlen(col, layout.Nested, []byte(nested))(modeUpdate)
}
