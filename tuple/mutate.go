package tuple

import (
	"encoding/binary"

	"github.com/alex-hoshin/libfptu/errs"
	"github.com/alex-hoshin/libfptu/layout"
)

// mutateMode selects bag-style insert, overwrite-or-insert upsert, or
// overwrite-only update semantics for the shared mutate helpers below.
type mutateMode int

const (
	modeInsert mutateMode = iota
	modeUpsert
	modeUpdate
)

func checkColumn(col uint16) error {
	if col > layout.MaxColumn {
		return errs.ErrColumnRange
	}
	return nil
}

// mutateInlineUint16 implements Insert/Upsert/UpdateUint16: the only type
// whose value lives directly in the descriptor's offset field.
func (t *RW) mutateInlineUint16(col uint16, value uint16, mode mutateMode) error {
	if err := checkColumn(col); err != nil {
		return err
	}

	ct := layout.Pack(col, layout.Uint16)
	if mode != modeInsert {
		if idx := t.findLive(ct); idx >= 0 {
			t.setDescriptor(idx, layout.Descriptor{CT: ct, Offset: value})
			return nil
		}
		if mode == modeUpdate {
			return errs.ErrNoField
		}
	}

	idx, err := t.allocDescriptor()
	if err != nil {
		return err
	}
	t.setDescriptor(idx, layout.Descriptor{CT: ct, Offset: value})
	return nil
}

// mutateFixedOutOfLine implements the Insert/Upsert/Update family for the
// fixed-width, out-of-line types (int32 .. bin256). payload must already be
// exactly layout.FixedBytes(typ) long.
func (t *RW) mutateFixedOutOfLine(col uint16, typ layout.Type, payload []byte) func(mutateMode) error {
	return func(mode mutateMode) error {
		if err := checkColumn(col); err != nil {
			return err
		}

		ct := layout.Pack(col, typ)
		units := layout.BytesToUnits(len(payload))

		if mode != modeInsert {
			if idx := t.findLive(ct); idx >= 0 {
				d := t.descriptor(idx)
				copy(t.buf[int(d.Offset)*layout.UnitSize:], payload)
				return nil
			}
			if mode == modeUpdate {
				return errs.ErrNoField
			}
		}

		if t.tail+units > t.end {
			return errs.ErrPayloadOverflow
		}
		idx, err := t.allocDescriptor()
		if err != nil {
			return err
		}

		offset := t.tail
		copy(t.buf[offset*layout.UnitSize:], payload)
		t.tail += units
		t.setDescriptor(idx, layout.Descriptor{CT: ct, Offset: uint16(offset)})
		return nil
	}
}

// mutateVarlen implements the Insert/Upsert/Update family for cstr, string,
// opaque and nested fields. full is the complete unit-aligned byte sequence
// to place at the field's payload offset: a Varlen header followed by data
// for cstr/string/opaque, or (for nested) the embedded tuple's own frozen
// image verbatim, whose first unit already is that tuple's own Varlen
// header.
func (t *RW) mutateVarlen(col uint16, typ layout.Type, full []byte) func(mutateMode) error {
	return func(mode mutateMode) error {
		if err := checkColumn(col); err != nil {
			return err
		}
		if len(full)%layout.UnitSize != 0 {
			return errs.ErrInvalidArgument
		}

		ct := layout.Pack(col, typ)
		newUnits := len(full) / layout.UnitSize
		if newUnits < 1 || newUnits-1 > 0xFFFF {
			return errs.ErrInvalidArgument
		}

		if mode != modeInsert {
			if idx := t.findLive(ct); idx >= 0 {
				d := t.descriptor(idx)
				oldOffset := int(d.Offset)
				oldUnits := t.varlenAt(oldOffset).TotalUnits()

				if newUnits <= oldUnits {
					copy(t.buf[oldOffset*layout.UnitSize:], full)
					clear(t.buf[oldOffset*layout.UnitSize+len(full) : (oldOffset+oldUnits)*layout.UnitSize])
					t.junk += oldUnits - newUnits
					return nil
				}

				if t.tail+newUnits > t.end {
					return errs.ErrPayloadOverflow
				}
				newOffset := t.tail
				copy(t.buf[newOffset*layout.UnitSize:], full)
				t.tail += newUnits
				t.junk += oldUnits
				t.setDescriptor(idx, layout.Descriptor{CT: ct, Offset: uint16(newOffset)})
				return nil
			}
			if mode == modeUpdate {
				return errs.ErrNoField
			}
		}

		if t.tail+newUnits > t.end {
			return errs.ErrPayloadOverflow
		}
		idx, err := t.allocDescriptor()
		if err != nil {
			return err
		}

		offset := t.tail
		copy(t.buf[offset*layout.UnitSize:], full)
		t.tail += newUnits
		t.setDescriptor(idx, layout.Descriptor{CT: ct, Offset: uint16(offset)})
		return nil
	}
}

// buildCstrFull lays out a zero-terminated-string Varlen payload: header
// followed by s and a terminating zero byte, padded to a unit boundary.
func buildCstrFull(typ layout.Type, s string) ([]byte, error) {
	data := make([]byte, len(s)+1)
	copy(data, s)
	dataUnits := layout.BytesToUnits(len(data))
	if dataUnits > 0xFFFF {
		return nil, errs.ErrInvalidArgument
	}

	full := make([]byte, layout.UnitSize+dataUnits*layout.UnitSize)
	binary.LittleEndian.PutUint32(full, layout.Varlen{Brutto: uint16(dataUnits)}.Encode())
	copy(full[layout.UnitSize:], data)
	return full, nil
}

// buildOpaqueFull lays out a length-prefixed opaque blob's Varlen payload.
func buildOpaqueFull(data []byte) ([]byte, error) {
	dataUnits := layout.BytesToUnits(len(data))
	if dataUnits > 0xFFFF || len(data) > 0xFFFF {
		return nil, errs.ErrInvalidArgument
	}

	full := make([]byte, layout.UnitSize+dataUnits*layout.UnitSize)
	vl := layout.Varlen{Brutto: uint16(dataUnits), Aux: uint16(len(data))}
	binary.LittleEndian.PutUint32(full, vl.Encode())
	copy(full[layout.UnitSize:], data)
	return full, nil
}
