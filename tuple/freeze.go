package tuple

import "github.com/alex-hoshin/libfptu/layout"

// TakeNoShrink freezes the arena as-is, without compacting first: it writes
// a Varlen header into the reserved unit just before head (brutto =
// tail-head, item count = pivot-head, ordered flag cleared) and returns an
// RO view aliasing the same backing bytes. Any junk left by prior Erase or
// Upsert calls remains embedded in the image.
func (t *RW) TakeNoShrink() RO {
	header := layout.Varlen{
		Brutto: uint16(t.tail - t.head),
		Aux:    layout.NewTupleItemsAux(t.pivot - t.head),
	}
	t.setUnit(t.head-1, header.Encode())

	start := (t.head - 1) * layout.UnitSize
	end := t.tail * layout.UnitSize
	return RO(t.buf[start:end])
}

// Take shrinks the arena and then freezes it, producing the smallest image
// the current pivot allows.
func (t *RW) Take() RO {
	t.Shrink()
	return t.TakeNoShrink()
}
